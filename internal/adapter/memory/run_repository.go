// Package memory holds process-local adapters used when PostgreSQL is
// disabled and in tests.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/rotisserie/eris"

	"campaign-sim/internal/core/domain"
	"campaign-sim/internal/core/port"
)

// RunRepository implements port.RunRepository in memory. Runs are copied
// on the way in and out so callers can never mutate a stored run.
type RunRepository struct {
	mu   sync.RWMutex
	runs map[string]domain.CampaignRun
}

// NewRunRepository returns an empty repository.
func NewRunRepository() *RunRepository {
	return &RunRepository{runs: make(map[string]domain.CampaignRun)}
}

// SaveRun stores a copy of run. Saving an existing id is rejected.
func (r *RunRepository) SaveRun(_ context.Context, run *domain.CampaignRun) error {
	if run == nil || run.ID == "" {
		return eris.Wrap(port.ErrInvalidInput, "run id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.runs[run.ID]; ok {
		return eris.Errorf("run %s already exists", run.ID)
	}
	r.runs[run.ID] = cloneRun(*run)
	return nil
}

// GetRun returns a copy of the stored run.
func (r *RunRepository) GetRun(_ context.Context, id string) (*domain.CampaignRun, error) {
	r.mu.RLock()
	run, ok := r.runs[id]
	r.mu.RUnlock()
	if !ok {
		return nil, eris.Wrapf(port.ErrRunNotFound, "run %s", id)
	}
	out := cloneRun(run)
	return &out, nil
}

// ListRuns returns summaries newest first, ties broken by id.
func (r *RunRepository) ListRuns(_ context.Context, req port.ListRunsReq) ([]domain.CampaignRun, error) {
	r.mu.RLock()
	out := make([]domain.CampaignRun, 0, len(r.runs))
	for _, run := range r.runs {
		if req.Variant != "" && run.Variant != req.Variant {
			continue
		}
		summary := cloneRun(run)
		summary.Segments = nil
		out = append(out, summary)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b domain.CampaignRun) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	if req.Limit > 0 && len(out) > req.Limit {
		out = out[:req.Limit]
	}
	return out, nil
}

func cloneRun(run domain.CampaignRun) domain.CampaignRun {
	run.Strategy = run.Strategy.Clone()
	segments := make([]domain.SegmentResult, len(run.Segments))
	for i, seg := range run.Segments {
		seg.Demographic.Interests = slices.Clone(seg.Demographic.Interests)
		segments[i] = seg
	}
	run.Segments = segments
	return run
}
