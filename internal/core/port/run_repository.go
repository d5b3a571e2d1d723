package port

import (
	"context"

	"campaign-sim/internal/core/domain"
)

// RunRepository persists completed campaign runs. Runs are append-only:
// a stored run is never modified. Implementations must be
// concurrency-safe.
type RunRepository interface {
	// SaveRun stores a completed run with its segment results.
	SaveRun(ctx context.Context, run *domain.CampaignRun) error
	// GetRun returns a run by id or ErrRunNotFound.
	GetRun(ctx context.Context, id string) (*domain.CampaignRun, error)
	// ListRuns returns run summaries newest first. Segments are omitted.
	ListRuns(ctx context.Context, req ListRunsReq) ([]domain.CampaignRun, error)
}

// ListRunsReq filters and pages ListRuns. An empty Variant matches all.
type ListRunsReq struct {
	Variant string
	Limit   int
}
