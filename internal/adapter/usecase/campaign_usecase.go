package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"campaign-sim/internal/core/channel"
	"campaign-sim/internal/core/domain"
	"campaign-sim/internal/core/economics"
	"campaign-sim/internal/core/market"
	"campaign-sim/internal/core/port"
	"campaign-sim/internal/core/significance"
	"campaign-sim/internal/metrics"
)

// DefaultVariant labels runs submitted without a variant.
const DefaultVariant = "A"

// TrialLimits bound the trials a request may ask for per demographic.
type TrialLimits struct {
	Default int
	Max     int
}

// CampaignUseCase implements port.CampaignUseCase. It resolves demographic
// sizes, runs trials, derives economics and stores completed runs.
type CampaignUseCase struct {
	sim     *SimulationUseCase
	repo    port.RunRepository
	catalog *channel.Catalog
	logger  *slog.Logger
	limits  TrialLimits
	now     func() time.Time
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// NewCampaignUseCase wires the campaign use case. A zero Default trial
// count falls back to 50.
func NewCampaignUseCase(sim *SimulationUseCase, repo port.RunRepository, catalog *channel.Catalog, logger *slog.Logger, limits TrialLimits) *CampaignUseCase {
	if limits.Default <= 0 {
		limits.Default = 50
	}
	if limits.Max > 0 && limits.Default > limits.Max {
		limits.Default = limits.Max
	}
	return &CampaignUseCase{
		sim:     sim,
		repo:    repo,
		catalog: catalog,
		logger:  logger,
		limits:  limits,
		now:     time.Now,
	}
}

// Simulate implements port.CampaignUseCase.
func (u *CampaignUseCase) Simulate(ctx context.Context, req port.SimulationReq, progress port.ProgressFunc) (*domain.CampaignRun, error) {
	if err := u.validate(req); err != nil {
		return nil, err
	}
	trials := req.TrialsPerSegment
	if trials == 0 {
		trials = u.limits.Default
	}
	variant := req.Variant
	if variant == "" {
		variant = DefaultVariant
	}
	strategy := req.Strategy.Clone()
	if unknown := u.catalog.UnknownChannels(strategy); len(unknown) > 0 {
		u.logger.Info("strategy references unknown channels, skipping them", slog.Any("channels", unknown))
	}

	total := trials * len(req.Demographics)
	done, degraded := 0, 0
	segments := make([]domain.SegmentResult, 0, len(req.Demographics))
	for _, d := range req.Demographics {
		snapshot := market.WithSize(d)

		var report port.ProgressFunc
		if progress != nil {
			doneBefore, degradedBefore := done, degraded
			report = func(p port.Progress) {
				p.Completed += doneBefore
				p.Degraded += degradedBefore
				p.Total = total
				progress(p)
			}
		}

		t, err := u.sim.RunBatch(ctx, BatchReq{
			Demographic: snapshot,
			Variant:     variant,
			Product:     req.Product,
			Tagline:     req.Tagline,
			Trials:      trials,
		}, report)
		if err != nil {
			metrics.RunsTotal.WithLabelValues(runResult(err)).Inc()
			return nil, err
		}
		done += trials
		degraded += t.Degraded

		segments = append(segments, domain.SegmentResult{
			Demographic: snapshot,
			Tally:       t,
			Economics:   economics.Derive(u.catalog, t, snapshot, economics.PricingOf(req.Product), strategy),
		})
	}

	run := &domain.CampaignRun{
		ID:               uuid.NewString(),
		Variant:          variant,
		Product:          req.Product,
		Tagline:          req.Tagline,
		Strategy:         strategy,
		TrialsPerSegment: trials,
		Segments:         segments,
		Totals:           economics.Totals(segments),
		CreatedAt:        u.now().UTC(),
	}
	if err := u.repo.SaveRun(ctx, run); err != nil {
		metrics.RunsTotal.WithLabelValues("error").Inc()
		return nil, eris.Wrap(err, "usecase: save run")
	}
	metrics.RunsTotal.WithLabelValues("ok").Inc()
	u.logger.Info("campaign run completed",
		slog.String("run_id", run.ID),
		slog.String("variant", run.Variant),
		slog.Int("segments", len(segments)),
		slog.Int("trials", run.Totals.Trials),
		slog.Float64("profit", run.Totals.Profit))
	return run, nil
}

func runResult(err error) string {
	if errors.Is(err, port.ErrRunCancelled) {
		return "cancelled"
	}
	return "error"
}

func (u *CampaignUseCase) validate(req port.SimulationReq) error {
	if len(req.Demographics) == 0 {
		return fmt.Errorf("%w: at least one demographic is required", port.ErrInvalidInput)
	}
	seen := make(map[string]struct{}, len(req.Demographics))
	for _, d := range req.Demographics {
		if d.ID == "" {
			return fmt.Errorf("%w: demographic id is required", port.ErrInvalidInput)
		}
		if _, ok := seen[d.ID]; ok {
			return fmt.Errorf("%w: duplicate demographic %q", port.ErrInvalidInput, d.ID)
		}
		seen[d.ID] = struct{}{}
	}
	if req.TrialsPerSegment < 0 {
		return fmt.Errorf("%w: trials_per_segment must not be negative", port.ErrInvalidInput)
	}
	if u.limits.Max > 0 && req.TrialsPerSegment > u.limits.Max {
		return fmt.Errorf("%w: trials_per_segment exceeds %d", port.ErrInvalidInput, u.limits.Max)
	}
	if !validMoney(req.Product.SalesPrice) || !validMoney(req.Product.UnitCost) {
		return fmt.Errorf("%w: prices must be finite and non-negative", port.ErrInvalidInput)
	}
	for _, a := range req.Strategy.Allocations {
		if !validMoney(a.Spend) {
			return fmt.Errorf("%w: spend on %q must be finite and non-negative", port.ErrInvalidInput, a.ChannelID)
		}
	}
	return nil
}

func validMoney(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// GetRun implements port.CampaignUseCase.
func (u *CampaignUseCase) GetRun(ctx context.Context, id string) (*domain.CampaignRun, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty run id", port.ErrInvalidInput)
	}
	return u.repo.GetRun(ctx, id)
}

// ListRuns implements port.CampaignUseCase.
func (u *CampaignUseCase) ListRuns(ctx context.Context, req port.ListRunsReq) ([]domain.CampaignRun, error) {
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 100
	}
	return u.repo.ListRuns(ctx, req)
}

// CompareRuns implements port.CampaignUseCase using each run's total
// purchases out of total trials.
func (u *CampaignUseCase) CompareRuns(ctx context.Context, idA, idB string) (*port.RunComparison, error) {
	a, err := u.GetRun(ctx, idA)
	if err != nil {
		return nil, err
	}
	b, err := u.GetRun(ctx, idB)
	if err != nil {
		return nil, err
	}
	return &port.RunComparison{
		RunA:   a.ID,
		RunB:   b.ID,
		Result: u.Compare(sampleOf(a), sampleOf(b)),
	}, nil
}

func sampleOf(run *domain.CampaignRun) significance.Sample {
	return significance.Sample{Conversions: run.Totals.Conversions, Trials: run.Totals.Trials}
}

// Compare implements port.CampaignUseCase.
func (u *CampaignUseCase) Compare(a, b significance.Sample) significance.Result {
	return significance.Compare(a, b)
}

// EstimateSize implements port.CampaignUseCase.
func (u *CampaignUseCase) EstimateSize(d domain.Demographic) int64 {
	return market.EstimateSize(d)
}

// Plan implements port.CampaignUseCase.
func (u *CampaignUseCase) Plan(s domain.Strategy, d domain.Demographic) port.PlanResp {
	size := market.ResolveSize(d)
	aggregate, realized := economics.Penetration(u.catalog, s, d)
	return port.PlanResp{
		DemographicID:   d.ID,
		EstimatedSize:   size,
		AggregateReach:  aggregate,
		Penetration:     realized,
		PeopleReached:   int64(math.Floor(float64(size) * realized)),
		Boosts:          u.catalog.Blend(s, d),
		StrategyCost:    u.catalog.StrategyCost(s),
		AllocatedCost:   economics.AllocatedCost(u.catalog, s, d.ID),
		UnknownChannels: u.catalog.UnknownChannels(s),
	}
}

// Channels implements port.CampaignUseCase.
func (u *CampaignUseCase) Channels() []domain.Channel {
	return u.catalog.Channels()
}
