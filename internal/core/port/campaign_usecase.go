package port

import (
	"context"

	"campaign-sim/internal/core/channel"
	"campaign-sim/internal/core/domain"
	"campaign-sim/internal/core/significance"
)

// CampaignUseCase defines the operations exposed by the simulation engine.
// It is the primary port used by the HTTP adapter and the CLI.
type CampaignUseCase interface {
	// Simulate runs every demographic of req through the response oracle,
	// derives economics and stores the resulting run. Oracle failures
	// degrade trials to ignore; cancellation returns ErrRunCancelled and
	// stores nothing.
	Simulate(ctx context.Context, req SimulationReq, progress ProgressFunc) (*domain.CampaignRun, error)

	// GetRun returns a stored run or ErrRunNotFound.
	GetRun(ctx context.Context, id string) (*domain.CampaignRun, error)

	// ListRuns returns stored run summaries.
	ListRuns(ctx context.Context, req ListRunsReq) ([]domain.CampaignRun, error)

	// CompareRuns tests whether the conversion rates of two stored runs
	// differ significantly.
	CompareRuns(ctx context.Context, idA, idB string) (*RunComparison, error)

	// Compare tests two raw conversion samples.
	Compare(a, b significance.Sample) significance.Result

	// EstimateSize returns the market size of a demographic.
	EstimateSize(d domain.Demographic) int64

	// Plan previews the reach and cost of a strategy for one demographic
	// without running any trials.
	Plan(s domain.Strategy, d domain.Demographic) PlanResp

	// Channels returns the channel catalog.
	Channels() []domain.Channel
}

// SimulationReq is the input of a simulation run. TrialsPerSegment of zero
// uses the configured default.
type SimulationReq struct {
	Variant          string               `json:"variant"`
	Product          domain.Product       `json:"product"`
	Tagline          string               `json:"tagline"`
	Demographics     []domain.Demographic `json:"demographics"`
	Strategy         domain.Strategy      `json:"strategy"`
	TrialsPerSegment int                  `json:"trials_per_segment"`
}

// Progress reports completed and degraded trials counted from the start of
// the run, across every demographic finished so far. Total is the run-wide
// trial count. Values never decrease within a run.
type Progress struct {
	DemographicID string
	Completed     int
	Total         int
	Degraded      int
}

// ProgressFunc receives progress after every completed sub-batch. It is
// advisory only and may be nil.
type ProgressFunc func(Progress)

// RunComparison is the significance test of two runs' total conversions.
type RunComparison struct {
	RunA   string              `json:"run_a"`
	RunB   string              `json:"run_b"`
	Result significance.Result `json:"result"`
}

// PlanResp previews a strategy for one demographic.
type PlanResp struct {
	DemographicID   string         `json:"demographic_id"`
	EstimatedSize   int64          `json:"estimated_size"`
	AggregateReach  float64        `json:"aggregate_reach"`
	Penetration     float64        `json:"penetration"`
	PeopleReached   int64          `json:"people_reached"`
	Boosts          channel.Boosts `json:"boosts"`
	StrategyCost    float64        `json:"strategy_cost"`
	AllocatedCost   float64        `json:"allocated_cost"`
	UnknownChannels []string       `json:"unknown_channels,omitempty"`
}
