package db

import (
	"context"
	"log/slog"

	"github.com/rotisserie/eris"

	"campaign-sim/internal/core/domain"
	"campaign-sim/internal/core/port"
)

// DemoRequests returns the A/B pair stored by Seed. Both variants share the
// product, audience and strategy and differ only in tagline.
func DemoRequests() []port.SimulationReq {
	demographics := []domain.Demographic{
		{
			ID:          "young-tech",
			AgeBand:     domain.AgeBand18to24,
			Gender:      "male",
			Interests:   []string{"gaming", "tech"},
			Category:    "student",
			Description: "students who follow hardware reviews",
		},
		{
			ID:          "working-parents",
			AgeBand:     domain.AgeBand35to44,
			Gender:      "female",
			Interests:   []string{"family", "cooking", "fitness"},
			Category:    "family",
			Description: "parents juggling work and home",
		},
		{
			ID:        "retirees",
			AgeBand:   domain.AgeBand65Plus,
			Gender:    "all",
			Interests: []string{"travel"},
			Category:  "affluent",
		},
	}
	strategy := domain.Strategy{
		TotalBudget:  20000,
		DurationDays: 30,
		Allocations: []domain.Allocation{
			{ChannelID: "social_media", Spend: 8000, DemographicIDs: []string{"young-tech", "working-parents"}},
			{ChannelID: "search_ads", Spend: 7000, DemographicIDs: []string{"working-parents", "retirees"}},
			{ChannelID: "email", Spend: 5000, DemographicIDs: []string{"retirees"}},
		},
	}
	product := domain.Product{
		Name:        "Thermo Bottle",
		Description: "insulated steel bottle that keeps drinks hot for 12 hours",
		SalesPrice:  35,
		UnitCost:    12,
	}

	taglines := map[string]string{
		"A": "Hot coffee at lunch. Every day.",
		"B": "The last bottle you will ever buy.",
	}
	reqs := make([]port.SimulationReq, 0, len(taglines))
	for _, variant := range []string{"A", "B"} {
		reqs = append(reqs, port.SimulationReq{
			Variant:          variant,
			Product:          product,
			Tagline:          taglines[variant],
			Demographics:     demographics,
			Strategy:         strategy.Clone(),
			TrialsPerSegment: 60,
		})
	}
	return reqs
}

// Seed stores the demo runs when the repository holds no run yet.
func Seed(ctx context.Context, uc port.CampaignUseCase, logger *slog.Logger) error {
	existing, err := uc.ListRuns(ctx, port.ListRunsReq{Limit: 1})
	if err != nil {
		return eris.Wrap(err, "check existing runs")
	}
	if len(existing) > 0 {
		logger.Info("seed skipped, runs already stored")
		return nil
	}

	for _, req := range DemoRequests() {
		run, err := uc.Simulate(ctx, req, nil)
		if err != nil {
			return eris.Wrapf(err, "seed variant %s", req.Variant)
		}
		logger.Info("seeded demo run",
			slog.String("id", run.ID),
			slog.String("variant", run.Variant),
			slog.Int("conversions", run.Totals.Conversions))
	}
	return nil
}
