package db

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-sim/internal/core/domain"
	"campaign-sim/internal/core/port"
	"campaign-sim/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDemoRequests(t *testing.T) {
	reqs := DemoRequests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "A", reqs[0].Variant)
	assert.Equal(t, "B", reqs[1].Variant)
	assert.NotEqual(t, reqs[0].Tagline, reqs[1].Tagline)
	assert.Equal(t, reqs[0].Strategy, reqs[1].Strategy)

	reqs[0].Strategy.Allocations[0].DemographicIDs[0] = "changed"
	assert.Equal(t, "young-tech", reqs[1].Strategy.Allocations[0].DemographicIDs[0])
}

func TestSeed_StoresBothVariants(t *testing.T) {
	uc := mocks.NewMockCampaignUseCase(t)
	uc.EXPECT().ListRuns(mock.Anything, port.ListRunsReq{Limit: 1}).Return(nil, nil)
	uc.EXPECT().Simulate(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req port.SimulationReq, _ port.ProgressFunc) (*domain.CampaignRun, error) {
			return &domain.CampaignRun{ID: "run-" + req.Variant, Variant: req.Variant}, nil
		}).Times(2)

	require.NoError(t, Seed(context.Background(), uc, discardLogger()))
}

func TestSeed_SkipsWhenRunsExist(t *testing.T) {
	uc := mocks.NewMockCampaignUseCase(t)
	uc.EXPECT().ListRuns(mock.Anything, mock.Anything).Return([]domain.CampaignRun{{ID: "x"}}, nil)

	require.NoError(t, Seed(context.Background(), uc, discardLogger()))
}

func TestSeed_PropagatesSimulationError(t *testing.T) {
	uc := mocks.NewMockCampaignUseCase(t)
	uc.EXPECT().ListRuns(mock.Anything, mock.Anything).Return(nil, nil)
	uc.EXPECT().Simulate(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("oracle down")).Once()

	err := Seed(context.Background(), uc, discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed variant A")
}
