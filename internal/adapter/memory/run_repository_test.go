package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-sim/internal/core/domain"
	"campaign-sim/internal/core/port"
)

func newRun(id, variant string, at time.Time) *domain.CampaignRun {
	return &domain.CampaignRun{
		ID:      id,
		Variant: variant,
		Strategy: domain.Strategy{Allocations: []domain.Allocation{
			{ChannelID: "email", Spend: 100, DemographicIDs: []string{"d1"}},
		}},
		Segments: []domain.SegmentResult{{
			Demographic: domain.Demographic{ID: "d1", Interests: []string{"tech"}},
			Tally:       domain.Tally{Trials: 10, Ignore: 10},
		}},
		CreatedAt: at,
	}
}

func TestRunRepository_SaveAndGet(t *testing.T) {
	repo := NewRunRepository()
	ctx := context.Background()
	run := newRun("r1", "A", time.Now())

	require.NoError(t, repo.SaveRun(ctx, run))

	got, err := repo.GetRun(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, *run, *got)
}

func TestRunRepository_CopiesOnReadAndWrite(t *testing.T) {
	repo := NewRunRepository()
	ctx := context.Background()
	run := newRun("r1", "A", time.Now())
	require.NoError(t, repo.SaveRun(ctx, run))

	run.Segments[0].Demographic.Interests[0] = "mutated"
	run.Strategy.Allocations[0].DemographicIDs[0] = "mutated"

	got, err := repo.GetRun(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "tech", got.Segments[0].Demographic.Interests[0])
	assert.Equal(t, "d1", got.Strategy.Allocations[0].DemographicIDs[0])

	got.Segments[0].Tally.Trials = 99
	again, err := repo.GetRun(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 10, again.Segments[0].Tally.Trials)
}

func TestRunRepository_Errors(t *testing.T) {
	repo := NewRunRepository()
	ctx := context.Background()

	_, err := repo.GetRun(ctx, "nope")
	assert.ErrorIs(t, err, port.ErrRunNotFound)

	assert.ErrorIs(t, repo.SaveRun(ctx, &domain.CampaignRun{}), port.ErrInvalidInput)

	require.NoError(t, repo.SaveRun(ctx, newRun("r1", "A", time.Now())))
	assert.Error(t, repo.SaveRun(ctx, newRun("r1", "A", time.Now())))
}

func TestRunRepository_ListRuns(t *testing.T) {
	repo := NewRunRepository()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveRun(ctx, newRun("old", "A", base)))
	require.NoError(t, repo.SaveRun(ctx, newRun("mid", "B", base.Add(time.Minute))))
	require.NoError(t, repo.SaveRun(ctx, newRun("new", "A", base.Add(2*time.Minute))))

	all, err := repo.ListRuns(ctx, port.ListRunsReq{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{all[0].ID, all[1].ID, all[2].ID})
	for _, r := range all {
		assert.Nil(t, r.Segments)
	}

	onlyA, err := repo.ListRuns(ctx, port.ListRunsReq{Variant: "A", Limit: 1})
	require.NoError(t, err)
	require.Len(t, onlyA, 1)
	assert.Equal(t, "new", onlyA[0].ID)
}

func TestRunRepository_ConcurrentSaves(t *testing.T) {
	repo := NewRunRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.SaveRun(ctx, newRun(fmt.Sprintf("r%d", i), "A", time.Now())))
		}()
	}
	wg.Wait()

	runs, err := repo.ListRuns(ctx, port.ListRunsReq{})
	require.NoError(t, err)
	assert.Len(t, runs, 50)
}
