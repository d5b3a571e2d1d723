package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

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

func allOf(o domain.Outcome, n int) []domain.Response {
	out := make([]domain.Response, n)
	for i := range out {
		out[i].Outcome = o
	}
	return out
}

func TestRunBatch_SplitsIntoChunks(t *testing.T) {
	oracle := mocks.NewMockResponseOracle(t)
	var calls []int
	var mu sync.Mutex
	oracle.EXPECT().
		Respond(mock.Anything, mock.AnythingOfType("port.OracleRequest")).
		RunAndReturn(func(_ context.Context, req port.OracleRequest) ([]domain.Response, error) {
			mu.Lock()
			calls = append(calls, req.Count)
			mu.Unlock()
			return allOf(domain.OutcomeFollowAndBuy, req.Count), nil
		})

	sim := NewSimulationUseCase(oracle, discardLogger(), DispatchOptions{ChunkSize: 10, Concurrency: 1})
	got, err := sim.RunBatch(context.Background(), BatchReq{
		Demographic: domain.Demographic{ID: "d1"},
		Variant:     "A",
		Trials:      25,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []int{10, 10, 5}, calls)
	assert.Equal(t, domain.TallyKey{DemographicID: "d1", Variant: "A"}, got.Key)
	assert.Equal(t, 25, got.FollowAndBuy)
	assert.Equal(t, got.Trials, got.Sum())
}

func TestRunBatch_FailedChunkDegradesToIgnore(t *testing.T) {
	oracle := mocks.NewMockResponseOracle(t)
	var n atomic.Int32
	oracle.EXPECT().
		Respond(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req port.OracleRequest) ([]domain.Response, error) {
			switch n.Add(1) {
			case 2:
				return nil, errors.New("oracle unreachable")
			case 3:
				return allOf(domain.OutcomeFollowLink, req.Count-1), nil
			default:
				return allOf(domain.OutcomeFollowAndSave, req.Count), nil
			}
		})

	sim := NewSimulationUseCase(oracle, discardLogger(), DispatchOptions{ChunkSize: 10, Concurrency: 1})
	got, err := sim.RunBatch(context.Background(), BatchReq{Demographic: domain.Demographic{ID: "d1"}, Trials: 40}, nil)
	require.NoError(t, err)

	assert.Equal(t, 40, got.Trials)
	assert.Equal(t, 20, got.Ignore, "failed and short chunks count as ignore")
	assert.Equal(t, 20, got.Degraded)
	assert.Equal(t, 20, got.FollowAndSave)
	assert.Zero(t, got.FollowLink)
	assert.Equal(t, got.Trials, got.Sum())
}

func TestRunBatch_AllChunksFail(t *testing.T) {
	oracle := mocks.NewMockResponseOracle(t)
	oracle.EXPECT().Respond(mock.Anything, mock.Anything).Return(nil, errors.New("down"))

	sim := NewSimulationUseCase(oracle, discardLogger(), DispatchOptions{ChunkSize: 7, Concurrency: 3})
	got, err := sim.RunBatch(context.Background(), BatchReq{Demographic: domain.Demographic{ID: "d1"}, Trials: 30}, nil)
	require.NoError(t, err)
	assert.Equal(t, 30, got.Ignore)
	assert.Equal(t, 30, got.Degraded)
}

func TestRunBatch_TimeoutDegrades(t *testing.T) {
	oracle := mocks.NewMockResponseOracle(t)
	oracle.EXPECT().
		Respond(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req port.OracleRequest) ([]domain.Response, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	sim := NewSimulationUseCase(oracle, discardLogger(), DispatchOptions{
		ChunkSize:     5,
		Concurrency:   2,
		OracleTimeout: 10 * time.Millisecond,
	})
	got, err := sim.RunBatch(context.Background(), BatchReq{Demographic: domain.Demographic{ID: "d1"}, Trials: 10}, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Ignore)
}

func TestRunBatch_ConcurrentProgressIsMonotonic(t *testing.T) {
	oracle := mocks.NewMockResponseOracle(t)
	oracle.EXPECT().
		Respond(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req port.OracleRequest) ([]domain.Response, error) {
			time.Sleep(time.Millisecond)
			return allOf(domain.OutcomeFollowAndBuy, req.Count), nil
		})

	var reports []port.Progress
	sim := NewSimulationUseCase(oracle, discardLogger(), DispatchOptions{ChunkSize: 10, Concurrency: 4})
	got, err := sim.RunBatch(context.Background(), BatchReq{Demographic: domain.Demographic{ID: "d1"}, Trials: 95},
		func(p port.Progress) { reports = append(reports, p) })
	require.NoError(t, err)

	assert.Equal(t, 95, got.FollowAndBuy)
	require.Len(t, reports, 10)
	for i := 1; i < len(reports); i++ {
		assert.GreaterOrEqual(t, reports[i].Completed, reports[i-1].Completed)
	}
	assert.Equal(t, 95, reports[len(reports)-1].Completed)
	assert.Equal(t, 95, reports[len(reports)-1].Total)
}

func TestRunBatch_CancelledRunIsDiscarded(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	oracle := mocks.NewMockResponseOracle(t)
	var n atomic.Int32
	oracle.EXPECT().
		Respond(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req port.OracleRequest) ([]domain.Response, error) {
			if n.Add(1) == 2 {
				cancel()
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return allOf(domain.OutcomeFollowAndBuy, req.Count), nil
		}).Maybe()

	sim := NewSimulationUseCase(oracle, discardLogger(), DispatchOptions{ChunkSize: 10, Concurrency: 1})
	got, err := sim.RunBatch(ctx, BatchReq{Demographic: domain.Demographic{ID: "d1"}, Trials: 50}, nil)
	assert.ErrorIs(t, err, port.ErrRunCancelled)
	assert.Equal(t, domain.Tally{}, got)
}

func TestRunBatch_PacedDispatch(t *testing.T) {
	oracle := mocks.NewMockResponseOracle(t)
	oracle.EXPECT().
		Respond(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req port.OracleRequest) ([]domain.Response, error) {
			return allOf(domain.OutcomeIgnore, req.Count), nil
		})

	sim := NewSimulationUseCase(oracle, discardLogger(), DispatchOptions{ChunkSize: 1, Concurrency: 3, BatchPause: 20 * time.Millisecond})
	start := time.Now()
	_, err := sim.RunBatch(context.Background(), BatchReq{Demographic: domain.Demographic{ID: "d1"}, Trials: 4}, nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 55*time.Millisecond)
}

func TestRunBatch_PacingPastDeadlineDegrades(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	oracle := mocks.NewMockResponseOracle(t)
	oracle.EXPECT().
		Respond(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req port.OracleRequest) ([]domain.Response, error) {
			return allOf(domain.OutcomeFollowLink, req.Count), nil
		})

	// 100 paced chunks need about two seconds, far past the deadline.
	sim := NewSimulationUseCase(oracle, discardLogger(), DispatchOptions{ChunkSize: 1, Concurrency: 1, BatchPause: 20 * time.Millisecond})
	got, err := sim.RunBatch(ctx, BatchReq{Demographic: domain.Demographic{ID: "d1"}, Trials: 100}, nil)

	if err != nil {
		// the deadline may still land while the last paced chunk is in flight
		require.ErrorIs(t, err, port.ErrRunCancelled)
		return
	}
	assert.Equal(t, 100, got.Trials)
	assert.Equal(t, got.Trials, got.Sum())
	assert.Positive(t, got.Degraded)
	assert.Positive(t, got.FollowLink)
	assert.Equal(t, got.Degraded, got.Ignore)
}
