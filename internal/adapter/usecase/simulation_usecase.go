package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"campaign-sim/internal/core/domain"
	"campaign-sim/internal/core/port"
	"campaign-sim/internal/core/tally"
	"campaign-sim/internal/metrics"
)

// errShortReply marks an oracle reply with the wrong number of responses.
var errShortReply = errors.New("oracle reply length does not match trial count")

// DispatchOptions control how trials are sent to the oracle.
type DispatchOptions struct {
	// ChunkSize is the number of trials per sub-batch. Defaults to 10.
	ChunkSize int
	// Concurrency bounds in-flight sub-batches. Defaults to 1.
	Concurrency int
	// BatchPause is the minimum gap between sub-batch dispatches.
	BatchPause time.Duration
	// OracleTimeout bounds a single sub-batch call. Zero means no limit.
	OracleTimeout time.Duration
}

// SimulationUseCase runs batches of trials through a response oracle and
// folds the answers into tallies.
type SimulationUseCase struct {
	oracle port.ResponseOracle
	logger *slog.Logger
	opts   DispatchOptions
}

// NewSimulationUseCase creates a simulation runner.
func NewSimulationUseCase(oracle port.ResponseOracle, logger *slog.Logger, opts DispatchOptions) *SimulationUseCase {
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = 10
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	return &SimulationUseCase{oracle: oracle, logger: logger, opts: opts}
}

// BatchReq describes the trials to run for one demographic.
type BatchReq struct {
	Demographic domain.Demographic
	Variant     string
	Product     domain.Product
	Tagline     string
	Trials      int
}

// RunBatch dispatches req.Trials trials in sub-batches and returns their
// tally. A sub-batch the oracle cannot complete is recorded as ignore, so
// the tally always accounts for every trial. If ctx is cancelled the
// partial tally is discarded and ErrRunCancelled is returned.
func (u *SimulationUseCase) RunBatch(ctx context.Context, req BatchReq, progress port.ProgressFunc) (domain.Tally, error) {
	key := domain.TallyKey{DemographicID: req.Demographic.ID, Variant: req.Variant}
	sizes := tally.Split(req.Trials, u.opts.ChunkSize)
	chunks := make([]tally.Chunk, len(sizes))

	var limiter *rate.Limiter
	if u.opts.BatchPause > 0 {
		limiter = rate.NewLimiter(rate.Every(u.opts.BatchPause), 1)
	}

	var (
		mu        sync.Mutex
		completed int
		degraded  int
	)

	var g errgroup.Group
	g.SetLimit(u.opts.Concurrency)
	for i, size := range sizes {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			var chunk tally.Chunk
			if err := pace(ctx, limiter); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				// the pause would outlast the caller's deadline
				chunk = u.degrade(req, i, size, "paced_out", err)
			} else {
				chunk = u.runChunk(ctx, req, i, size)
			}
			chunks[i] = chunk

			mu.Lock()
			defer mu.Unlock()
			completed += chunk.Size
			if chunk.Degraded {
				degraded += chunk.Size
			}
			if progress != nil {
				progress(port.Progress{
					DemographicID: key.DemographicID,
					Completed:     completed,
					Total:         req.Trials,
					Degraded:      degraded,
				})
			}
			return nil
		})
	}
	_ = g.Wait()

	if ctx.Err() != nil {
		return domain.Tally{}, eris.Wrapf(port.ErrRunCancelled, "demographic %s after %d of %d trials",
			key.DemographicID, completed, req.Trials)
	}

	t, err := tally.Fold(key, req.Trials, chunks)
	if err != nil {
		return domain.Tally{}, err
	}
	metrics.ObserveTally(t)
	return t, nil
}

func pace(ctx context.Context, limiter *rate.Limiter) error {
	if limiter == nil {
		return nil
	}
	return limiter.Wait(ctx)
}

// runChunk asks the oracle for one sub-batch and degrades it to ignore on
// any failure.
func (u *SimulationUseCase) runChunk(ctx context.Context, req BatchReq, index, size int) tally.Chunk {
	callCtx, cancel := ctx, context.CancelFunc(func() {})
	if u.opts.OracleTimeout > 0 {
		callCtx, cancel = context.WithTimeout(ctx, u.opts.OracleTimeout)
	}
	defer cancel()

	start := time.Now()
	responses, err := u.oracle.Respond(callCtx, port.OracleRequest{
		Demographic: req.Demographic,
		Product:     req.Product,
		Tagline:     req.Tagline,
		Count:       size,
	})
	if err == nil && len(responses) != size {
		err = eris.Wrapf(errShortReply, "got %d, want %d", len(responses), size)
	}
	elapsed := time.Since(start).Seconds()

	if err != nil {
		reason := "error"
		switch {
		case errors.Is(err, errShortReply):
			reason = "short_reply"
		case errors.Is(err, context.DeadlineExceeded):
			reason = "timeout"
		case errors.Is(err, context.Canceled):
			reason = "cancelled"
		}
		metrics.OracleDuration.WithLabelValues("error").Observe(elapsed)
		return u.degrade(req, index, size, reason, err)
	}

	metrics.OracleDuration.WithLabelValues("ok").Observe(elapsed)
	return tally.Completed(index, responses)
}

// degrade records a sub-batch as ignore and logs why.
func (u *SimulationUseCase) degrade(req BatchReq, index, size int, reason string, err error) tally.Chunk {
	metrics.DegradedChunksTotal.WithLabelValues(reason).Inc()
	u.logger.Warn("oracle sub-batch degraded to ignore",
		slog.String("demographic", req.Demographic.ID),
		slog.Int("chunk", index),
		slog.Int("size", size),
		slog.String("reason", reason),
		slog.Any("error", err))
	return tally.Degraded(index, size)
}
