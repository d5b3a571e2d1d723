// Package tally folds sub-batch trial results into outcome tallies.
package tally

import (
	"errors"
	"fmt"

	"campaign-sim/internal/core/domain"
)

// ErrConservation means outcome counts do not add up to the trial count.
// It indicates a programming error and cannot be recovered from.
var ErrConservation = errors.New("tally: outcome counts do not sum to trial count")

// Chunk is the result of one sub-batch of trials.
type Chunk struct {
	Index    int
	Size     int
	Outcomes []domain.Outcome
	// Degraded chunks could not be completed; all their trials count as
	// ignore.
	Degraded bool
}

// Completed builds a chunk from oracle responses.
func Completed(index int, responses []domain.Response) Chunk {
	outcomes := make([]domain.Outcome, len(responses))
	for i, r := range responses {
		outcomes[i] = r.Outcome
	}
	return Chunk{Index: index, Size: len(responses), Outcomes: outcomes}
}

// Degraded builds a chunk whose size trials all fall back to ignore.
func Degraded(index, size int) Chunk {
	return Chunk{Index: index, Size: size, Degraded: true}
}

// Split divides trials into chunk sizes of at most chunkSize. A
// non-positive chunkSize yields a single chunk.
func Split(trials, chunkSize int) []int {
	if trials <= 0 {
		return nil
	}
	if chunkSize <= 0 || chunkSize > trials {
		chunkSize = trials
	}
	sizes := make([]int, 0, (trials+chunkSize-1)/chunkSize)
	for remaining := trials; remaining > 0; remaining -= chunkSize {
		sizes = append(sizes, min(chunkSize, remaining))
	}
	return sizes
}

// Fold reduces chunks into a tally for key and checks that every one of
// trials is accounted for exactly once.
func Fold(key domain.TallyKey, trials int, chunks []Chunk) (domain.Tally, error) {
	t := domain.Tally{Key: key, Trials: trials}
	for _, c := range chunks {
		if c.Degraded {
			t.Ignore += c.Size
			t.Degraded += c.Size
			continue
		}
		if len(c.Outcomes) != c.Size {
			return domain.Tally{}, fmt.Errorf("%w: chunk %d has %d outcomes for %d trials",
				ErrConservation, c.Index, len(c.Outcomes), c.Size)
		}
		for _, o := range c.Outcomes {
			switch o {
			case domain.OutcomeFollowLink:
				t.FollowLink++
			case domain.OutcomeFollowAndBuy:
				t.FollowAndBuy++
			case domain.OutcomeFollowAndSave:
				t.FollowAndSave++
			default:
				t.Ignore++
			}
		}
	}
	if err := Validate(t); err != nil {
		return domain.Tally{}, err
	}
	return t, nil
}

// Validate checks the conservation invariant of a tally.
func Validate(t domain.Tally) error {
	if t.Trials < 0 || t.Ignore < 0 || t.FollowLink < 0 || t.FollowAndBuy < 0 || t.FollowAndSave < 0 {
		return fmt.Errorf("%w: negative counter in %+v", ErrConservation, t)
	}
	if t.Sum() != t.Trials {
		return fmt.Errorf("%w: %d outcomes for %d trials", ErrConservation, t.Sum(), t.Trials)
	}
	if t.Degraded > t.Ignore {
		return fmt.Errorf("%w: %d degraded trials exceed %d ignores", ErrConservation, t.Degraded, t.Ignore)
	}
	return nil
}
