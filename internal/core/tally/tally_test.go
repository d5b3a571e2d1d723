package tally

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-sim/internal/core/domain"
)

var key = domain.TallyKey{DemographicID: "d1", Variant: "A"}

func responses(outcomes ...domain.Outcome) []domain.Response {
	out := make([]domain.Response, len(outcomes))
	for i, o := range outcomes {
		out[i] = domain.Response{Outcome: o}
	}
	return out
}

func TestSplit(t *testing.T) {
	assert.Equal(t, []int{10, 10, 5}, Split(25, 10))
	assert.Equal(t, []int{7}, Split(7, 10))
	assert.Equal(t, []int{7}, Split(7, 0))
	assert.Nil(t, Split(0, 10))
}

func TestFold_CountsOutcomes(t *testing.T) {
	chunks := []Chunk{
		Completed(0, responses(domain.OutcomeIgnore, domain.OutcomeFollowLink, domain.OutcomeFollowAndBuy)),
		Completed(1, responses(domain.OutcomeFollowAndSave, domain.OutcomeFollowAndBuy)),
	}
	got, err := Fold(key, 5, chunks)
	require.NoError(t, err)
	assert.Equal(t, domain.Tally{
		Key: key, Trials: 5, Ignore: 1, FollowLink: 1, FollowAndBuy: 2, FollowAndSave: 1,
	}, got)
	assert.InDelta(t, 0.4, got.ConversionRate(), 1e-12)
	assert.InDelta(t, 0.8, got.EngagementRate(), 1e-12)
}

func TestFold_DegradedChunksCountAsIgnore(t *testing.T) {
	chunks := []Chunk{
		Completed(0, responses(domain.OutcomeFollowAndBuy, domain.OutcomeFollowAndBuy)),
		Degraded(1, 2),
		Degraded(2, 1),
	}
	got, err := Fold(key, 5, chunks)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Ignore)
	assert.Equal(t, 3, got.Degraded)
	assert.Equal(t, got.Trials, got.Sum())
}

func TestFold_AllDegradedIsWellFormed(t *testing.T) {
	var chunks []Chunk
	for i, size := range Split(23, 10) {
		chunks = append(chunks, Degraded(i, size))
	}
	got, err := Fold(key, 23, chunks)
	require.NoError(t, err)
	assert.Equal(t, 23, got.Ignore)
	assert.Zero(t, got.ConversionRate())
}

func TestFold_ConservationViolations(t *testing.T) {
	_, err := Fold(key, 5, []Chunk{Completed(0, responses(domain.OutcomeIgnore))})
	assert.ErrorIs(t, err, ErrConservation, "missing trials")

	short := Chunk{Index: 0, Size: 3, Outcomes: []domain.Outcome{domain.OutcomeIgnore}}
	_, err = Fold(key, 3, []Chunk{short})
	assert.ErrorIs(t, err, ErrConservation, "chunk shorter than declared")

	_, err = Fold(key, 1, []Chunk{Completed(0, responses(domain.OutcomeIgnore)), Degraded(1, 1)})
	assert.ErrorIs(t, err, ErrConservation, "double counted")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(domain.Tally{Trials: 2, Ignore: 1, FollowLink: 1}))
	assert.ErrorIs(t, Validate(domain.Tally{Trials: 2, Ignore: 3, FollowLink: -1}), ErrConservation)
	assert.ErrorIs(t, Validate(domain.Tally{Trials: 1, Ignore: 1, Degraded: 2}), ErrConservation)
}
