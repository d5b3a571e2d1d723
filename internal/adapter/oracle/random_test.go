package oracle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-sim/internal/core/domain"
	"campaign-sim/internal/core/port"
)

func TestRandom_ReturnsRequestedCount(t *testing.T) {
	o := NewRandom(42, Weights{})
	got, err := o.Respond(context.Background(), port.OracleRequest{Count: 17})
	require.NoError(t, err)
	assert.Len(t, got, 17)
	for _, r := range got {
		assert.Contains(t, domain.Outcomes, r.Outcome)
	}
}

func TestRandom_DeterministicForSeed(t *testing.T) {
	req := port.OracleRequest{Count: 50, Demographic: domain.Demographic{Interests: []string{"golf"}}}
	a, err := NewRandom(7, DefaultWeights).Respond(context.Background(), req)
	require.NoError(t, err)
	b, err := NewRandom(7, DefaultWeights).Respond(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRandom_RespectsWeights(t *testing.T) {
	o := NewRandom(1, Weights{FollowAndBuy: 1})
	got, err := o.Respond(context.Background(), port.OracleRequest{Count: 20})
	require.NoError(t, err)
	for _, r := range got {
		assert.Equal(t, domain.OutcomeFollowAndBuy, r.Outcome)
	}
}

func TestRandom_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewRandom(1, DefaultWeights).Respond(ctx, port.OracleRequest{Count: 3})
	assert.ErrorIs(t, err, context.Canceled)
}
