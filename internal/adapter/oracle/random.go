// Package oracle provides ResponseOracle implementations.
package oracle

import (
	"context"
	"math/rand/v2"
	"sync"

	"campaign-sim/internal/core/domain"
	"campaign-sim/internal/core/port"
)

// Weights are the relative odds of each outcome before adjustment.
type Weights struct {
	Ignore        float64
	FollowLink    float64
	FollowAndBuy  float64
	FollowAndSave float64
}

// DefaultWeights roughly match an untargeted display campaign.
var DefaultWeights = Weights{Ignore: 0.72, FollowLink: 0.14, FollowAndBuy: 0.05, FollowAndSave: 0.09}

// maxInterestNudge caps how much declared interests raise engagement odds.
const maxInterestNudge = 1.5

// Random draws outcomes from fixed weights with a seeded generator. Given
// the same seed and call sequence it returns the same responses.
type Random struct {
	mu      sync.Mutex
	rng     *rand.Rand
	weights Weights
}

var _ port.ResponseOracle = (*Random)(nil)

// NewRandom returns a Random oracle. Zero weights use DefaultWeights.
func NewRandom(seed uint64, w Weights) *Random {
	if w.Ignore+w.FollowLink+w.FollowAndBuy+w.FollowAndSave <= 0 {
		w = DefaultWeights
	}
	return &Random{
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		weights: w,
	}
}

// Respond implements port.ResponseOracle.
func (r *Random) Respond(ctx context.Context, req port.OracleRequest) ([]domain.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	w := r.adjusted(req.Demographic)
	total := w.Ignore + w.FollowLink + w.FollowAndBuy + w.FollowAndSave

	out := make([]domain.Response, max(req.Count, 0))
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range out {
		x := r.rng.Float64() * total
		switch {
		case x < w.Ignore:
			out[i].Outcome = domain.OutcomeIgnore
		case x < w.Ignore+w.FollowLink:
			out[i].Outcome = domain.OutcomeFollowLink
		case x < w.Ignore+w.FollowLink+w.FollowAndBuy:
			out[i].Outcome = domain.OutcomeFollowAndBuy
		default:
			out[i].Outcome = domain.OutcomeFollowAndSave
		}
	}
	return out, nil
}

// adjusted raises engagement odds for segments with declared interests;
// a narrower audience is assumed to be a better fit.
func (r *Random) adjusted(d domain.Demographic) Weights {
	nudge := min(maxInterestNudge, 1+0.05*float64(len(d.Interests)))
	w := r.weights
	w.FollowLink *= nudge
	w.FollowAndBuy *= nudge
	w.FollowAndSave *= nudge
	return w
}
