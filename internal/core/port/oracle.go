package port

import (
	"context"

	"campaign-sim/internal/core/domain"
)

// ResponseOracle decides how simulated people react to a campaign. It is an
// outbound port; implementations may call remote services and must be safe
// for concurrent use.
type ResponseOracle interface {
	// Respond returns exactly req.Count responses, one per trial. Any other
	// length is treated by callers as a failed sub-batch.
	Respond(ctx context.Context, req OracleRequest) ([]domain.Response, error)
}

// OracleRequest describes one sub-batch of trials.
type OracleRequest struct {
	Demographic domain.Demographic
	Product     domain.Product
	Tagline     string
	Count       int
}
