package httpadapter

import (
	"net/http"

	"campaign-sim/internal/core/domain"
	"campaign-sim/internal/core/significance"
)

type significanceReq struct {
	A significance.Sample `json:"a"`
	B significance.Sample `json:"b"`
}

func validSample(s significance.Sample) bool {
	return s.Trials >= 0 && s.Conversions >= 0 && s.Conversions <= s.Trials
}

// handleSignificance runs a two-proportion z-test on raw counts.
func (h *Handler) handleSignificance(w http.ResponseWriter, r *http.Request) {
	var req significanceReq
	if !h.decode(w, r, &req) {
		return
	}
	if !validSample(req.A) || !validSample(req.B) {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "conversions must be between 0 and trials"}, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Compare(req.A, req.B), h.logger)
}

type marketSizeResp struct {
	DemographicID string `json:"demographic_id"`
	EstimatedSize int64  `json:"estimated_size"`
}

// handleMarketSize estimates the audience of one demographic. Any size in
// the request body is ignored.
func (h *Handler) handleMarketSize(w http.ResponseWriter, r *http.Request) {
	var d domain.Demographic
	if !h.decode(w, r, &d) {
		return
	}
	d.EstimatedSize = 0
	writeJSON(w, http.StatusOK, marketSizeResp{
		DemographicID: d.ID,
		EstimatedSize: h.svc.EstimateSize(d),
	}, h.logger)
}

func (h *Handler) handleChannels(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Channels(), h.logger)
}

type planReq struct {
	Strategy    domain.Strategy    `json:"strategy"`
	Demographic domain.Demographic `json:"demographic"`
}

// handlePlan previews reach and cost of a strategy for one demographic.
func (h *Handler) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req planReq
	if !h.decode(w, r, &req) {
		return
	}
	for _, a := range req.Strategy.Allocations {
		if a.Spend < 0 {
			writeJSON(w, http.StatusBadRequest, errorResp{Error: "spend must not be negative"}, h.logger)
			return
		}
	}
	writeJSON(w, http.StatusOK, h.svc.Plan(req.Strategy, req.Demographic), h.logger)
}
