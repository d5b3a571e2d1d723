package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"campaign-sim/internal/core/port"
)

// handleSimulate runs a simulation and returns the stored run with 201.
// The request blocks until every trial is tallied; cancelling the request
// cancels the run and nothing is stored.
func (h *Handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req port.SimulationReq
	if !h.decode(w, r, &req) {
		return
	}
	progress := func(p port.Progress) {
		h.logger.Debug("simulation progress",
			slog.String("demographic", p.DemographicID),
			slog.Int("completed", p.Completed),
			slog.Int("total", p.Total),
			slog.Int("degraded", p.Degraded))
	}
	run, err := h.svc.Simulate(r.Context(), req, progress)
	if err != nil {
		h.writeError(w, r, "simulate", err)
		return
	}
	writeJSON(w, http.StatusCreated, run, h.logger)
}

// handleListRuns returns run summaries. Optional query parameters are
// `variant` and `limit`.
func (h *Handler) handleListRuns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := port.ListRunsReq{Variant: q.Get("variant")}
	if s := q.Get("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil || limit < 0 {
			writeJSON(w, http.StatusBadRequest, errorResp{Error: "invalid limit"}, h.logger)
			return
		}
		req.Limit = limit
	}
	runs, err := h.svc.ListRuns(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "list runs", err)
		return
	}
	writeJSON(w, http.StatusOK, runs, h.logger)
}

func (h *Handler) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, err := h.svc.GetRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "get run", err)
		return
	}
	writeJSON(w, http.StatusOK, run, h.logger)
}

type compareRunsReq struct {
	RunA string `json:"run_a"`
	RunB string `json:"run_b"`
}

func (h *Handler) handleCompareRuns(w http.ResponseWriter, r *http.Request) {
	var req compareRunsReq
	if !h.decode(w, r, &req) {
		return
	}
	cmp, err := h.svc.CompareRuns(r.Context(), req.RunA, req.RunB)
	if err != nil {
		h.writeError(w, r, "compare runs", err)
		return
	}
	writeJSON(w, http.StatusOK, cmp, h.logger)
}
