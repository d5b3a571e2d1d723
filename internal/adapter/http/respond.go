package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"campaign-sim/internal/core/port"
)

type errorResp struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; headers are already sent
		logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps use case errors to status codes. Internal errors are
// logged and reported without detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, port.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResp{Error: err.Error()}, h.logger)
	case errors.Is(err, port.ErrRunNotFound):
		writeJSON(w, http.StatusNotFound, errorResp{Error: port.ErrRunNotFound.Error()}, h.logger)
	case errors.Is(err, port.ErrRunCancelled):
		// client went away; nothing useful to send
		h.logger.Warn(op+" cancelled", slog.String("path", r.URL.Path))
		w.WriteHeader(http.StatusServiceUnavailable)
	default:
		h.logger.Error(op+" error", slog.Any("error", err), slog.String("path", r.URL.Path))
		writeJSON(w, http.StatusInternalServerError, errorResp{Error: "internal error"}, h.logger)
	}
}

// decode reads a JSON body into v and writes 400 on failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "invalid JSON"}, h.logger)
		return false
	}
	return true
}
