package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-sim/internal/core/domain"
	"campaign-sim/internal/core/port"
	"campaign-sim/internal/core/port/mocks"
	"campaign-sim/internal/core/significance"
)

func newTestHandler(t *testing.T) (*mocks.MockCampaignUseCase, http.Handler) {
	t.Helper()
	svc := mocks.NewMockCampaignUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return svc, NewHandler(svc, logger).Router()
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Health(t *testing.T) {
	_, h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandler_Metrics(t *testing.T) {
	_, h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_Simulate(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().Simulate(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req port.SimulationReq, progress port.ProgressFunc) (*domain.CampaignRun, error) {
			require.NotNil(t, progress)
			progress(port.Progress{DemographicID: "d1", Completed: 10, Total: 10})
			assert.Equal(t, "B", req.Variant)
			assert.Equal(t, 20, req.TrialsPerSegment)
			require.Len(t, req.Demographics, 1)
			return &domain.CampaignRun{ID: "run-1", Variant: req.Variant}, nil
		})

	body := `{"variant":"B","tagline":"hi","trials_per_segment":20,
		"product":{"name":"p","sales_price":10,"unit_cost":2},
		"demographics":[{"id":"d1","age_band":"25-34","gender":"female"}]}`
	rec := do(t, h, http.MethodPost, "/api/v1/simulations", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	var run domain.CampaignRun
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))
	assert.Equal(t, "run-1", run.ID)
}

func TestHandler_SimulateErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid input", eris.Wrap(port.ErrInvalidInput, "no demographics"), http.StatusBadRequest},
		{"cancelled", eris.Wrap(port.ErrRunCancelled, "ctx done"), http.StatusServiceUnavailable},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, h := newTestHandler(t)
			svc.EXPECT().Simulate(mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := do(t, h, http.MethodPost, "/api/v1/simulations", `{}`)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestHandler_SimulateBadJSON(t *testing.T) {
	_, h := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/v1/simulations", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_ListRuns(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().ListRuns(mock.Anything, port.ListRunsReq{Variant: "A", Limit: 5}).
		Return([]domain.CampaignRun{{ID: "r1"}, {ID: "r2"}}, nil)

	rec := do(t, h, http.MethodGet, "/api/v1/simulations?variant=A&limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var runs []domain.CampaignRun
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &runs))
	assert.Len(t, runs, 2)

	rec = do(t, h, http.MethodGet, "/api/v1/simulations?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_GetRun(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().GetRun(mock.Anything, "r1").Return(&domain.CampaignRun{ID: "r1"}, nil)
	svc.EXPECT().GetRun(mock.Anything, "missing").Return(nil, eris.Wrap(port.ErrRunNotFound, "run missing"))

	rec := do(t, h, http.MethodGet, "/api/v1/simulations/r1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/simulations/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_CompareRuns(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().CompareRuns(mock.Anything, "r1", "r2").Return(&port.RunComparison{
		RunA:   "r1",
		RunB:   "r2",
		Result: significance.Result{Tier: significance.TierSignificant, Winner: significance.SideB},
	}, nil)

	rec := do(t, h, http.MethodPost, "/api/v1/simulations/compare", `{"run_a":"r1","run_b":"r2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var cmp port.RunComparison
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cmp))
	assert.Equal(t, significance.TierSignificant, cmp.Result.Tier)
	assert.Equal(t, significance.SideB, cmp.Result.Winner)
}

func TestHandler_Significance(t *testing.T) {
	svc, h := newTestHandler(t)
	a := significance.Sample{Conversions: 100, Trials: 1000}
	b := significance.Sample{Conversions: 130, Trials: 1000}
	svc.EXPECT().Compare(a, b).Return(significance.Compare(a, b))

	rec := do(t, h, http.MethodPost, "/api/v1/significance",
		`{"a":{"conversions":100,"trials":1000},"b":{"conversions":130,"trials":1000}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var res significance.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, significance.TierSignificant, res.Tier)

	rec = do(t, h, http.MethodPost, "/api/v1/significance",
		`{"a":{"conversions":10,"trials":5},"b":{"conversions":1,"trials":5}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_MarketSize(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().EstimateSize(mock.MatchedBy(func(d domain.Demographic) bool {
		return d.ID == "d1" && d.EstimatedSize == 0
	})).Return(7_492_800)

	rec := do(t, h, http.MethodPost, "/api/v1/market/size",
		`{"id":"d1","age_band":"25-34","gender":"female","estimated_size":42}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"demographic_id":"d1","estimated_size":7492800}`, rec.Body.String())
}

func TestHandler_Channels(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().Channels().Return([]domain.Channel{{ID: "email"}, {ID: "tv"}})

	rec := do(t, h, http.MethodGet, "/api/v1/channels", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var chans []domain.Channel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &chans))
	assert.Len(t, chans, 2)
}

func TestHandler_Plan(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().Plan(mock.Anything, mock.Anything).Return(port.PlanResp{DemographicID: "d1", AggregateReach: 0.2})

	rec := do(t, h, http.MethodPost, "/api/v1/channels/plan",
		`{"strategy":{"allocations":[{"channel_id":"email","spend":100,"demographic_ids":["d1"]}]},"demographic":{"id":"d1"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var plan port.PlanResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	assert.Equal(t, 0.2, plan.AggregateReach)

	rec = do(t, h, http.MethodPost, "/api/v1/channels/plan",
		`{"strategy":{"allocations":[{"channel_id":"email","spend":-1}]},"demographic":{"id":"d1"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
