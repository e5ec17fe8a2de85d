package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wealthpath/networth-projector/internal/calculation"
	"github.com/wealthpath/networth-projector/internal/config"
	"github.com/wealthpath/networth-projector/internal/domain"
)

func newTestServer(t *testing.T) (*httptest.Server, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger)
	srv := httptest.NewServer(NewRouter(NewHandler(engine, logger), logger))
	t.Cleanup(srv.Close)
	return srv, hook
}

func post(t *testing.T, srv *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, r io.Reader, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(r).Decode(v))
}

func TestHealth(t *testing.T) {
	srv, hook := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_, err = uuid.Parse(resp.Header.Get(RequestIDHeader))
	assert.NoError(t, err, "a request ID is generated")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "request handled", entry.Message)
	assert.Equal(t, "/healthz", entry.Data["path"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])
}

func TestRequestIDPropagates(t *testing.T) {
	srv, hook := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "abc-123")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "abc-123", resp.Header.Get(RequestIDHeader))
	assert.Equal(t, "abc-123", hook.LastEntry().Data["request_id"])
}

func TestProject_DashboardDefaults(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := post(t, srv, "/v1/projections", `{
		"starting_balance": 500,
		"monthly_contribution": 5,
		"annual_return_rate": 5,
		"target_asset": 2000
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body ProjectionResponse
	decodeBody(t, resp.Body, &body)

	require.Len(t, body.Records, 11)
	assert.True(t, body.Records[0].LiquidBalance.Equal(decimal.NewFromInt(585)))
	assert.True(t, body.Records[1].LiquidBalance.Equal(decimal.RequireFromString("674.25")))
	require.NotNil(t, body.Goal)
	assert.Equal(t, 85, body.Goal.Probability)
	assert.True(t, body.Goal.MonthlyShortfallContribution.Equal(decimal.NewFromInt(3)))
	require.NotNil(t, body.RequiredMonthlyContribution)
	assert.True(t, body.RequiredMonthlyContribution.GreaterThan(decimal.NewFromInt(5)))
}

func TestProject_WithLoanEvent(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := post(t, srv, "/v1/projections", `{
		"starting_balance": 5000,
		"horizon_years": 2,
		"life_events": [{
			"name": "Home", "year_offset": 0, "total_amount": 3000, "payment_mode": "loan",
			"loan": {"down_payment": 300, "term_years": 30, "annual_interest_rate": 1.5}
		}]
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body ProjectionResponse
	decodeBody(t, resp.Body, &body)

	require.Len(t, body.Records, 3)
	assert.Nil(t, body.Goal)
	assert.Nil(t, body.RequiredMonthlyContribution)
	for _, yr := range body.Records {
		assert.True(t, yr.LoanPayments.Sub(decimal.RequireFromString("111.8189")).Abs().LessThan(decimal.RequireFromString("0.0001")))
	}
}

func TestProject_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative horizon", `{"horizon_years": -1}`},
		{"malformed json", `{"starting_balance": `},
		{"unknown field", `{"starting_balanse": 5}`},
		{"zero loan term", `{"life_events": [{"name": "Car", "year_offset": 1, "total_amount": 100, "payment_mode": "loan", "loan": {"down_payment": 0, "term_years": 0, "annual_interest_rate": 1}}]}`},
		{"lump sum with loan block", `{"life_events": [{"name": "Car", "year_offset": 1, "total_amount": 100, "payment_mode": "lump_sum", "loan": {"down_payment": 0, "term_years": 5, "annual_interest_rate": 1}}]}`},
		{"event outside horizon", `{"horizon_years": 3, "life_events": [{"name": "Late", "year_offset": 4, "total_amount": 100}]}`},
		{"negative contribution", `{"monthly_contribution": -1}`},
		{"horizon past limit", `{"starting_balance": 500, "annual_return_rate": 5, "horizon_years": 2000}`},
		{"loan term past limit", `{"life_events": [{"name": "Home", "year_offset": 0, "total_amount": 3000, "payment_mode": "loan", "loan": {"down_payment": 0, "term_years": 3000, "annual_interest_rate": 1.7}}]}`},
		{"misspelled event field", `{"life_events": [{"name": "Home", "year_offset": 0, "total_amount": 3000, "paymentMode": "loan", "loan": {"down_payment": 0, "term_years": 30, "annual_interest_rate": 1.5}}]}`},
	}

	srv, _ := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv, "/v1/projections", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body errorResponse
			decodeBody(t, resp.Body, &body)
			assert.Contains(t, body.Error, "invalid input")
			assert.NotEmpty(t, body.RequestID)
		})
	}
}

func TestScenarios(t *testing.T) {
	srv, _ := newTestServer(t)

	cfg := config.NewInputParser().CreateExampleConfiguration()
	asOf := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	cfg.Household.AsOf = &asOf
	payload, err := json.Marshal(cfg)
	require.NoError(t, err)

	resp := post(t, srv, "/v1/scenarios", string(payload))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var comparison domain.ScenarioComparison
	decodeBody(t, resp.Body, &comparison)

	require.Len(t, comparison.Scenarios, 3)
	assert.Equal(t, "conservative", comparison.Scenarios[0].Name)
	assert.NotEmpty(t, comparison.Recommendation.ScenarioName)
	assert.Equal(t, 2025, comparison.Scenarios[0].Projection[0].CalendarYear)
	assert.Equal(t, 34, comparison.Scenarios[0].Projection[0].Age)

	// Same result as running the engine directly
	direct, err := calculation.NewCalculationEngine().RunScenarios(context.Background(), cfg)
	require.NoError(t, err)
	for i := range direct.Scenarios {
		assert.True(t, direct.Scenarios[i].FinalTotalAssets.Equal(comparison.Scenarios[i].FinalTotalAssets))
	}
}

func TestScenarios_InvalidConfiguration(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := post(t, srv, "/v1/scenarios", `{"household": {"monthly_contribution": -5}}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body errorResponse
	decodeBody(t, resp.Body, &body)
	assert.Contains(t, body.Error, "configuration validation failed")
}

func TestAmortization(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := post(t, srv, "/v1/loans/amortization", `{
		"total_amount": 3000, "down_payment": 300, "term_years": 30, "annual_interest_rate": 1.5
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body AmortizationResponse
	decodeBody(t, resp.Body, &body)

	assert.True(t, body.Summary.Principal.Equal(decimal.NewFromInt(2700)))
	assert.True(t, body.Summary.MonthlyPayment.Sub(decimal.RequireFromString("9.3182")).Abs().LessThan(decimal.RequireFromString("0.0001")))
	require.Len(t, body.Schedule, 30)
	assert.True(t, body.Schedule[29].RemainingBalance.IsZero())
}

func TestAmortization_Invalid(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := post(t, srv, "/v1/loans/amortization", `{"total_amount": 100, "down_payment": -1, "term_years": 5, "annual_interest_rate": 1}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = post(t, srv, "/v1/loans/amortization", `{"total_amount": 100, "term_years": 5, "annual_interest_rate": -1}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = post(t, srv, "/v1/loans/amortization", `{"total_amount": 100, "term_years": 3000, "annual_interest_rate": 1.7}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body errorResponse
	decodeBody(t, resp.Body, &body)
	assert.Contains(t, body.Error, "loan term must be between 1 and 50")
}

func TestMethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/projections")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestLoggingMiddleware_ServerErrors(t *testing.T) {
	logger, hook := test.NewNullLogger()
	failing := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	rec := httptest.NewRecorder()
	RequestIDMiddleware(LoggingMiddleware(logger)(failing)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}
