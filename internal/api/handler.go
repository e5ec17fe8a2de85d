package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/wealthpath/networth-projector/internal/calculation"
	"github.com/wealthpath/networth-projector/internal/config"
	"github.com/wealthpath/networth-projector/internal/domain"
	"github.com/wealthpath/networth-projector/pkg/money"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 20

// Handler serves the projection API
type Handler struct {
	engine *calculation.CalculationEngine
	parser *config.InputParser
	logger logrus.FieldLogger
}

// NewHandler creates a handler around engine
func NewHandler(engine *calculation.CalculationEngine, logger logrus.FieldLogger) *Handler {
	return &Handler{engine: engine, parser: config.NewInputParser(), logger: logger}
}

// ProjectionRequest is the body of POST /v1/projections. Amounts follow the
// household configuration: monthly contribution, percentage rates.
type ProjectionRequest struct {
	StartingBalance     decimal.Decimal    `json:"starting_balance"`
	MonthlyContribution decimal.Decimal    `json:"monthly_contribution"`
	AnnualReturnRate    decimal.Decimal    `json:"annual_return_rate"`
	HorizonYears        *int               `json:"horizon_years,omitempty"`
	TargetAsset         decimal.Decimal    `json:"target_asset"`
	StartAge            int                `json:"start_age,omitempty"`
	StartYear           int                `json:"start_year,omitempty"`
	LifeEvents          []domain.LifeEvent `json:"life_events,omitempty"`
}

// ProjectionResponse is the body returned by POST /v1/projections
type ProjectionResponse struct {
	Records                     []domain.YearRecord    `json:"records"`
	Goal                        *domain.GoalAssessment `json:"goal,omitempty"`
	RequiredMonthlyContribution *decimal.Decimal       `json:"required_monthly_contribution,omitempty"`
}

// AmortizationRequest is the body of POST /v1/loans/amortization. The
// principal is total_amount minus down_payment.
type AmortizationRequest struct {
	TotalAmount        decimal.Decimal `json:"total_amount"`
	DownPayment        decimal.Decimal `json:"down_payment"`
	TermYears          int             `json:"term_years"`
	AnnualInterestRate decimal.Decimal `json:"annual_interest_rate"`
}

// AmortizationResponse is the body returned by POST /v1/loans/amortization
type AmortizationResponse struct {
	Summary  domain.LoanSummary        `json:"summary"`
	Schedule []domain.AmortizationYear `json:"schedule"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Project runs a single projection
func (h *Handler) Project(w http.ResponseWriter, r *http.Request) {
	var req ProjectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	horizon := domain.DefaultHorizonYears
	if req.HorizonYears != nil {
		horizon = *req.HorizonYears
	}
	if req.MonthlyContribution.IsNegative() {
		h.writeError(w, r, domain.InvalidInputf("monthly contribution cannot be negative"))
		return
	}
	if req.TargetAsset.IsNegative() {
		h.writeError(w, r, domain.InvalidInputf("target asset cannot be negative"))
		return
	}

	input := domain.ProjectionInput{
		StartingBalance:    req.StartingBalance,
		AnnualContribution: money.Annual(req.MonthlyContribution),
		AnnualReturnRate:   req.AnnualReturnRate,
		HorizonYears:       horizon,
		StartAge:           req.StartAge,
		StartYear:          req.StartYear,
		Events:             req.LifeEvents,
	}
	records, goal, err := h.engine.ProjectSingle(input, req.TargetAsset)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := ProjectionResponse{Records: records, Goal: goal}
	if goal != nil {
		required, err := calculation.RequiredMonthlyContribution(input, req.TargetAsset)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		resp.RequiredMonthlyContribution = &required
	}
	h.writeJSON(w, r, http.StatusOK, resp)
}

// Scenarios runs every scenario of a full configuration
func (h *Handler) Scenarios(w http.ResponseWriter, r *http.Request) {
	var cfg domain.Configuration
	if err := decodeJSON(w, r, &cfg); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.parser.ValidateConfiguration(&cfg); err != nil {
		h.writeError(w, r, fmt.Errorf("configuration validation failed: %w", err))
		return
	}

	comparison, err := h.engine.RunScenarios(r.Context(), &cfg)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, comparison)
}

// Amortization returns a loan summary and its yearly schedule
func (h *Handler) Amortization(w http.ResponseWriter, r *http.Request) {
	var req AmortizationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	loan := domain.Loan{DownPayment: req.DownPayment, TermYears: req.TermYears, AnnualInterestRate: req.AnnualInterestRate}
	event := domain.LifeEvent{Name: "loan", TotalAmount: req.TotalAmount, Payment: loan}
	if err := event.Validate(0); err != nil {
		h.writeError(w, r, err)
		return
	}

	principal := loan.Principal(req.TotalAmount)
	h.writeJSON(w, r, http.StatusOK, AmortizationResponse{
		Summary:  calculation.SummarizeLoan(loan, req.TotalAmount),
		Schedule: calculation.AmortizationSchedule(principal, loan.AnnualInterestRate, loan.TermYears),
	})
}

// decodeJSON reads a single JSON document; malformed bodies are invalid input
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return domain.InvalidInputf("malformed request body: %v", err)
	}
	return nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		id, _ := GetRequestID(r.Context())
		h.logger.WithField("request_id", id).Errorf("encode response: %v", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	id, _ := GetRequestID(r.Context())
	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrInvalidInput) {
		status = http.StatusBadRequest
	} else {
		h.logger.WithField("request_id", id).Errorf("request failed: %v", err)
	}
	h.writeJSON(w, r, status, errorResponse{Error: err.Error(), RequestID: id})
}
