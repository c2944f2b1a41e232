/*
handlers.go - HTTP API handlers for the cooperative calculation engine

PURPOSE:
  Exposes the calculation engine via REST. Handles HTTP request/response,
  JSON serialization, history persistence and result caching; all money
  math stays in the engine packages.

ENDPOINTS:
  Formatting:
    GET  /api/format?amount=..&compact=&hide_symbol=   Format an amount
    GET  /api/words?amount=..                          Terbilang expansion
    GET  /api/delta?previous=..&current=..             Period change

  Calculations:
    POST /api/calc/interest   Compound savings interest (InterestPlanJSON)
    POST /api/calc/loan       Fixed-payment amortization
    POST /api/calc/shu        SHU distribution (DistributionSchemeJSON)
    GET  /api/calc/savings?membership_type=..&base=..  Mandatory savings

  History:
    GET  /api/history/loans          Recent loan quotes
    GET  /api/history/shu            Recent distribution runs
    GET  /api/history/shu/{id}       One run with member breakdown

  Scenarios:
    GET  /api/scenarios              List demo scenarios
    POST /api/scenarios/load         Distribute a demo scenario

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed body or query parameters
  - 404: Unknown history row or scenario
  - 422: Valid JSON but invalid configuration (rules not summing to 100)
  - 500: Storage failures

CACHING:
  Loan quotes are memoized by principal/rate/term. The cache is
  best-effort: a backend failure just recomputes.

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo scenario definitions
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/koperasi/finance-engine/cache"
	"github.com/koperasi/finance-engine/factory"
	"github.com/koperasi/finance-engine/interest"
	"github.com/koperasi/finance-engine/loan"
	"github.com/koperasi/finance-engine/member"
	"github.com/koperasi/finance-engine/money"
	"github.com/koperasi/finance-engine/savings"
	"github.com/koperasi/finance-engine/shu"
	"github.com/koperasi/finance-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store
	Cache cache.Cache
}

// NewHandler creates a handler backed by the given store and cache.
func NewHandler(store *sqlite.Store, c cache.Cache) *Handler {
	return &Handler{Store: store, Cache: c}
}

// =============================================================================
// FORMATTING HANDLERS
// =============================================================================

// FormatAmount renders ?amount= with the requested options.
func (h *Handler) FormatAmount(w http.ResponseWriter, r *http.Request) {
	amount, err := strconv.ParseFloat(r.URL.Query().Get("amount"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "amount must be numeric", err)
		return
	}

	opts := money.Options{
		HideSymbol: r.URL.Query().Get("hide_symbol") == "true",
		Compact:    r.URL.Query().Get("compact") == "true",
	}

	writeJSON(w, http.StatusOK, FormatDTO{
		Amount:    amount,
		Formatted: money.FormatWith(amount, opts),
	})
}

// AmountToWords renders ?amount= as Indonesian words.
func (h *Handler) AmountToWords(w http.ResponseWriter, r *http.Request) {
	amount, err := strconv.ParseInt(r.URL.Query().Get("amount"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "amount must be an integer", err)
		return
	}

	writeJSON(w, http.StatusOK, WordsDTO{
		Amount: amount,
		Words:  money.ToWords(amount),
	})
}

// CurrencyDelta computes the change between ?previous= and ?current=.
func (h *Handler) CurrencyDelta(w http.ResponseWriter, r *http.Request) {
	previous, err1 := strconv.ParseInt(r.URL.Query().Get("previous"), 10, 64)
	current, err2 := strconv.ParseInt(r.URL.Query().Get("current"), 10, 64)
	if err1 != nil || err2 != nil {
		writeError(w, http.StatusBadRequest, "previous and current must be integers", nil)
		return
	}

	d := money.Delta(previous, current)
	writeJSON(w, http.StatusOK, DeltaDTO{
		Change:           d.Change,
		ChangePercentage: d.ChangePercentage,
		IsIncrease:       d.IsIncrease,
		FormattedChange:  d.FormattedChange,
	})
}

// =============================================================================
// CALCULATION HANDLERS
// =============================================================================

// CalculateInterest runs a compound interest plan.
func (h *Handler) CalculateInterest(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body", err)
		return
	}

	cfg, err := factory.ParseInterestPlan(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid interest plan", err)
		return
	}

	writeJSON(w, http.StatusOK, toInterestDTO(interest.Calculate(cfg)))
}

// CalculateLoan computes an amortization quote, memoized per input.
func (h *Handler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	var req LoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid loan request", err)
		return
	}
	if req.Principal <= 0 || req.TermMonths <= 0 || req.AnnualRatePercent < 0 {
		writeError(w, http.StatusBadRequest,
			"principal and term_months must be positive, rate non-negative", nil)
		return
	}

	key := fmt.Sprintf("loan:%d:%g:%d", req.Principal, req.AnnualRatePercent, req.TermMonths)
	if cached, ok := h.Cache.Get(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(cached))
		return
	}

	result := loan.Calculate(req.Principal, req.AnnualRatePercent, req.TermMonths)

	if _, err := h.Store.SaveLoanQuote(r.Context(), req.AnnualRatePercent, req.TermMonths, result); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to record quote", err)
		return
	}

	dto := toLoanDTO(result)
	if payload, err := json.Marshal(dto); err == nil {
		h.Cache.Set(r.Context(), key, string(payload))
	}
	writeJSON(w, http.StatusOK, dto)
}

// CalculateSHU runs a distribution scheme and records the run.
func (h *Handler) CalculateSHU(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body", err)
		return
	}

	cfg, err := factory.ParseDistributionScheme(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid distribution scheme", err)
		return
	}

	var sj factory.DistributionSchemeJSON
	json.Unmarshal(body, &sj) // already validated above; only the name is needed

	result, err := shu.Distribute(cfg)
	if err != nil {
		// Rules not summing to 100 is a caller bug, not a malformed body.
		if errors.Is(err, shu.ErrInvalidRules) {
			writeError(w, http.StatusUnprocessableEntity, "invalid distribution rules", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "distribution failed", err)
		return
	}

	runID, err := h.Store.SaveDistributionRun(r.Context(), sj.Name, cfg.TotalSHU, result)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to record run", err)
		return
	}

	dto := toDistributionDTO(result)
	dto.RunID = runID
	writeJSON(w, http.StatusOK, dto)
}

// MandatorySavings computes the tier-based mandatory monthly amount.
func (h *Handler) MandatorySavings(w http.ResponseWriter, r *http.Request) {
	tier := member.Type(r.URL.Query().Get("membership_type"))
	if !tier.Valid() {
		writeError(w, http.StatusBadRequest,
			"membership_type must be regular, premium or investor", nil)
		return
	}

	base := savings.DefaultBase
	if raw := r.URL.Query().Get("base"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "base must be a positive integer", err)
			return
		}
		base = parsed
	}

	result := savings.MandatoryMonthlyWithBase(tier, base)
	writeJSON(w, http.StatusOK, SavingsDTO{
		MembershipType: string(tier),
		BaseAmount:     base,
		Monthly:        result.Monthly,
		Formatted:      result.Formatted,
	})
}

// =============================================================================
// HISTORY HANDLERS
// =============================================================================

// ListLoanQuotes returns recent quotes.
func (h *Handler) ListLoanQuotes(w http.ResponseWriter, r *http.Request) {
	limit := queryLimit(r, 20)
	quotes, err := h.Store.ListLoanQuotes(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list quotes", err)
		return
	}

	dtos := make([]LoanQuoteDTO, len(quotes))
	for i, q := range quotes {
		dtos[i] = LoanQuoteDTO{
			ID:                q.ID,
			Principal:         q.Principal,
			AnnualRatePercent: q.AnnualRatePercent,
			TermMonths:        q.TermMonths,
			MonthlyPayment:    q.MonthlyPayment,
			TotalPayment:      q.TotalPayment,
			TotalInterest:     q.TotalInterest,
			CreatedAt:         q.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"quotes": dtos})
}

// ListDistributionRuns returns recent run headers.
func (h *Handler) ListDistributionRuns(w http.ResponseWriter, r *http.Request) {
	limit := queryLimit(r, 20)
	runs, err := h.Store.ListDistributionRuns(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list runs", err)
		return
	}

	dtos := make([]DistributionRunDTO, len(runs))
	for i, run := range runs {
		dtos[i] = toRunDTO(run)
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": dtos})
}

// GetDistributionRun returns one run with its member breakdown.
func (h *Handler) GetDistributionRun(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "run id must be an integer", err)
		return
	}

	run, allocations, err := h.Store.GetDistributionRun(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "run not found", err)
		return
	}

	breakdown := make([]AllocationDTO, len(allocations))
	for i, a := range allocations {
		breakdown[i] = toAllocationDTO(a)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"run":       toRunDTO(run),
		"breakdown": breakdown,
	})
}

// =============================================================================
// DTO CONVERSIONS
// =============================================================================

func toInterestDTO(r interest.Result) InterestDTO {
	breakdown := make([]MonthBalanceDTO, len(r.MonthlyBreakdown))
	for i, mb := range r.MonthlyBreakdown {
		breakdown[i] = MonthBalanceDTO{Month: mb.Month, Balance: mb.Balance}
	}
	return InterestDTO{
		Principal:          r.Principal,
		InterestEarned:     r.InterestEarned,
		FinalAmount:        r.FinalAmount,
		MonthlyBreakdown:   breakdown,
		FormattedPrincipal: r.FormattedPrincipal,
		FormattedInterest:  r.FormattedInterest,
		FormattedFinal:     r.FormattedFinal,
	}
}

func toLoanDTO(r loan.Result) LoanDTO {
	return LoanDTO{
		Principal:         r.Principal,
		MonthlyPayment:    r.MonthlyPayment,
		TotalPayment:      r.TotalPayment,
		TotalInterest:     r.TotalInterest,
		FormattedMonthly:  r.FormattedMonthly,
		FormattedTotal:    r.FormattedTotal,
		FormattedInterest: r.FormattedInterest,
	}
}

func toDistributionDTO(r shu.Result) DistributionDTO {
	breakdown := make([]AllocationDTO, len(r.Breakdown))
	for i, a := range r.Breakdown {
		breakdown[i] = toAllocationDTO(a)
	}
	return DistributionDTO{
		Breakdown:        breakdown,
		TotalDistributed: r.TotalDistributed,
		FormattedTotal:   r.FormattedTotal,
	}
}

func toAllocationDTO(a shu.Allocation) AllocationDTO {
	return AllocationDTO{
		MemberID:         a.MemberID,
		MemberName:       a.MemberName,
		SavingsShare:     a.SavingsShare,
		TransactionShare: a.TransactionShare,
		EqualShare:       a.EqualShare,
		MembershipBonus:  a.MembershipBonus,
		TotalSHU:         a.TotalSHU,
		FormattedTotal:   a.FormattedTotal,
	}
}

func toRunDTO(run sqlite.DistributionRun) DistributionRunDTO {
	return DistributionRunDTO{
		ID:               run.ID,
		Name:             run.Name,
		TotalSHU:         run.TotalSHU,
		TotalDistributed: run.TotalDistributed,
		MemberCount:      run.MemberCount,
		CreatedAt:        run.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func queryLimit(r *http.Request, def int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return def
	}
	return limit
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
