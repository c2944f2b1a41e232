package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/koperasi/finance-engine/api"
	"github.com/koperasi/finance-engine/cache"
	"github.com/koperasi/finance-engine/store/sqlite"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func newTestServer(t *testing.T) *httptest.Server {
	store, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	handler := api.NewHandler(store, cache.NewMemory())
	srv := httptest.NewServer(api.NewRouter(handler))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, srv *httptest.Server, path string, out any) int {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return resp.StatusCode
}

func postJSON(t *testing.T, srv *httptest.Server, path, body string, out any) int {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return resp.StatusCode
}

// =============================================================================
// FORMATTING ENDPOINTS
// =============================================================================

func TestFormatEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var dto api.FormatDTO
	status := getJSON(t, srv, "/api/format?amount=1000000", &dto)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if dto.Formatted != "Rp1.000.000" {
		t.Errorf("Formatted = %q", dto.Formatted)
	}

	status = getJSON(t, srv, "/api/format?amount=1500000&compact=true", &dto)
	if status != http.StatusOK || dto.Formatted != "Rp1,5M" {
		t.Errorf("compact: status %d, Formatted %q", status, dto.Formatted)
	}

	if status := getJSON(t, srv, "/api/format?amount=abc", nil); status != http.StatusBadRequest {
		t.Errorf("non-numeric amount: status = %d, want 400", status)
	}
}

func TestWordsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var dto api.WordsDTO
	getJSON(t, srv, "/api/words?amount=1000000", &dto)
	if dto.Words != "satu juta rupiah" {
		t.Errorf("Words = %q", dto.Words)
	}
}

func TestDeltaEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var dto api.DeltaDTO
	getJSON(t, srv, "/api/delta?previous=1000000&current=1200000", &dto)
	if dto.Change != 200_000 || dto.ChangePercentage != 20 || !dto.IsIncrease {
		t.Errorf("unexpected delta: %+v", dto)
	}
	if dto.FormattedChange != "+Rp200.000" {
		t.Errorf("FormattedChange = %q", dto.FormattedChange)
	}
}

// =============================================================================
// CALCULATION ENDPOINTS
// =============================================================================

func TestLoanEndpoint(t *testing.T) {
	srv := newTestServer(t)

	body := `{"principal": 12000000, "annual_rate_percent": 0, "term_months": 12}`

	var dto api.LoanDTO
	status := postJSON(t, srv, "/api/calc/loan", body, &dto)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if dto.MonthlyPayment != 1_000_000 || dto.TotalInterest != 0 {
		t.Errorf("unexpected quote: %+v", dto)
	}

	// The second identical request is served from cache with the same body.
	var cached api.LoanDTO
	postJSON(t, srv, "/api/calc/loan", body, &cached)
	if cached != dto {
		t.Errorf("cached quote differs: %+v vs %+v", cached, dto)
	}

	// The quote is recorded once in history.
	var history struct {
		Quotes []api.LoanQuoteDTO `json:"quotes"`
	}
	getJSON(t, srv, "/api/history/loans", &history)
	if len(history.Quotes) != 1 {
		t.Errorf("history quotes = %d, want 1 (cache hit must not re-record)", len(history.Quotes))
	}
}

func TestInterestEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var dto api.InterestDTO
	status := postJSON(t, srv, "/api/calc/interest",
		`{"principal": 1000000, "annual_rate_percent": 6, "frequency": "monthly", "term_months": 12}`,
		&dto)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if dto.InterestEarned <= 60_000 {
		t.Errorf("InterestEarned = %d, want > 60000", dto.InterestEarned)
	}
	if len(dto.MonthlyBreakdown) != 12 {
		t.Errorf("breakdown = %d entries, want 12", len(dto.MonthlyBreakdown))
	}
}

func TestSHUEndpoint(t *testing.T) {
	srv := newTestServer(t)

	scheme := `{
		"id": "shu-test", "name": "test run", "total_shu": 10000000,
		"rules": {"savings": 40, "transaction": 30, "equal": 20, "membership_bonus": 10},
		"members": [
			{"id": "a", "name": "A", "savings_balance": 5000000,
			 "transaction_volume": 2000000, "duration_months": 24, "membership_type": "regular"},
			{"id": "b", "name": "B", "savings_balance": 1000000,
			 "transaction_volume": 500000, "duration_months": 24, "membership_type": "regular"}
		]
	}`

	var dto api.DistributionDTO
	status := postJSON(t, srv, "/api/calc/shu", scheme, &dto)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if len(dto.Breakdown) != 2 {
		t.Fatalf("breakdown = %d members", len(dto.Breakdown))
	}
	if dto.Breakdown[0].TotalSHU <= dto.Breakdown[1].TotalSHU {
		t.Error("member A should receive strictly more than member B")
	}
	if dto.RunID == 0 {
		t.Error("expected a recorded run ID")
	}

	// The run is retrievable from history with its breakdown.
	var run struct {
		Run       api.DistributionRunDTO `json:"run"`
		Breakdown []api.AllocationDTO    `json:"breakdown"`
	}
	status = getJSON(t, srv, "/api/history/shu/1", &run)
	if status != http.StatusOK || len(run.Breakdown) != 2 {
		t.Errorf("history run: status %d, breakdown %d", status, len(run.Breakdown))
	}
}

func TestSHUEndpoint_InvalidRules(t *testing.T) {
	srv := newTestServer(t)

	scheme := `{
		"id": "bad", "name": "bad rules", "total_shu": 10000000,
		"rules": {"savings": 40, "transaction": 30, "equal": 10, "membership_bonus": 10},
		"members": []
	}`

	var errResp api.ErrorResponse
	status := postJSON(t, srv, "/api/calc/shu", scheme, &errResp)
	if status != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", status)
	}
	if !strings.Contains(errResp.Details, "90") {
		t.Errorf("error should name the actual sum, got %q", errResp.Details)
	}
}

func TestSavingsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var dto api.SavingsDTO
	getJSON(t, srv, "/api/calc/savings?membership_type=premium", &dto)
	if dto.Monthly != 37_500 {
		t.Errorf("premium monthly = %d, want 37500", dto.Monthly)
	}

	getJSON(t, srv, "/api/calc/savings?membership_type=premium&base=30000", &dto)
	if dto.Monthly != 45_000 {
		t.Errorf("custom base monthly = %d, want 45000", dto.Monthly)
	}

	if status := getJSON(t, srv, "/api/calc/savings?membership_type=gold", nil); status != http.StatusBadRequest {
		t.Errorf("unknown tier: status = %d, want 400", status)
	}
}

// =============================================================================
// SCENARIOS
// =============================================================================

func TestScenarioEndpoints(t *testing.T) {
	srv := newTestServer(t)

	var list struct {
		Scenarios []api.ScenarioDTO `json:"scenarios"`
	}
	getJSON(t, srv, "/api/scenarios", &list)
	if len(list.Scenarios) == 0 {
		t.Fatal("expected built-in scenarios")
	}

	var dto api.DistributionDTO
	status := postJSON(t, srv, "/api/scenarios/load", `{"name": "small-coop"}`, &dto)
	if status != http.StatusOK || len(dto.Breakdown) != 2 {
		t.Errorf("small-coop: status %d, breakdown %d", status, len(dto.Breakdown))
	}

	if status := postJSON(t, srv, "/api/scenarios/load", `{"name": "nope"}`, nil); status != http.StatusNotFound {
		t.Errorf("unknown scenario: status = %d, want 404", status)
	}

	// "no-savings" exercises the zero-denominator rule end to end.
	status = postJSON(t, srv, "/api/scenarios/load", `{"name": "no-savings"}`, &dto)
	if status != http.StatusOK {
		t.Fatalf("no-savings: status = %d", status)
	}
	for _, a := range dto.Breakdown {
		if a.SavingsShare != 0 {
			t.Errorf("member %s savings share = %d, want 0", a.MemberID, a.SavingsShare)
		}
	}
}
