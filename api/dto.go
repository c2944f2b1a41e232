/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's value types from the external API contract, allowing field
  renaming and version evolution without touching the calculation packages.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/scheme.go: DistributionSchemeJSON accepted by the SHU endpoint
*/
package api

// =============================================================================
// ERRORS
// =============================================================================

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// FORMATTING
// =============================================================================

// FormatDTO is the response of the formatting endpoints.
type FormatDTO struct {
	Amount    float64 `json:"amount"`
	Formatted string  `json:"formatted"`
}

// WordsDTO is the terbilang response.
type WordsDTO struct {
	Amount int64  `json:"amount"`
	Words  string `json:"words"`
}

// DeltaDTO is the period-over-period change response.
type DeltaDTO struct {
	Change           int64   `json:"change"`
	ChangePercentage float64 `json:"change_percentage"`
	IsIncrease       bool    `json:"is_increase"`
	FormattedChange  string  `json:"formatted_change"`
}

// =============================================================================
// INTEREST
// =============================================================================

// MonthBalanceDTO is one month-boundary balance.
type MonthBalanceDTO struct {
	Month   int   `json:"month"`
	Balance int64 `json:"balance"`
}

// InterestDTO is the compound interest response.
type InterestDTO struct {
	Principal          int64             `json:"principal"`
	InterestEarned     int64             `json:"interest_earned"`
	FinalAmount        int64             `json:"final_amount"`
	MonthlyBreakdown   []MonthBalanceDTO `json:"monthly_breakdown"`
	FormattedPrincipal string            `json:"formatted_principal"`
	FormattedInterest  string            `json:"formatted_interest"`
	FormattedFinal     string            `json:"formatted_final"`
}

// =============================================================================
// LOAN
// =============================================================================

// LoanRequest is the amortization request body.
type LoanRequest struct {
	Principal         int64   `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TermMonths        int     `json:"term_months"`
}

// LoanDTO is the amortization response.
type LoanDTO struct {
	Principal         int64  `json:"principal"`
	MonthlyPayment    int64  `json:"monthly_payment"`
	TotalPayment      int64  `json:"total_payment"`
	TotalInterest     int64  `json:"total_interest"`
	FormattedMonthly  string `json:"formatted_monthly"`
	FormattedTotal    string `json:"formatted_total"`
	FormattedInterest string `json:"formatted_interest"`
}

// LoanQuoteDTO is a stored quote in history responses.
type LoanQuoteDTO struct {
	ID                int64   `json:"id"`
	Principal         int64   `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TermMonths        int     `json:"term_months"`
	MonthlyPayment    int64   `json:"monthly_payment"`
	TotalPayment      int64   `json:"total_payment"`
	TotalInterest     int64   `json:"total_interest"`
	CreatedAt         string  `json:"created_at"`
}

// =============================================================================
// SHU
// =============================================================================

// AllocationDTO is one member's allocation in an SHU response.
type AllocationDTO struct {
	MemberID         string `json:"member_id"`
	MemberName       string `json:"member_name"`
	SavingsShare     int64  `json:"savings_share"`
	TransactionShare int64  `json:"transaction_share"`
	EqualShare       int64  `json:"equal_share"`
	MembershipBonus  int64  `json:"membership_bonus"`
	TotalSHU         int64  `json:"total_shu"`
	FormattedTotal   string `json:"formatted_total"`
}

// DistributionDTO is the SHU distribution response.
type DistributionDTO struct {
	RunID            int64           `json:"run_id,omitempty"`
	Breakdown        []AllocationDTO `json:"breakdown"`
	TotalDistributed int64           `json:"total_distributed"`
	FormattedTotal   string          `json:"formatted_total"`
}

// DistributionRunDTO is a stored run header in history responses.
type DistributionRunDTO struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	TotalSHU         int64  `json:"total_shu"`
	TotalDistributed int64  `json:"total_distributed"`
	MemberCount      int    `json:"member_count"`
	CreatedAt        string `json:"created_at"`
}

// =============================================================================
// SAVINGS / SCENARIOS
// =============================================================================

// SavingsDTO is the mandatory-savings response.
type SavingsDTO struct {
	MembershipType string `json:"membership_type"`
	BaseAmount     int64  `json:"base_amount"`
	Monthly        int64  `json:"monthly"`
	Formatted      string `json:"formatted"`
}

// ScenarioDTO describes a demo scenario.
type ScenarioDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MemberCount int    `json:"member_count"`
	TotalSHU    int64  `json:"total_shu"`
}

// LoadScenarioRequest selects a demo scenario by name.
type LoadScenarioRequest struct {
	Name string `json:"name"`
}
