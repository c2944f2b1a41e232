package shu

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

// ErrInvalidRules is returned when distribution rule percentages do not sum
// to exactly 100. Silently renormalizing would misallocate real money, so
// this surfaces immediately as a caller bug.
var ErrInvalidRules = errors.New("distribution rules must sum to 100")

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// RulesError reports the actual percentage sum that was supplied.
type RulesError struct {
	Sum decimal.Decimal
}

func (e *RulesError) Error() string {
	return fmt.Sprintf("distribution rules must sum to 100, got %s", e.Sum)
}

func (e *RulesError) Unwrap() error {
	return ErrInvalidRules
}
