/*
Package money formats, parses and verbalizes Indonesian Rupiah amounts.

PURPOSE:
  Every other package in this engine produces integer Rupiah figures and
  delegates display to this codec, so the textual conventions live in
  exactly one place:
  - "." as thousands separator ("Rp1.000.000")
  - "," as decimal separator in compact notation ("Rp1,5M")
  - "Rp" currency prefix
  - K / M / B compact suffixes for 10^3 / 10^6 / 10^9

KEY CONCEPTS IN THIS FILE (codec.go):
  - Format/FormatWith: render an amount for display
  - Parse: best-effort inverse of Format, safe on garbage input
  - Options: explicit formatting switches (zero value = defaults)

DESIGN PRINCIPLES:
  1. Display functions never fail. NaN, infinities and unparseable text
     degrade to the zero amount; these sit on render paths where an error
     return would just be ignored.
  2. Rounding is round-half-away-from-zero to whole Rupiah, applied once
     at the display boundary via decimal.Decimal. IDR has no subunits.
  3. No locale machinery. Output is bit-identical on every platform.

USAGE:
  money.Format(1000000)                          // "Rp1.000.000"
  money.FormatWith(1500000, money.Options{Compact: true}) // "Rp1,5M"
  money.Parse("Rp 1.000.000")                    // 1000000

SEE ALSO:
  - words.go: terbilang word expansion
  - delta.go: period-over-period change
*/
package money

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options controls Format output. The zero value selects the defaults:
// "Rp" prefix, full thousands-grouped notation.
type Options struct {
	// HideSymbol omits the "Rp" prefix.
	HideSymbol bool

	// Compact renders with K/M/B suffixes and a single comma decimal,
	// e.g. 1500000 -> "1,5M". Suffix scale: K=10^3, M=10^6, B=10^9.
	Compact bool

	// WithDecimals requests explicit rounding of fractional input to
	// whole Rupiah. IDR has no subunits, so this matches the default
	// rounding; the switch exists for callers that pass it through
	// from display settings.
	WithDecimals bool
}

// =============================================================================
// FORMATTING
// =============================================================================

// Format renders amount with default options.
func Format(amount float64) string {
	return FormatWith(amount, Options{})
}

// FormatWith renders amount according to opts. Invalid input (NaN or
// infinite) renders as the zero amount.
func FormatWith(amount float64, opts Options) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	prefix := "Rp"
	if opts.HideSymbol {
		prefix = ""
	}

	neg := amount < 0
	abs := math.Abs(amount)

	var body string
	if opts.Compact {
		body = compact(abs)
	} else {
		// Round half away from zero to whole Rupiah, then group.
		whole := decimal.NewFromFloat(abs).Round(0)
		body = group(whole.String())
	}

	if neg && body != "0" {
		return "-" + prefix + body
	}
	return prefix + body
}

// group inserts "." every three digits from the right.
// digits must be a plain non-negative integer string.
func group(digits string) string {
	var parts []string
	for i := len(digits); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		parts = append([]string{digits[start:i]}, parts...)
	}
	return strings.Join(parts, ".")
}

// compact renders abs using the K/M/B short scale with one decimal place,
// comma as decimal separator, trailing ",0" stripped.
func compact(abs float64) string {
	type scale struct {
		threshold float64
		suffix    string
	}
	scales := []scale{
		{1_000_000_000, "B"},
		{1_000_000, "M"},
		{1_000, "K"},
	}

	for _, s := range scales {
		if abs >= s.threshold {
			v := decimal.NewFromFloat(abs / s.threshold).Round(1)
			body := strings.Replace(v.StringFixed(1), ".", ",", 1)
			body = strings.TrimSuffix(body, ",0")
			return body + s.suffix
		}
	}
	return decimal.NewFromFloat(abs).Round(0).String()
}

// =============================================================================
// PARSING
// =============================================================================

// Parse extracts an integer Rupiah amount from text. It tolerates "Rp" and
// "IDR" prefixes in any case and spacing, and treats both "." and "," as
// thousands separators (Indonesian convention). Unparseable input yields 0.
func Parse(text string) int64 {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0
	}

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = strings.TrimSpace(s[1:])
	}

	lower := strings.ToLower(s)
	for _, prefix := range []string{"rp.", "rp", "idr"} {
		if strings.HasPrefix(lower, prefix) {
			s = strings.TrimSpace(s[len(prefix):])
			break
		}
	}

	// Both separators mark thousands groups, never decimals.
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")

	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	if neg {
		return -n
	}
	return n
}
