package money

import "strings"

// =============================================================================
// TERBILANG - Indonesian word expansion
// =============================================================================

var units = []string{
	"", "satu", "dua", "tiga", "empat", "lima",
	"enam", "tujuh", "delapan", "sembilan", "sepuluh", "sebelas",
}

// ToWords renders amount as Indonesian words followed by " rupiah".
// Zero renders as "nol rupiah"; negative amounts get a "minus " prefix.
//
//	ToWords(0)       // "nol rupiah"
//	ToWords(1000000) // "satu juta rupiah"
//	ToWords(-1000)   // "minus seribu rupiah"
func ToWords(amount int64) string {
	if amount == 0 {
		return "nol rupiah"
	}
	if amount < 0 {
		return "minus " + terbilang(-amount) + " rupiah"
	}
	return terbilang(amount) + " rupiah"
}

// terbilang recursively spells n > 0. The "se-" contractions (sepuluh,
// sebelas, seratus, seribu) follow standard Indonesian numbering; higher
// scales use the plain "satu" form ("satu juta", not "sejuta").
func terbilang(n int64) string {
	switch {
	case n < 12:
		return units[n]
	case n < 20:
		return join(terbilang(n-10), "belas")
	case n < 100:
		return join(terbilang(n/10), "puluh", terbilang(n%10))
	case n < 200:
		return join("seratus", terbilang(n-100))
	case n < 1_000:
		return join(terbilang(n/100), "ratus", terbilang(n%100))
	case n < 2_000:
		return join("seribu", terbilang(n-1_000))
	case n < 1_000_000:
		return join(terbilang(n/1_000), "ribu", terbilang(n%1_000))
	case n < 1_000_000_000:
		return join(terbilang(n/1_000_000), "juta", terbilang(n%1_000_000))
	case n < 1_000_000_000_000:
		return join(terbilang(n/1_000_000_000), "miliar", terbilang(n%1_000_000_000))
	default:
		return join(terbilang(n/1_000_000_000_000), "triliun", terbilang(n%1_000_000_000_000))
	}
}

// join concatenates non-empty words with single spaces.
func join(words ...string) string {
	var kept []string
	for _, w := range words {
		if w != "" {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}
