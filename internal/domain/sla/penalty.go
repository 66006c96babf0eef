package sla

import (
	"math"

	"corporatepay/internal/domain/entities"
)

// CalculatePenalty prices a breach: min(round(total * pct / 100), cap), in
// minor units of the terms' settlement currency. A currency mismatch yields
// zero by contract, not as a silent default; the caller is expected to log
// the mismatch. Pure, no side effects.
func CalculatePenalty(total int64, currency string, terms entities.PenaltyTerms) int64 {
	if total <= 0 || terms.Percent <= 0 || terms.Cap <= 0 {
		return 0
	}
	if currency != terms.Currency {
		return 0
	}

	penalty := int64(math.Round(float64(total) * terms.Percent / 100))
	if penalty > terms.Cap {
		return terms.Cap
	}
	return penalty
}
