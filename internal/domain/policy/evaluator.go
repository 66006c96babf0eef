package policy

import (
	"strings"
	"time"

	"corporatepay/internal/domain/entities"
)

// Attributes is the slice of a request the evaluator looks at. Evaluation is
// a pure function of (Attributes, Config, now); it must not consult any other
// state so that two identical calls always agree.
type Attributes struct {
	SubjectID      string
	Amount         int64
	Currency       string
	Quantity       int
	Category       string
	CounterpartyID string
	Purpose        string
	CostCenter     string
	OccurredAt     time.Time
}

// Result carries the triggered flags and any required-field errors. Field
// errors are reported separately because exemptions never suppress them: a
// request with field errors cannot proceed regardless of flags.
type Result struct {
	Flags               []entities.Flag
	RequiredFieldErrors []string
}

// Evaluate computes the policy predicates independently and unions the true
// ones into an ordered, deduplicated flag set. The order is fixed by the
// predicate order below, which keeps output deterministic across calls.
func Evaluate(attrs Attributes, cfg Config, now time.Time) Result {
	var res Result

	if cfg.RequirePurpose && strings.TrimSpace(attrs.Purpose) == "" {
		res.RequiredFieldErrors = append(res.RequiredFieldErrors, "purpose required")
	}
	if cfg.RequireCostCenter && strings.TrimSpace(attrs.CostCenter) == "" {
		res.RequiredFieldErrors = append(res.RequiredFieldErrors, "cost-center required")
	}

	occurred := attrs.OccurredAt
	if occurred.IsZero() {
		occurred = now
	}

	if afterHours(occurred, cfg) {
		res.Flags = append(res.Flags, entities.FlagAfterHours)
	}
	if withinWindow(occurred.Hour(), cfg.PeakStartHour, cfg.PeakEndHour) {
		res.Flags = append(res.Flags, entities.FlagPeakTariff)
	}
	if cfg.MaxAmount > 0 && attrs.Currency == cfg.Currency && attrs.Amount > cfg.MaxAmount {
		res.Flags = append(res.Flags, entities.FlagAboveLimit)
	}
	if cfg.MaxQuantity > 0 && attrs.Quantity > cfg.MaxQuantity {
		res.Flags = append(res.Flags, entities.FlagAboveQuantityLimit)
	}
	if containsFold(cfg.RestrictedCategories, attrs.Category) {
		res.Flags = append(res.Flags, entities.FlagRestrictedCategory)
	}
	if containsFold(cfg.PrivilegedSubjects, attrs.SubjectID) {
		res.Flags = append(res.Flags, entities.FlagPrivilegedSubject)
	}

	return res
}

// Suppress removes every flag for which exempt returns true, preserving the
// original order. The exempt callback is where the exception registry plugs
// in; the evaluator itself stays pure.
func Suppress(flags []entities.Flag, exempt func(entities.Flag) bool) []entities.Flag {
	if len(flags) == 0 {
		return nil
	}
	kept := make([]entities.Flag, 0, len(flags))
	for _, f := range flags {
		if !exempt(f) {
			kept = append(kept, f)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

func afterHours(t time.Time, cfg Config) bool {
	h := t.Hour()
	return h < cfg.WorkdayStartHour || h >= cfg.WorkdayEndHour
}

// withinWindow treats [start, end) as a same-day window; a zero-width window
// matches nothing.
func withinWindow(hour, start, end int) bool {
	if start == end {
		return false
	}
	if start < end {
		return hour >= start && hour < end
	}
	// window wraps midnight
	return hour >= start || hour < end
}

func containsFold(haystack []string, needle string) bool {
	if needle == "" {
		return false
	}
	for _, h := range haystack {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}
