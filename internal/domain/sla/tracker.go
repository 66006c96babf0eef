// Package sla computes due-date breach status and the resulting penalty.
// Both functions are stateless and safe to call repeatedly: the breach scan
// and the on-demand display paths share them.
package sla

import (
	"math"
	"time"
)

// Result is the derived breach status for one entity. Exactly one of
// OverdueDays/LateDays can be non-zero: an entity is either still open or
// completed, never both.
type Result struct {
	Breached    bool `json:"breached"`
	OverdueDays int  `json:"overdue_days"`
	LateDays    int  `json:"late_days"`
}

// Evaluate derives breach status from a due timestamp, an optional completion
// timestamp and the current instant. terminalNonFulfilling marks lifecycle
// states (cancelled/refunded/rejected) that void the obligation entirely: a
// cancelled item cannot be overdue.
func Evaluate(dueAt time.Time, completedAt *time.Time, now time.Time, terminalNonFulfilling bool) Result {
	if terminalNonFulfilling || dueAt.IsZero() {
		return Result{}
	}

	if completedAt != nil {
		late := ceilDays(completedAt.Sub(dueAt))
		return Result{Breached: late > 0, LateDays: late}
	}

	overdue := ceilDays(now.Sub(dueAt))
	return Result{Breached: overdue > 0, OverdueDays: overdue}
}

func ceilDays(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Hours() / 24))
}
