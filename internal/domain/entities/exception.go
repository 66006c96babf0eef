package entities

import "time"

// ExceptionStatus mirrors the approval outcome of the exemption request that
// carries it.

type ExceptionStatus string

const (
	ExceptionStatusPending  ExceptionStatus = "pending"
	ExceptionStatusApproved ExceptionStatus = "approved"
	ExceptionStatusRejected ExceptionStatus = "rejected"
)

// Exception is a time-bound exemption suppressing one flag for one subject
// (e.g. "allow DC-fast charging for vehicle X until date Y").
//
// Exceptions are themselves approvable: each one is backed by an
// ApprovalRequest with scope "exception" and only becomes effective once that
// request's chain is fully approved. Only an Approved exception whose
// [ValidFrom, ValidTo] interval contains the evaluation instant suppresses
// its flag. The relationship is bounded: exemption requests never trigger
// sub-exemptions.
//
// Storage model (DynamoDB):
//   - PK: id
//   - lookups by (subject_id, flag) use a filtered scan; the table stays
//     small because exemptions are administrative records.
type Exception struct {
	ID        string          `json:"id"`
	RequestID string          `json:"request_id"`
	SubjectID string          `json:"subject_id"`
	Flag      Flag            `json:"flag"`
	ValidFrom time.Time       `json:"valid_from"`
	ValidTo   time.Time       `json:"valid_to"`
	Status    ExceptionStatus `json:"status"`
	Reason    string          `json:"reason,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Covers reports whether the exception suppresses flag for subjectID at the
// given instant. Pending and Rejected exemptions never suppress anything.
func (e Exception) Covers(subjectID string, flag Flag, at time.Time) bool {
	if e.Status != ExceptionStatusApproved {
		return false
	}
	if e.SubjectID != subjectID || e.Flag != flag {
		return false
	}
	return !at.Before(e.ValidFrom) && !at.After(e.ValidTo)
}

// FulfillmentException documents a detected SLA breach for one entity. It is
// created at most once per (entity, reason) pair, so repeated breach scans
// stay idempotent.
type FulfillmentException struct {
	ID          string    `json:"id"`
	EntityID    string    `json:"entity_id"`
	Reason      string    `json:"reason"`
	Detail      string    `json:"detail,omitempty"`
	OverdueDays int       `json:"overdue_days"`
	LateDays    int       `json:"late_days"`
	AutoCreated bool      `json:"auto_created"`
	CreatedAt   time.Time `json:"created_at"`
}
