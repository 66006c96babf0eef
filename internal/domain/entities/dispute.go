package entities

import "time"

// DisputeReasonSLABreach is the trigger reason used by the automatic breach
// scan. At most one auto-triggered dispute may exist per (entity, reason).
const DisputeReasonSLABreach = "sla-breach"

type DisputeStatus string

const (
	DisputeStatusOpen     DisputeStatus = "open"
	DisputeStatusInReview DisputeStatus = "in_review"
	DisputeStatusResolved DisputeStatus = "resolved"
)

// Dispute is a record opened, manually or by the breach scan, to contest an
// SLA breach or other fulfillment issue.
//
// Storage model (DynamoDB):
//   - PK: id
//   - auto-triggered disputes use the deterministic id "dsp-<entity>-<reason>"
//     so a conditional put is enough to guarantee the one-per-pair invariant.
type Dispute struct {
	ID            string        `json:"id"`
	EntityID      string        `json:"entity_id"`
	Status        DisputeStatus `json:"status"`
	Reason        string        `json:"reason"`
	Detail        string        `json:"detail,omitempty"`
	AutoTriggered bool          `json:"auto_triggered"`
	PenaltyAmount int64         `json:"penalty_amount,omitempty"`
	Currency      string        `json:"currency,omitempty"`
	ResolvedBy    string        `json:"resolved_by,omitempty"`
	ResolvedAt    *time.Time    `json:"resolved_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// AutoDisputeID builds the deterministic id enforcing dispute idempotency.
func AutoDisputeID(entityID, reason string) string {
	return "dsp-" + entityID + "-" + reason
}

// BreachExceptionID builds the deterministic id for the breach record created
// alongside an auto dispute.
func BreachExceptionID(entityID, reason string) string {
	return "fex-" + entityID + "-" + reason
}
