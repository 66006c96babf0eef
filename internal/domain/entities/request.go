package entities

import "time"

// RequestStatus represents the lifecycle of an approvable request.
//
// Domain notes:
//   - The approvals-service is the source of truth for request/chain state.
//   - Status is mutated only by the approval workflow and by the terminal
//     cancel/refund operations; everything else reads.

type RequestStatus string

const (
	RequestStatusDraft           RequestStatus = "draft"
	RequestStatusPendingApproval RequestStatus = "pending_approval"
	RequestStatusConfirmed       RequestStatus = "confirmed"
	RequestStatusRejected        RequestStatus = "rejected"
	RequestStatusCancelled       RequestStatus = "cancelled"
	RequestStatusRefunded        RequestStatus = "refunded"
)

// IsTerminal reports whether the status admits no further workflow transitions.
func (s RequestStatus) IsTerminal() bool {
	switch s {
	case RequestStatusConfirmed, RequestStatusRejected, RequestStatusCancelled, RequestStatusRefunded:
		return true
	}
	return false
}

// IsNonFulfilling reports whether the status ends the request without an
// obligation to deliver. A cancelled or refunded item cannot be overdue.
func (s RequestStatus) IsNonFulfilling() bool {
	switch s {
	case RequestStatusCancelled, RequestStatusRefunded, RequestStatusRejected:
		return true
	}
	return false
}

// Scope identifies which workflow variant a chain belongs to. The state
// machine is identical across scopes; only the terminal side effect differs.
type Scope string

const (
	ScopeRequest   Scope = "request"
	ScopeException Scope = "exception"
	ScopeFleetPlan Scope = "fleet-plan"
)

// Flag names a triggered policy condition (e.g. "above-limit"). A request
// carries an ordered, deduplicated flag set computed once at evaluation time.
type Flag string

const (
	FlagAfterHours         Flag = "after-hours"
	FlagPeakTariff         Flag = "peak-tariff"
	FlagAboveLimit         Flag = "above-limit"
	FlagAboveQuantityLimit Flag = "above-quantity-limit"
	FlagRestrictedCategory Flag = "restricted-category"
	FlagPrivilegedSubject  Flag = "privileged-subject"
)

// ApprovalRequest is the subject of a decision persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - Amount is in minor units (cents) of Currency.
//
// DueAt/CompletedAt drive SLA evaluation once set; they are optional because
// a request acquires a due date only when it enters fulfillment.
type ApprovalRequest struct {
	ID             string        `json:"id"`
	RequesterID    string        `json:"requester_id"`
	SubjectID      string        `json:"subject_id"`
	Scope          Scope         `json:"scope"`
	Amount         int64         `json:"amount"`
	Currency       string        `json:"currency"`
	Quantity       int           `json:"quantity"`
	Category       string        `json:"category"`
	CounterpartyID string        `json:"counterparty_id"`
	Purpose        string        `json:"purpose"`
	CostCenter     string        `json:"cost_center"`
	OccurredAt     time.Time     `json:"occurred_at"`
	Status         RequestStatus `json:"status"`
	Flags          []Flag        `json:"flags,omitempty"`
	ChainID        string        `json:"chain_id,omitempty"`
	DueAt          *time.Time    `json:"due_at,omitempty"`
	CompletedAt    *time.Time    `json:"completed_at,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
