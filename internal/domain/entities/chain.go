package entities

import "time"

// ChainStatus is the aggregate status of an approval chain.
//
// Derivation rule: Approved iff every step is Approved; Rejected iff any step
// is Rejected; Pending otherwise.

type ChainStatus string

const (
	ChainStatusPending  ChainStatus = "pending"
	ChainStatusApproved ChainStatus = "approved"
	ChainStatusRejected ChainStatus = "rejected"
)

// IsTerminal reports whether the chain admits no further decisions.
func (s ChainStatus) IsTerminal() bool {
	return s == ChainStatusApproved || s == ChainStatusRejected
}

type StepStatus string

const (
	StepStatusPending  StepStatus = "pending"
	StepStatusApproved StepStatus = "approved"
	StepStatusRejected StepStatus = "rejected"
)

// ApprovalStep is one role-based decision in a chain.
type ApprovalStep struct {
	Role        string     `json:"role"`
	Assignee    string     `json:"assignee,omitempty"`
	Status      StepStatus `json:"status"`
	SLAHours    int        `json:"sla_hours"`
	RequestedAt time.Time  `json:"requested_at"`
	DecidedAt   *time.Time `json:"decided_at,omitempty"`
	DecidedBy   string     `json:"decided_by,omitempty"`
	Note        string     `json:"note,omitempty"`
}

// ApprovalChain is the ordered sequence of approval steps attached to a
// request. The chain is structurally immutable after creation: steps are
// never inserted or removed, only their status transitions.
//
// Invariant: the Approved steps always form a prefix of the chain, so at most
// one step (the first Pending one) is actionable at any time.
//
// Storage model (DynamoDB):
//   - PK: id
//   - steps persisted inline as a list attribute
type ApprovalChain struct {
	ID        string         `json:"id"`
	RequestID string         `json:"request_id"`
	Scope     Scope          `json:"scope"`
	Status    ChainStatus    `json:"status"`
	Steps     []ApprovalStep `json:"steps"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NextPendingIndex returns the index of the first Pending step, or -1 when
// the chain is terminal.
func (c ApprovalChain) NextPendingIndex() int {
	for i := range c.Steps {
		switch c.Steps[i].Status {
		case StepStatusPending:
			return i
		case StepStatusRejected:
			return -1
		}
	}
	return -1
}

// DeriveStatus recomputes the aggregate status from the steps.
func (c ApprovalChain) DeriveStatus() ChainStatus {
	approved := 0
	for i := range c.Steps {
		switch c.Steps[i].Status {
		case StepStatusRejected:
			return ChainStatusRejected
		case StepStatusApproved:
			approved++
		}
	}
	if len(c.Steps) > 0 && approved == len(c.Steps) {
		return ChainStatusApproved
	}
	return ChainStatusPending
}
