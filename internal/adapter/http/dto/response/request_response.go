package response

import (
	"time"

	"corporatepay/internal/domain/entities"
	"corporatepay/internal/domain/sla"
	"corporatepay/internal/usecase"
)

type SLAResponse struct {
	Breached    bool `json:"breached"`
	OverdueDays int  `json:"overdue_days"`
	LateDays    int  `json:"late_days"`
}

type RequestResponse struct {
	ID             string       `json:"id"`
	RequesterID    string       `json:"requester_id"`
	SubjectID      string       `json:"subject_id,omitempty"`
	Scope          string       `json:"scope"`
	Amount         int64        `json:"amount"`
	Currency       string       `json:"currency"`
	Quantity       int          `json:"quantity,omitempty"`
	Category       string       `json:"category,omitempty"`
	CounterpartyID string       `json:"counterparty_id,omitempty"`
	Purpose        string       `json:"purpose,omitempty"`
	CostCenter     string       `json:"cost_center,omitempty"`
	OccurredAt     time.Time    `json:"occurred_at"`
	Status         string       `json:"status"`
	Flags          []string     `json:"flags,omitempty"`
	ChainID        string       `json:"chain_id,omitempty"`
	DueAt          *time.Time   `json:"due_at,omitempty"`
	CompletedAt    *time.Time   `json:"completed_at,omitempty"`
	SLA            *SLAResponse `json:"sla,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

func FromRequest(r entities.ApprovalRequest) RequestResponse {
	flags := make([]string, 0, len(r.Flags))
	for _, f := range r.Flags {
		flags = append(flags, string(f))
	}
	return RequestResponse{
		ID:             r.ID,
		RequesterID:    r.RequesterID,
		SubjectID:      r.SubjectID,
		Scope:          string(r.Scope),
		Amount:         r.Amount,
		Currency:       r.Currency,
		Quantity:       r.Quantity,
		Category:       r.Category,
		CounterpartyID: r.CounterpartyID,
		Purpose:        r.Purpose,
		CostCenter:     r.CostCenter,
		OccurredAt:     r.OccurredAt,
		Status:         string(r.Status),
		Flags:          flags,
		ChainID:        r.ChainID,
		DueAt:          r.DueAt,
		CompletedAt:    r.CompletedAt,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func FromRequestWithSLA(r usecase.RequestWithSLA) RequestResponse {
	out := FromRequest(r.Request)
	if r.SLA != nil {
		out.SLA = fromSLA(*r.SLA)
	}
	return out
}

func fromSLA(r sla.Result) *SLAResponse {
	return &SLAResponse{Breached: r.Breached, OverdueDays: r.OverdueDays, LateDays: r.LateDays}
}

// SubmitResponse is the submission outcome: the persisted request plus the
// chain when one was required.
type SubmitResponse struct {
	Request RequestResponse `json:"request"`
	Chain   *ChainResponse  `json:"chain,omitempty"`
}

func FromSubmitResult(r usecase.SubmitResult) SubmitResponse {
	out := SubmitResponse{Request: FromRequest(r.Request)}
	if r.Chain != nil {
		chain := FromChain(*r.Chain)
		out.Chain = &chain
	}
	return out
}
