package request

import (
	"strings"
	"time"

	"corporatepay/internal/domain/entities"
	"corporatepay/internal/usecase"
)

// SubmitRequest is the payload for submitting a spend/charge request to the
// approval engine. Amount is in minor units of Currency.
type SubmitRequest struct {
	RequesterID    string     `json:"requester_id" binding:"required"`
	SubjectID      string     `json:"subject_id"`
	Scope          string     `json:"scope"`
	Amount         int64      `json:"amount" binding:"required"`
	Currency       string     `json:"currency" binding:"required"`
	Quantity       int        `json:"quantity"`
	Category       string     `json:"category"`
	CounterpartyID string     `json:"counterparty_id"`
	Purpose        string     `json:"purpose"`
	CostCenter     string     `json:"cost_center"`
	OccurredAt     *time.Time `json:"occurred_at"`
	DueAt          *time.Time `json:"due_at"`
}

func (r SubmitRequest) ToCommand() usecase.SubmitRequestCommand {
	return usecase.SubmitRequestCommand{
		RequesterID:    strings.TrimSpace(r.RequesterID),
		SubjectID:      strings.TrimSpace(r.SubjectID),
		Scope:          entities.Scope(strings.TrimSpace(r.Scope)),
		Amount:         r.Amount,
		Currency:       r.Currency,
		Quantity:       r.Quantity,
		Category:       r.Category,
		CounterpartyID: r.CounterpartyID,
		Purpose:        r.Purpose,
		CostCenter:     r.CostCenter,
		OccurredAt:     r.OccurredAt,
		DueAt:          r.DueAt,
	}
}

// DecisionRequest carries one approve/reject decision on a chain's first
// pending step.
type DecisionRequest struct {
	Actor string `json:"actor" binding:"required"`
	Note  string `json:"note"`
}

// CancelRequest identifies who cancels a request.
type CancelRequest struct {
	Actor string `json:"actor" binding:"required"`
}
