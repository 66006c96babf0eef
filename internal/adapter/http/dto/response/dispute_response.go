package response

import (
	"time"

	"corporatepay/internal/domain/entities"
	"corporatepay/internal/usecase"
)

type DisputeResponse struct {
	ID            string     `json:"id"`
	EntityID      string     `json:"entity_id"`
	Status        string     `json:"status"`
	Reason        string     `json:"reason"`
	Detail        string     `json:"detail,omitempty"`
	AutoTriggered bool       `json:"auto_triggered"`
	PenaltyAmount int64      `json:"penalty_amount,omitempty"`
	Currency      string     `json:"currency,omitempty"`
	ResolvedBy    string     `json:"resolved_by,omitempty"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func FromDispute(d entities.Dispute) DisputeResponse {
	return DisputeResponse{
		ID:            d.ID,
		EntityID:      d.EntityID,
		Status:        string(d.Status),
		Reason:        d.Reason,
		Detail:        d.Detail,
		AutoTriggered: d.AutoTriggered,
		PenaltyAmount: d.PenaltyAmount,
		Currency:      d.Currency,
		ResolvedBy:    d.ResolvedBy,
		ResolvedAt:    d.ResolvedAt,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func FromDisputes(ds []entities.Dispute) []DisputeResponse {
	out := make([]DisputeResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, FromDispute(d))
	}
	return out
}

// ScanResponse summarizes one breach scan pass.
type ScanResponse struct {
	EntitiesScanned   int `json:"entities_scanned"`
	Breached          int `json:"breached"`
	ExceptionsCreated int `json:"exceptions_created"`
	DisputesCreated   int `json:"disputes_created"`
}

func FromScanResult(r usecase.ScanResult) ScanResponse {
	return ScanResponse{
		EntitiesScanned:   r.EntitiesScanned,
		Breached:          r.Breached,
		ExceptionsCreated: r.ExceptionsCreated,
		DisputesCreated:   r.DisputesCreated,
	}
}
