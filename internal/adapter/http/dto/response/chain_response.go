package response

import (
	"time"

	"corporatepay/internal/domain/entities"
)

type StepResponse struct {
	Role        string     `json:"role"`
	Assignee    string     `json:"assignee,omitempty"`
	Status      string     `json:"status"`
	SLAHours    int        `json:"sla_hours"`
	RequestedAt time.Time  `json:"requested_at"`
	DecidedAt   *time.Time `json:"decided_at,omitempty"`
	DecidedBy   string     `json:"decided_by,omitempty"`
	Note        string     `json:"note,omitempty"`
}

type ChainResponse struct {
	ID        string         `json:"id"`
	RequestID string         `json:"request_id"`
	Scope     string         `json:"scope"`
	Status    string         `json:"status"`
	Steps     []StepResponse `json:"steps"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func FromChain(c entities.ApprovalChain) ChainResponse {
	steps := make([]StepResponse, 0, len(c.Steps))
	for _, s := range c.Steps {
		steps = append(steps, StepResponse{
			Role:        s.Role,
			Assignee:    s.Assignee,
			Status:      string(s.Status),
			SLAHours:    s.SLAHours,
			RequestedAt: s.RequestedAt,
			DecidedAt:   s.DecidedAt,
			DecidedBy:   s.DecidedBy,
			Note:        s.Note,
		})
	}
	return ChainResponse{
		ID:        c.ID,
		RequestID: c.RequestID,
		Scope:     string(c.Scope),
		Status:    string(c.Status),
		Steps:     steps,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// DecisionResponse reports the chain status after a decision was recorded.
type DecisionResponse struct {
	ChainID string `json:"chain_id"`
	Status  string `json:"status"`
}
