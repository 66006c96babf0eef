package request

import (
	"strings"

	"corporatepay/internal/usecase"
)

// OpenDisputeRequest opens a manual dispute against a request/fulfillment
// entity.
type OpenDisputeRequest struct {
	EntityID string `json:"entity_id" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
	Detail   string `json:"detail"`
	Actor    string `json:"actor"`
}

func (r OpenDisputeRequest) ToCommand() usecase.OpenDisputeCommand {
	return usecase.OpenDisputeCommand{
		EntityID: strings.TrimSpace(r.EntityID),
		Reason:   strings.TrimSpace(r.Reason),
		Detail:   r.Detail,
		Actor:    r.Actor,
	}
}

// ResolveDisputeRequest closes a dispute, optionally settling the capped
// breach penalty through the payment gateway.
type ResolveDisputeRequest struct {
	Actor         string `json:"actor" binding:"required"`
	SettlePenalty bool   `json:"settle_penalty"`
}
