package request

import (
	"strings"
	"time"

	"corporatepay/internal/domain/entities"
	"corporatepay/internal/usecase"
)

// ExemptionRequest asks for a time-bound waiver of one policy flag for one
// subject. The waiver only takes effect once its approval chain completes.
type ExemptionRequest struct {
	RequesterID string    `json:"requester_id" binding:"required"`
	SubjectID   string    `json:"subject_id" binding:"required"`
	Flag        string    `json:"flag" binding:"required"`
	ValidFrom   time.Time `json:"valid_from" binding:"required"`
	ValidTo     time.Time `json:"valid_to" binding:"required"`
	Reason      string    `json:"reason"`
}

func (r ExemptionRequest) ToCommand() usecase.RequestExemptionCommand {
	return usecase.RequestExemptionCommand{
		RequesterID: strings.TrimSpace(r.RequesterID),
		SubjectID:   strings.TrimSpace(r.SubjectID),
		Flag:        entities.Flag(strings.TrimSpace(r.Flag)),
		ValidFrom:   r.ValidFrom,
		ValidTo:     r.ValidTo,
		Reason:      r.Reason,
	}
}
