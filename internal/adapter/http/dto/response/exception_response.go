package response

import (
	"time"

	"corporatepay/internal/domain/entities"
	"corporatepay/internal/usecase"
)

type ExceptionResponse struct {
	ID        string    `json:"id"`
	RequestID string    `json:"request_id"`
	SubjectID string    `json:"subject_id"`
	Flag      string    `json:"flag"`
	ValidFrom time.Time `json:"valid_from"`
	ValidTo   time.Time `json:"valid_to"`
	Status    string    `json:"status"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromException(e entities.Exception) ExceptionResponse {
	return ExceptionResponse{
		ID:        e.ID,
		RequestID: e.RequestID,
		SubjectID: e.SubjectID,
		Flag:      string(e.Flag),
		ValidFrom: e.ValidFrom,
		ValidTo:   e.ValidTo,
		Status:    string(e.Status),
		Reason:    e.Reason,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// ExemptionResponse bundles the pending exemption with the approval request
// and chain that gate it.
type ExemptionResponse struct {
	Exception ExceptionResponse `json:"exception"`
	Request   RequestResponse   `json:"request"`
	Chain     ChainResponse     `json:"chain"`
}

func FromExemptionResult(r usecase.ExemptionResult) ExemptionResponse {
	return ExemptionResponse{
		Exception: FromException(r.Exception),
		Request:   FromRequest(r.Request),
		Chain:     FromChain(r.Chain),
	}
}

// ExemptQueryResponse answers "is (subject, flag) exempt at instant t".
type ExemptQueryResponse struct {
	SubjectID string    `json:"subject_id"`
	Flag      string    `json:"flag"`
	At        time.Time `json:"at"`
	Exempt    bool      `json:"exempt"`
}
