package interfaces

import (
	"context"
	"time"

	"corporatepay/internal/domain/entities"
)

// IExceptionRepository abstracts persistence for policy exemptions.
type IExceptionRepository interface {
	Create(ctx context.Context, e entities.Exception) (entities.Exception, error)
	GetByID(ctx context.Context, id string) (entities.Exception, error)
	GetByRequestID(ctx context.Context, requestID string) (entities.Exception, error)
	// FindCovering returns an Approved exemption matching subject+flag whose
	// validity interval contains at, or a zero-value when none exists.
	FindCovering(ctx context.Context, subjectID string, flag entities.Flag, at time.Time) (entities.Exception, error)
	UpdateStatus(ctx context.Context, id string, status entities.ExceptionStatus) (entities.Exception, error)
}

// IFulfillmentExceptionRepository persists breach records. CreateIfAbsent is
// the idempotency primitive: it reports false without error when a record
// with the same id already exists.
type IFulfillmentExceptionRepository interface {
	CreateIfAbsent(ctx context.Context, fe entities.FulfillmentException) (bool, error)
	ListByEntityID(ctx context.Context, entityID string) ([]entities.FulfillmentException, error)
}
