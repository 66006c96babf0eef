package interfaces

import (
	"context"
	"time"

	"corporatepay/internal/domain/entities"
)

// IRequestRepository abstracts DynamoDB persistence for ApprovalRequest.
//
// Convention (shared by all repositories here): lookups return a zero-value
// entity with an empty ID when nothing matches; errors are reserved for
// storage failures.
type IRequestRepository interface {
	Create(ctx context.Context, r entities.ApprovalRequest) (entities.ApprovalRequest, error)
	GetByID(ctx context.Context, id string) (entities.ApprovalRequest, error)
	UpdateStatus(ctx context.Context, id string, status entities.RequestStatus) (entities.ApprovalRequest, error)
	SetCompleted(ctx context.Context, id string, at time.Time) (entities.ApprovalRequest, error)
	// ListDue returns every request carrying a due date; the breach scan
	// filters terminal entries itself so the query stays simple.
	ListDue(ctx context.Context) ([]entities.ApprovalRequest, error)
}
