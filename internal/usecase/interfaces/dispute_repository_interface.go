package interfaces

import (
	"context"
	"time"

	"corporatepay/internal/domain/entities"
)

// IDisputeRepository abstracts DynamoDB persistence for Dispute.
type IDisputeRepository interface {
	Create(ctx context.Context, d entities.Dispute) (entities.Dispute, error)
	// CreateIfAbsent reports false without error when a dispute with the same
	// id (deterministic for auto-triggered ones) already exists.
	CreateIfAbsent(ctx context.Context, d entities.Dispute) (bool, error)
	GetByID(ctx context.Context, id string) (entities.Dispute, error)
	ListByEntityID(ctx context.Context, entityID string) ([]entities.Dispute, error)
	Resolve(ctx context.Context, id, resolvedBy string, penalty int64, currency string, at time.Time) (entities.Dispute, error)
}
