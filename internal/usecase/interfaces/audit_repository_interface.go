package interfaces

import (
	"context"

	"corporatepay/internal/domain/entities"
)

// IAuditRepository appends immutable state-transition records. Append is
// called before any downstream notification so the decision survives a
// delivery failure.
type IAuditRepository interface {
	Append(ctx context.Context, rec entities.AuditRecord) error
	ListByEntityID(ctx context.Context, entityID string) ([]entities.AuditRecord, error)
}
