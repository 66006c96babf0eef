package interfaces

import (
	"context"

	"corporatepay/internal/domain/entities"
)

// IChainRepository abstracts DynamoDB persistence for ApprovalChain.
//
// Save persists step transitions on an existing chain; structural changes
// (adding/removing steps) never happen after Create.
type IChainRepository interface {
	Create(ctx context.Context, c entities.ApprovalChain) (entities.ApprovalChain, error)
	GetByID(ctx context.Context, id string) (entities.ApprovalChain, error)
	Save(ctx context.Context, c entities.ApprovalChain) (entities.ApprovalChain, error)
}
