package interfaces

import (
	"context"

	"home_estimate/internal/domain/entities"
)

// ICompositeOrderRepository abstracts DynamoDB persistence for CompositeOrder.
//
// GetByCode and Update return the zero value when the order does not exist.
type ICompositeOrderRepository interface {
	Create(ctx context.Context, o entities.CompositeOrder) (entities.CompositeOrder, error)
	GetByCode(ctx context.Context, code string) (entities.CompositeOrder, error)
	Update(ctx context.Context, o entities.CompositeOrder) (entities.CompositeOrder, error)
}
