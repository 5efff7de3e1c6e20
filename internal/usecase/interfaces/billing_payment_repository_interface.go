package interfaces

import (
	"context"

	"home_estimate/internal/domain/entities"
)

// IBillingPaymentRepository abstracts DynamoDB persistence for BillingPayment.

type IBillingPaymentRepository interface {
	Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByOrderCode(ctx context.Context, orderCode string) ([]entities.BillingPayment, error)
}
