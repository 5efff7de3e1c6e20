package interfaces

import (
	"context"

	"home_estimate/internal/domain/entities"
)

// IPricingGateway abstracts the remote pricing service.
//
// Service ids are passed in their structural form; the gateway owns the
// conversion to the dotted work code used on the wire.
type IPricingGateway interface {
	ResolveFinishingMaterials(ctx context.Context, serviceID entities.ServiceID) (map[string][]entities.FinishingMaterialOption, error)
	Calculate(ctx context.Context, req entities.PricingRequest) (entities.CalculationResult, error)
}
