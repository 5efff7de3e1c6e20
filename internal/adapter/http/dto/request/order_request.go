package request

import (
	"time"

	"home_estimate/internal/domain/entities"

	"github.com/samber/lo"
)

type OrderMaterialRequest struct {
	Name        string  `json:"name"`
	ExternalID  string  `json:"external_id"`
	CostPerUnit float64 `json:"cost_per_unit"`
	Quantity    float64 `json:"quantity"`
	Cost        float64 `json:"cost"`
}

type OrderWorkRequest struct {
	Code              string                 `json:"code"`
	Name              string                 `json:"name"`
	Quantity          float64                `json:"quantity"`
	UnitOfMeasurement string                 `json:"unit_of_measurement"`
	Total             float64                `json:"total"`
	Materials         []OrderMaterialRequest `json:"materials"`
}

type OrderCommonRequest struct {
	Address         string          `json:"address"`
	Location        LocationRequest `json:"location"`
	Date            time.Time       `json:"date"`
	Photos          []string        `json:"photos"`
	Description     string          `json:"description"`
	DateCoefficient float64         `json:"date_coefficient"`
}

// OrderUpdateRequest mirrors the composite-order update structure. Omitted
// fields are left untouched.
type OrderUpdateRequest struct {
	Subtotal              *float64            `json:"subtotal"`
	TaxAmount             *float64            `json:"tax_amount"`
	ServiceFeeOnLabor     *float64            `json:"service_fee_on_labor"`
	ServiceFeeOnMaterials *float64            `json:"service_fee_on_materials"`
	Common                *OrderCommonRequest `json:"common"`
	Works                 []OrderWorkRequest  `json:"works"`
}

func (r OrderUpdateRequest) ToUpdate() entities.CompositeOrderUpdate {
	upd := entities.CompositeOrderUpdate{
		Subtotal:              r.Subtotal,
		TaxAmount:             r.TaxAmount,
		ServiceFeeOnLabor:     r.ServiceFeeOnLabor,
		ServiceFeeOnMaterials: r.ServiceFeeOnMaterials,
	}
	if r.Common != nil {
		upd.Common = &entities.OrderCommon{
			Address: r.Common.Address,
			Location: entities.Location{
				Country:    r.Common.Location.Country,
				State:      r.Common.Location.State,
				City:       r.Common.Location.City,
				PostalCode: r.Common.Location.PostalCode,
				Street:     r.Common.Location.Street,
			},
			Date:            r.Common.Date,
			Photos:          r.Common.Photos,
			Description:     r.Common.Description,
			DateCoefficient: r.Common.DateCoefficient,
		}
	}
	if r.Works != nil {
		upd.Works = lo.Map(r.Works, func(w OrderWorkRequest, _ int) entities.OrderWork {
			return entities.OrderWork{
				Code:              w.Code,
				Name:              w.Name,
				Quantity:          w.Quantity,
				UnitOfMeasurement: w.UnitOfMeasurement,
				Total:             w.Total,
				Materials: lo.Map(w.Materials, func(m OrderMaterialRequest, _ int) entities.OrderMaterial {
					return entities.OrderMaterial(m)
				}),
			}
		})
	}
	return upd
}
