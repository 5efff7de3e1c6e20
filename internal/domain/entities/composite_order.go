package entities

import "time"

type OrderMaterial struct {
	Name        string  `json:"name"`
	ExternalID  string  `json:"external_id"`
	CostPerUnit float64 `json:"cost_per_unit"`
	Quantity    float64 `json:"quantity"`
	Cost        float64 `json:"cost"`
}

// OrderWork is one persisted line item. Storage keeps only the combined total;
// labor is back-derived as Total - sum(material costs).
type OrderWork struct {
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	Quantity          float64         `json:"quantity,omitempty"`
	UnitOfMeasurement string          `json:"unit_of_measurement,omitempty"`
	Total             float64         `json:"total"`
	Materials         []OrderMaterial `json:"materials"`
}

type OrderCommon struct {
	Address         string    `json:"address"`
	Location        Location  `json:"location"`
	Date            time.Time `json:"date"`
	Photos          []string  `json:"photos,omitempty"`
	Description     string    `json:"description,omitempty"`
	DateCoefficient float64   `json:"date_coefficient"`
}

// CompositeOrder is a frozen, confirmed estimate.
//
// Storage model (DynamoDB):
//   - PK: code
type CompositeOrder struct {
	Code                  string      `json:"code"`
	Subtotal              float64     `json:"subtotal"`
	TaxAmount             float64     `json:"tax_amount"`
	ServiceFeeOnLabor     float64     `json:"service_fee_on_labor"`
	ServiceFeeOnMaterials float64     `json:"service_fee_on_materials"`
	Common                OrderCommon `json:"common"`
	Works                 []OrderWork `json:"works"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
}

// GrandTotal adds the fees and tax back onto the stored subtotal.
func (o CompositeOrder) GrandTotal() float64 {
	return o.Subtotal + o.ServiceFeeOnLabor + o.ServiceFeeOnMaterials + o.TaxAmount
}

// CompositeOrderUpdate is the update structure accepted for an existing order.
// Nil fields are left untouched.
type CompositeOrderUpdate struct {
	Subtotal              *float64     `json:"subtotal,omitempty"`
	TaxAmount             *float64     `json:"tax_amount,omitempty"`
	ServiceFeeOnLabor     *float64     `json:"service_fee_on_labor,omitempty"`
	ServiceFeeOnMaterials *float64     `json:"service_fee_on_materials,omitempty"`
	Common                *OrderCommon `json:"common,omitempty"`
	Works                 []OrderWork  `json:"works,omitempty"`
}
