package entities

import "time"

type MaterialLine struct {
	Name             string  `json:"name"`
	ExternalID       string  `json:"external_id"`
	UnitCost         float64 `json:"unit_cost"`
	Quantity         float64 `json:"quantity"`
	LineCost         float64 `json:"line_cost"`
	CustomerSupplied bool    `json:"customer_supplied,omitempty"`
}

// CalculationResult is the pricing outcome for one selected service.
// Total is always derived, never stored.
type CalculationResult struct {
	LaborCost     float64        `json:"labor_cost"`
	MaterialCost  float64        `json:"material_cost"`
	MaterialLines []MaterialLine `json:"material_lines"`
}

func (r CalculationResult) Total() float64 {
	return r.LaborCost + r.MaterialCost
}

// WithoutFinishingMaterials is the projection used when materials are removed.
func (r CalculationResult) WithoutFinishingMaterials() CalculationResult {
	return CalculationResult{LaborCost: r.LaborCost, MaterialCost: 0, MaterialLines: []MaterialLine{}}
}

// WithCustomerSupplied zeroes the cost of the flagged material lines and
// takes it off MaterialCost. The lines stay listed.
func (r CalculationResult) WithCustomerSupplied(flags map[string]bool) CalculationResult {
	out := CalculationResult{
		LaborCost:     r.LaborCost,
		MaterialCost:  r.MaterialCost,
		MaterialLines: make([]MaterialLine, len(r.MaterialLines)),
	}
	for i, line := range r.MaterialLines {
		if flags[line.ExternalID] {
			out.MaterialCost -= line.LineCost
			line.LineCost = 0
			line.CustomerSupplied = true
		}
		out.MaterialLines[i] = line
	}
	if out.MaterialCost < 0 {
		out.MaterialCost = 0
	}
	return out
}

// CalculationEntry keeps what the pricing service returned apart from the
// user's overrides; the effective result is a projection of both.
type CalculationEntry struct {
	Fetched          *CalculationResult `json:"fetched,omitempty"`
	MaterialsRemoved bool               `json:"materials_removed,omitempty"`
	Token            string             `json:"token,omitempty"`
	PricedAt         time.Time          `json:"priced_at,omitempty"`
}

func (e CalculationEntry) Effective(customerSupplied map[string]bool) (CalculationResult, bool) {
	if e.Fetched == nil {
		return CalculationResult{}, false
	}
	if e.MaterialsRemoved {
		return e.Fetched.WithoutFinishingMaterials(), true
	}
	if len(customerSupplied) == 0 {
		return *e.Fetched, true
	}
	return e.Fetched.WithCustomerSupplied(customerSupplied), true
}
