package response

import (
	"sort"
	"time"

	"home_estimate/internal/domain/entities"

	"github.com/samber/lo"
)

type SelectionResponse struct {
	ServiceID entities.ServiceID `json:"service_id"`
	Quantity  float64            `json:"quantity"`
	Group     string             `json:"group,omitempty"`
}

// CalculationResponse is the effective result of one service: what was
// fetched with the user's overrides applied.
type CalculationResponse struct {
	ServiceID        entities.ServiceID      `json:"service_id"`
	Priced           bool                    `json:"priced"`
	LaborCost        float64                 `json:"labor_cost"`
	MaterialCost     float64                 `json:"material_cost"`
	Total            float64                 `json:"total"`
	MaterialsRemoved bool                    `json:"materials_removed"`
	MaterialLines    []entities.MaterialLine `json:"material_lines"`
	PricedAt         *time.Time              `json:"priced_at,omitempty"`
}

type FinishingResponse struct {
	ServiceID        entities.ServiceID                            `json:"service_id"`
	Groups           map[string][]entities.FinishingMaterialOption `json:"groups"`
	Picks            map[string]string                             `json:"picks"`
	Current          []string                                      `json:"current"`
	CustomerSupplied []string                                      `json:"customer_supplied"`
}

type SessionResponse struct {
	ID              string                   `json:"id"`
	Version         int64                    `json:"version"`
	Location        entities.Location        `json:"location"`
	Description     string                   `json:"description,omitempty"`
	Photos          []string                 `json:"photos,omitempty"`
	Selection       []SelectionResponse      `json:"selection"`
	Calculations    []CalculationResponse    `json:"calculations"`
	Finishing       []FinishingResponse      `json:"finishing"`
	TimeCoefficient float64                  `json:"time_coefficient"`
	Totals          *entities.EstimateTotals `json:"totals,omitempty"`
	Warnings        map[string]string        `json:"warnings"`
	OrderCode       string                   `json:"order_code,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

func sortedIDs[V any](m map[entities.ServiceID]V) []entities.ServiceID {
	ids := lo.Keys(m)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func FromSession(s entities.Session) SessionResponse {
	res := SessionResponse{
		ID:              s.ID,
		Version:         s.Version,
		Location:        s.Location,
		Description:     s.Description,
		Photos:          s.Photos,
		Selection:       make([]SelectionResponse, 0, len(s.Selection)),
		Calculations:    make([]CalculationResponse, 0, len(s.Selection)),
		Finishing:       make([]FinishingResponse, 0, len(s.Finishing)),
		TimeCoefficient: s.TimeCoefficient,
		Totals:          s.Totals,
		Warnings:        lo.MapKeys(s.Warnings, func(_ string, k entities.WarningKind) string { return string(k) }),
		OrderCode:       s.OrderCode,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}

	for _, id := range sortedIDs(s.Selection) {
		entry := s.Selection[id]
		res.Selection = append(res.Selection, SelectionResponse{ServiceID: id, Quantity: entry.Quantity, Group: entry.Group})
		res.Calculations = append(res.Calculations, FromCalculation(id, s.Calculations[id], s.Finishing[id]))
	}
	for _, id := range sortedIDs(s.Finishing) {
		res.Finishing = append(res.Finishing, FromFinishing(id, s.Finishing[id]))
	}
	return res
}

func FromCalculation(id entities.ServiceID, entry entities.CalculationEntry, fs entities.FinishingSelection) CalculationResponse {
	res := CalculationResponse{ServiceID: id, MaterialsRemoved: entry.MaterialsRemoved, MaterialLines: []entities.MaterialLine{}}
	effective, ok := entry.Effective(fs.CustomerSupplied)
	if !ok {
		return res
	}
	res.Priced = true
	res.LaborCost = effective.LaborCost
	res.MaterialCost = effective.MaterialCost
	res.Total = effective.Total()
	if effective.MaterialLines != nil {
		res.MaterialLines = effective.MaterialLines
	}
	if !entry.PricedAt.IsZero() {
		at := entry.PricedAt
		res.PricedAt = &at
	}
	return res
}

func FromFinishing(id entities.ServiceID, fs entities.FinishingSelection) FinishingResponse {
	supplied := lo.Keys(lo.PickBy(fs.CustomerSupplied, func(_ string, v bool) bool { return v }))
	sort.Strings(supplied)

	groups := fs.Groups
	if groups == nil {
		groups = map[string][]entities.FinishingMaterialOption{}
	}
	picks := fs.Picks
	if picks == nil {
		picks = map[string]string{}
	}
	return FinishingResponse{
		ServiceID:        id,
		Groups:           groups,
		Picks:            picks,
		Current:          fs.Current(),
		CustomerSupplied: supplied,
	}
}
