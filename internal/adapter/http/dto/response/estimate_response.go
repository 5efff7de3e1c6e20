package response

import (
	"home_estimate/internal/domain/entities"
	"home_estimate/internal/usecase"
)

type EstimateResponse struct {
	SessionID      string                  `json:"session_id"`
	EstimateNumber string                  `json:"estimate_number"`
	Temporary      bool                    `json:"temporary"`
	TaxRatePercent float64                 `json:"tax_rate_percent"`
	Totals         entities.EstimateTotals `json:"totals"`
	View           entities.ViewModel      `json:"view"`
	Warnings       map[string]string       `json:"warnings"`
}

// FromEstimateResult marks the number as temporary: it is a display aid until
// the estimate is confirmed as an order.
func FromEstimateResult(sessionID string, r usecase.EstimateResult) EstimateResponse {
	warnings := make(map[string]string, len(r.Warnings))
	for k, v := range r.Warnings {
		warnings[string(k)] = v
	}
	return EstimateResponse{
		SessionID:      sessionID,
		EstimateNumber: r.Number,
		Temporary:      true,
		TaxRatePercent: r.TaxRatePercent,
		Totals:         r.Totals,
		View:           r.View,
		Warnings:       warnings,
	}
}

type OrderResponse struct {
	Order      entities.CompositeOrder `json:"order"`
	GrandTotal float64                 `json:"grand_total"`
	View       *entities.ViewModel     `json:"view,omitempty"`
}

func FromOrder(o entities.CompositeOrder, view *entities.ViewModel) OrderResponse {
	return OrderResponse{Order: o, GrandTotal: o.GrandTotal(), View: view}
}
