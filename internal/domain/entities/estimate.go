package entities

// EstimateTotals is the Cost Aggregator output. It is stored on the session by
// the estimate step and read back by checkout.
//
// Monetary representation:
//   - every amount is rounded to cents
//   - FinalTotal == FinalLabor + MaterialsSubtotal + fees + TaxAmount
type EstimateTotals struct {
	LaborSubtotal         float64          `json:"labor_subtotal"`
	MaterialsSubtotal     float64          `json:"materials_subtotal"`
	TimeCoefficient       float64          `json:"time_coefficient"`
	FinalLabor            float64          `json:"final_labor"`
	TimeAdjustment        float64          `json:"time_adjustment"`
	ServiceFeeOnLabor     float64          `json:"service_fee_on_labor"`
	ServiceFeeOnMaterials float64          `json:"service_fee_on_materials"`
	SumBeforeTax          float64          `json:"sum_before_tax"`
	TaxRatePercent        float64          `json:"tax_rate_percent"`
	TaxAmount             float64          `json:"tax_amount"`
	FinalTotal            float64          `json:"final_total"`
	TotalInWords          string           `json:"total_in_words"`
	Outline               []OutlineSection `json:"outline"`
}

// OutlineSection is a numbered Section -> Category -> Service grouping
// ("1", "1.1", "1.1.1").
type OutlineSection struct {
	Number     string            `json:"number"`
	Section    Section           `json:"section"`
	Categories []OutlineCategory `json:"categories"`
}

type OutlineCategory struct {
	Number   string           `json:"number"`
	Category Category         `json:"category"`
	Services []OutlineService `json:"services"`
}

type OutlineService struct {
	Number    string    `json:"number"`
	ServiceID ServiceID `json:"service_id"`
	Title     string    `json:"title"`
}
