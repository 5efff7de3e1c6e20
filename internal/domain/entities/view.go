package entities

type ViewSource string

const (
	ViewSourceLive  ViewSource = "live"
	ViewSourceOrder ViewSource = "order"
)

// ViewModel is the shape every surface (summary, checkout, print) renders,
// whether it comes from a live estimate or a persisted order.
type ViewModel struct {
	Source    ViewSource    `json:"source"`
	Reference string        `json:"reference"`
	Location  Location      `json:"location"`
	Sections  []ViewSection `json:"sections"`
	Totals    ViewTotals    `json:"totals"`
}

type ViewSection struct {
	Number     string         `json:"number"`
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Categories []ViewCategory `json:"categories"`
	Subtotal   float64        `json:"subtotal"`
}

type ViewCategory struct {
	Number   string         `json:"number"`
	ID       CategoryID     `json:"id"`
	Title    string         `json:"title"`
	Items    []ViewLineItem `json:"items"`
	Subtotal float64        `json:"subtotal"`
}

type ViewLineItem struct {
	Number           string         `json:"number"`
	ServiceID        ServiceID      `json:"service_id"`
	Label            string         `json:"label"`
	Quantity         float64        `json:"quantity"`
	Unit             string         `json:"unit"`
	LaborCost        float64        `json:"labor_cost"`
	MaterialCost     float64        `json:"material_cost"`
	LineTotal        float64        `json:"line_total"`
	Priced           bool           `json:"priced"`
	MaterialsRemoved bool           `json:"materials_removed,omitempty"`
	MaterialLines    []MaterialLine `json:"material_lines"`
}

type ViewTotals struct {
	LaborSubtotal         float64 `json:"labor_subtotal"`
	MaterialsSubtotal     float64 `json:"materials_subtotal"`
	TimeCoefficient       float64 `json:"time_coefficient"`
	TimeAdjustment        float64 `json:"time_adjustment"`
	Subtotal              float64 `json:"subtotal"`
	ServiceFeeOnLabor     float64 `json:"service_fee_on_labor"`
	ServiceFeeOnMaterials float64 `json:"service_fee_on_materials"`
	TaxRatePercent        float64 `json:"tax_rate_percent"`
	TaxAmount             float64 `json:"tax_amount"`
	FinalTotal            float64 `json:"final_total"`
	TotalInWords          string  `json:"total_in_words"`
}
