package export

import (
	"fmt"
	"strings"

	"home_estimate/internal/domain/entities"
	"home_estimate/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// Renderer prints a view model as PDF (maroto) or XLSX (excelize). Both
// documents carry the same numbered outline and totals as the on-screen
// summary.
type Renderer struct {
	Company string
}

var _ interfaces.IExportRenderer = (*Renderer)(nil)

func NewRenderer(company string) *Renderer {
	if strings.TrimSpace(company) == "" {
		company = "Home Estimate"
	}
	return &Renderer{Company: company}
}

func title(view entities.ViewModel) string {
	if view.Source == entities.ViewSourceOrder {
		return "Order " + view.Reference
	}
	return "Estimate " + view.Reference
}

func locationLine(l entities.Location) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{l.Street, l.City, strings.TrimSpace(l.State + " " + l.PostalCode), l.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// formatUSD renders 1234.5 as "$1,234.50".
func formatUSD(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	s := d.StringFixed(2)
	whole, cents := s[:len(s)-3], s[len(s)-2:]

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return fmt.Sprintf("%s$%s.%s", sign, b.String(), cents)
}

func formatQty(q float64) string {
	return decimal.NewFromFloat(q).Round(2).String()
}

// timeAdjustmentLabel names the signed delta of the time coefficient.
func timeAdjustmentLabel(t entities.ViewTotals) string {
	switch {
	case t.TimeAdjustment > 0:
		return fmt.Sprintf("Time surcharge (x%s)", formatQty(t.TimeCoefficient))
	case t.TimeAdjustment < 0:
		return fmt.Sprintf("Time discount (x%s)", formatQty(t.TimeCoefficient))
	default:
		return ""
	}
}

type summaryLine struct {
	label string
	value string
}

func summaryLines(t entities.ViewTotals) []summaryLine {
	lines := []summaryLine{
		{"Labor", formatUSD(t.LaborSubtotal)},
		{"Materials", formatUSD(t.MaterialsSubtotal)},
	}
	if label := timeAdjustmentLabel(t); label != "" {
		lines = append(lines, summaryLine{label, formatUSD(t.TimeAdjustment)})
	}
	return append(lines,
		summaryLine{"Subtotal", formatUSD(t.Subtotal)},
		summaryLine{"Service fee on labor", formatUSD(t.ServiceFeeOnLabor)},
		summaryLine{"Service fee on materials", formatUSD(t.ServiceFeeOnMaterials)},
		summaryLine{fmt.Sprintf("Tax (%s%%)", formatQty(t.TaxRatePercent)), formatUSD(t.TaxAmount)},
		summaryLine{"Total", formatUSD(t.FinalTotal)},
	)
}
