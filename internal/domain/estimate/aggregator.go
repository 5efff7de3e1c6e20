package estimate

import (
	"home_estimate/internal/domain/catalog"
	"home_estimate/internal/domain/entities"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Platform fee rates. Fixed, never configured per request.
var (
	ServiceFeeOnLaborRate     = decimal.RequireFromString("0.15")
	ServiceFeeOnMaterialsRate = decimal.RequireFromString("0.05")
)

var hundred = decimal.NewFromInt(100)

// Input is everything the aggregation depends on.
type Input struct {
	Selection       map[entities.ServiceID]entities.SelectionEntry
	Results         map[entities.ServiceID]entities.CalculationResult
	TimeCoefficient float64
	TaxRatePercent  float64
}

// Aggregate turns the selection and its effective pricing results into the
// estimate totals and the numbered outline.
//
// The time coefficient applies to labor only. Each amount is rounded to cents
// before it takes part in the next step, so the stacked total always equals
// the sum of the displayed parts. Per-service costs are rounded before they
// are summed, which keeps the subtotals equal to the sum of the line totals.
func Aggregate(ix *catalog.Index, in Input) entities.EstimateTotals {
	ids := lo.Keys(in.Selection)

	labor, materials := decimal.Zero, decimal.Zero
	for _, id := range ids {
		r, ok := in.Results[id]
		if !ok {
			continue
		}
		labor = labor.Add(cents(r.LaborCost))
		materials = materials.Add(cents(r.MaterialCost))
	}

	coefficient := in.TimeCoefficient
	if coefficient <= 0 {
		coefficient = 1
	}

	laborSubtotal := labor.Round(2)
	materialsSubtotal := materials.Round(2)
	finalLabor := laborSubtotal.Mul(decimal.NewFromFloat(coefficient)).Round(2)
	feeOnLabor := finalLabor.Mul(ServiceFeeOnLaborRate).Round(2)
	feeOnMaterials := materialsSubtotal.Mul(ServiceFeeOnMaterialsRate).Round(2)
	sumBeforeTax := finalLabor.Add(materialsSubtotal).Add(feeOnLabor).Add(feeOnMaterials)
	taxAmount := sumBeforeTax.Mul(decimal.NewFromFloat(in.TaxRatePercent)).Div(hundred).Round(2)
	finalTotal := sumBeforeTax.Add(taxAmount)

	return entities.EstimateTotals{
		LaborSubtotal:         laborSubtotal.InexactFloat64(),
		MaterialsSubtotal:     materialsSubtotal.InexactFloat64(),
		TimeCoefficient:       coefficient,
		FinalLabor:            finalLabor.InexactFloat64(),
		TimeAdjustment:        finalLabor.Sub(laborSubtotal).InexactFloat64(),
		ServiceFeeOnLabor:     feeOnLabor.InexactFloat64(),
		ServiceFeeOnMaterials: feeOnMaterials.InexactFloat64(),
		SumBeforeTax:          sumBeforeTax.InexactFloat64(),
		TaxRatePercent:        in.TaxRatePercent,
		TaxAmount:             taxAmount.InexactFloat64(),
		FinalTotal:            finalTotal.InexactFloat64(),
		TotalInWords:          AmountToWords(finalTotal.InexactFloat64()),
		Outline:               ix.Outline(ids),
	}
}

func cents(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// RoundCents rounds a currency amount to two decimals.
func RoundCents(v float64) float64 {
	return cents(v).InexactFloat64()
}

// LineTotal is the total of one priced line: labor and materials are rounded
// to cents separately, the same way Aggregate sums them.
func LineTotal(laborCost, materialCost float64) float64 {
	return cents(laborCost).Add(cents(materialCost)).InexactFloat64()
}

// Sum adds amounts exactly and rounds the result to cents.
func Sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.Round(2).InexactFloat64()
}
