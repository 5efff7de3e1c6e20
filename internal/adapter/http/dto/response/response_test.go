package response

import (
	"testing"
	"time"

	"home_estimate/internal/domain/entities"
	"home_estimate/internal/usecase"
)

func TestFromSession(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s := entities.NewSession("sess-1", now)
	s.Selection["kitchen-cabinets-3"] = entities.SelectionEntry{ServiceID: "kitchen-cabinets-3", Quantity: 4}
	s.Selection["kitchen-cabinets-1"] = entities.SelectionEntry{ServiceID: "kitchen-cabinets-1", Quantity: 2, Group: "kitchen"}
	s.Calculations["kitchen-cabinets-3"] = entities.CalculationEntry{
		Fetched: &entities.CalculationResult{
			LaborCost: 40, MaterialCost: 50,
			MaterialLines: []entities.MaterialLine{{ExternalID: "h-brass", LineCost: 50}},
		},
		PricedAt: now,
	}
	s.Finishing["kitchen-cabinets-3"] = entities.FinishingSelection{
		Groups:           map[string][]entities.FinishingMaterialOption{"handles": {{ExternalID: "h-brass"}}},
		Picks:            map[string]string{"handles": "h-brass"},
		CustomerSupplied: map[string]bool{"h-brass": true},
	}
	s.SetWarning(entities.WarningLocation, "add an address")

	res := FromSession(s)
	if len(res.Selection) != 2 || res.Selection[0].ServiceID != "kitchen-cabinets-1" {
		t.Fatalf("selection must be sorted by id: %+v", res.Selection)
	}
	if res.Calculations[0].Priced {
		t.Fatalf("unpriced service reported as priced")
	}
	hw := res.Calculations[1]
	if !hw.Priced || hw.MaterialCost != 0 || hw.Total != 40 || !hw.MaterialLines[0].CustomerSupplied {
		t.Fatalf("customer supplied projection not applied: %+v", hw)
	}
	if hw.PricedAt == nil || !hw.PricedAt.Equal(now) {
		t.Fatalf("priced_at not set")
	}
	if len(res.Finishing) != 1 || res.Finishing[0].Current[0] != "h-brass" || res.Finishing[0].CustomerSupplied[0] != "h-brass" {
		t.Fatalf("unexpected finishing: %+v", res.Finishing)
	}
	if res.Warnings["location"] != "add an address" {
		t.Fatalf("unexpected warnings: %+v", res.Warnings)
	}
}

func TestFromFinishing_EmptySelection(t *testing.T) {
	res := FromFinishing("kitchen-cabinets-1", entities.FinishingSelection{})
	if res.Groups == nil || res.Picks == nil || len(res.Current) != 0 || len(res.CustomerSupplied) != 0 {
		t.Fatalf("expected empty but non-nil collections: %+v", res)
	}
}

func TestFromEstimateResult(t *testing.T) {
	res := FromEstimateResult("sess-1", usecase.EstimateResult{
		Number:         "OR-97201-20260301-1000",
		TaxRatePercent: 0,
		Totals:         entities.EstimateTotals{FinalTotal: 167.5},
		Warnings:       map[entities.WarningKind]string{entities.WarningQuantity: "clamped"},
	})
	if !res.Temporary || res.EstimateNumber != "OR-97201-20260301-1000" || res.Totals.FinalTotal != 167.5 {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.Warnings["quantity"] != "clamped" {
		t.Fatalf("unexpected warnings: %+v", res.Warnings)
	}
}

func TestFromOrder(t *testing.T) {
	o := entities.CompositeOrder{Code: "HE-1", Subtotal: 100, ServiceFeeOnLabor: 15, ServiceFeeOnMaterials: 2.5, TaxAmount: 2.5}
	res := FromOrder(o, nil)
	if res.GrandTotal != 120 || res.View != nil {
		t.Fatalf("unexpected order response: %+v", res)
	}
}

func TestFromSectionTrees(t *testing.T) {
	res := FromSectionTrees([]usecase.SectionTree{{
		Section:    entities.Section{ID: "kitchen", Name: "Kitchen"},
		Categories: []entities.Category{{ID: "kitchen-cabinets", Title: "Cabinets", Section: "kitchen"}},
	}})
	if len(res) != 1 || res[0].Name != "Kitchen" || res[0].Categories[0].ID != "kitchen-cabinets" {
		t.Fatalf("unexpected sections: %+v", res)
	}
}
