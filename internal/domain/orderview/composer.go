package orderview

import (
	"strconv"

	"home_estimate/internal/domain/catalog"
	"home_estimate/internal/domain/entities"
	"home_estimate/internal/domain/estimate"

	"github.com/samber/lo"
)

// Composer normalizes a live estimate or a persisted composite order into the
// single ViewModel shape rendered by summary, checkout and print.
//
// In both paths the numbered outline comes from the catalog index and
// sum(line totals) + time adjustment == subtotal. Line totals are built from
// cent-rounded labor and material costs, the same values the estimate
// subtotals are summed from, and a persisted order stores those line totals.
type Composer struct {
	index *catalog.Index
}

func NewComposer(ix *catalog.Index) *Composer {
	return &Composer{index: ix}
}

// FromLiveEstimate renders the session's current selection with its effective
// pricing results and the totals computed for it.
func (c *Composer) FromLiveEstimate(s entities.Session, totals entities.EstimateTotals, reference string) entities.ViewModel {
	ids := lo.Keys(s.Selection)

	lines := make(map[entities.ServiceID][]entities.ViewLineItem, len(ids))
	for _, id := range ids {
		entry := s.Selection[id]
		svc, _ := c.index.Service(id)

		item := entities.ViewLineItem{
			ServiceID:     id,
			Label:         c.index.TitleOf(id),
			Quantity:      entry.Quantity,
			Unit:          svc.UnitOfMeasurement,
			MaterialLines: []entities.MaterialLine{},
		}
		calc := s.Calculations[id]
		if r, ok := calc.Effective(s.Finishing[id].CustomerSupplied); ok {
			item.Priced = true
			item.MaterialsRemoved = calc.MaterialsRemoved
			item.LaborCost = estimate.RoundCents(r.LaborCost)
			item.MaterialCost = estimate.RoundCents(r.MaterialCost)
			item.LineTotal = estimate.LineTotal(r.LaborCost, r.MaterialCost)
			item.MaterialLines = append(item.MaterialLines, r.MaterialLines...)
		}
		lines[id] = []entities.ViewLineItem{item}
	}

	return entities.ViewModel{
		Source:    entities.ViewSourceLive,
		Reference: reference,
		Location:  s.Location,
		Sections:  c.assemble(ids, lines),
		Totals: entities.ViewTotals{
			LaborSubtotal:         totals.LaborSubtotal,
			MaterialsSubtotal:     totals.MaterialsSubtotal,
			TimeCoefficient:       totals.TimeCoefficient,
			TimeAdjustment:        totals.TimeAdjustment,
			Subtotal:              estimate.Sum(totals.FinalLabor, totals.MaterialsSubtotal),
			ServiceFeeOnLabor:     totals.ServiceFeeOnLabor,
			ServiceFeeOnMaterials: totals.ServiceFeeOnMaterials,
			TaxRatePercent:        totals.TaxRatePercent,
			TaxAmount:             totals.TaxAmount,
			FinalTotal:            totals.FinalTotal,
			TotalInWords:          totals.TotalInWords,
		},
	}
}

// FromPersistedOrder renders a stored order. A work's category is re-derived
// from its dotted code, so the category id stays the join key even when
// catalog titles change; the label is the name frozen on the work.
func (c *Composer) FromPersistedOrder(o entities.CompositeOrder) entities.ViewModel {
	ids := make([]entities.ServiceID, 0, len(o.Works))
	lines := map[entities.ServiceID][]entities.ViewLineItem{}

	var laborSum, materialSum, lineSum []float64
	for _, w := range o.Works {
		id := entities.ServiceIDFromCode(w.Code)
		ids = append(ids, id)

		materials := make([]entities.MaterialLine, 0, len(w.Materials))
		costs := make([]float64, 0, len(w.Materials))
		for _, m := range w.Materials {
			materials = append(materials, entities.MaterialLine{
				Name:       m.Name,
				ExternalID: m.ExternalID,
				UnitCost:   m.CostPerUnit,
				Quantity:   m.Quantity,
				LineCost:   m.Cost,
			})
			costs = append(costs, m.Cost)
		}
		materialCost := estimate.Sum(costs...)
		laborCost := estimate.Sum(w.Total, -materialCost)

		label := w.Name
		if label == "" {
			label = c.index.TitleOf(id)
		}
		unit := w.UnitOfMeasurement
		if unit == "" {
			if svc, ok := c.index.Service(id); ok {
				unit = svc.UnitOfMeasurement
			}
		}

		lines[id] = append(lines[id], entities.ViewLineItem{
			ServiceID:     id,
			Label:         label,
			Quantity:      w.Quantity,
			Unit:          unit,
			LaborCost:     laborCost,
			MaterialCost:  materialCost,
			LineTotal:     estimate.RoundCents(w.Total),
			Priced:        true,
			MaterialLines: materials,
		})
		laborSum = append(laborSum, laborCost)
		materialSum = append(materialSum, materialCost)
		lineSum = append(lineSum, w.Total)
	}

	coefficient := o.Common.DateCoefficient
	if coefficient <= 0 {
		coefficient = 1
	}
	grand := o.GrandTotal()

	return entities.ViewModel{
		Source:    entities.ViewSourceOrder,
		Reference: o.Code,
		Location:  o.Common.Location,
		Sections:  c.assemble(ids, lines),
		Totals: entities.ViewTotals{
			LaborSubtotal:         estimate.Sum(laborSum...),
			MaterialsSubtotal:     estimate.Sum(materialSum...),
			TimeCoefficient:       coefficient,
			TimeAdjustment:        estimate.Sum(o.Subtotal, -estimate.Sum(lineSum...)),
			Subtotal:              estimate.RoundCents(o.Subtotal),
			ServiceFeeOnLabor:     estimate.RoundCents(o.ServiceFeeOnLabor),
			ServiceFeeOnMaterials: estimate.RoundCents(o.ServiceFeeOnMaterials),
			TaxRatePercent:        estimate.TaxRatePercent(o.Common.Location.State),
			TaxAmount:             estimate.RoundCents(o.TaxAmount),
			FinalTotal:            estimate.RoundCents(grand),
			TotalInWords:          estimate.AmountToWords(grand),
		},
	}
}

// assemble walks the catalog outline and expands every service node into its
// lines, numbering items per category.
func (c *Composer) assemble(ids []entities.ServiceID, lines map[entities.ServiceID][]entities.ViewLineItem) []entities.ViewSection {
	outline := c.index.Outline(ids)
	sections := make([]entities.ViewSection, 0, len(outline))

	for _, sec := range outline {
		section := entities.ViewSection{
			Number:     sec.Number,
			ID:         sec.Section.ID,
			Name:       sec.Section.Name,
			Categories: make([]entities.ViewCategory, 0, len(sec.Categories)),
		}
		var sectionTotals []float64

		for _, oc := range sec.Categories {
			category := entities.ViewCategory{
				Number: oc.Number,
				ID:     oc.Category.ID,
				Title:  oc.Category.Title,
			}
			var categoryTotals []float64

			for _, node := range oc.Services {
				for _, item := range lines[node.ServiceID] {
					item.Number = oc.Number + "." + strconv.Itoa(len(category.Items)+1)
					category.Items = append(category.Items, item)
					categoryTotals = append(categoryTotals, item.LineTotal)
				}
			}
			category.Subtotal = estimate.Sum(categoryTotals...)
			sectionTotals = append(sectionTotals, category.Subtotal)
			section.Categories = append(section.Categories, category)
		}
		section.Subtotal = estimate.Sum(sectionTotals...)
		sections = append(sections, section)
	}
	return sections
}
