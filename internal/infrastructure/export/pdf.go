package export

import (
	"fmt"

	"home_estimate/internal/domain/entities"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	grey     = &props.Color{Red: 100, Green: 100, Blue: 100}
	charcoal = &props.Color{Red: 33, Green: 37, Blue: 41}
	altBg    = &props.Color{Red: 248, Green: 249, Blue: 250}
)

func (r *Renderer) RenderPDF(view entities.ViewModel) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.Letter).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	r.addHeader(m, view)
	addLineItems(m, view.Sections)
	addTotals(m, view.Totals)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("export.RenderPDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func (r *Renderer) addHeader(m core.Maroto, view entities.ViewModel) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(text.New(r.Company, props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Left})),
			col.New(6).Add(text.New(title(view), props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Right, Color: charcoal})),
		),
		row.New(7).Add(
			col.New(12).Add(text.New(locationLine(view.Location), props.Text{Size: 8, Align: align.Left, Color: grey})),
		),
	)
	if view.Source == entities.ViewSourceLive {
		m.AddRows(row.New(6).Add(
			col.New(12).Add(text.New("Temporary estimate number. It is replaced by the order code once confirmed.",
				props.Text{Size: 7, Style: fontstyle.Italic, Align: align.Left, Color: grey})),
		))
	}
	m.AddRows(row.New(3))
}

func addLineItems(m core.Maroto, sections []entities.ViewSection) {
	headerText := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Center, Color: &props.Color{Red: 255, Green: 255, Blue: 255}}
	headerLeft := headerText
	headerLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: charcoal}

	m.AddRows(row.New(8).Add(
		col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
		col.New(5).Add(text.New("Description", headerLeft)).WithStyle(&headerCell),
		col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
		col.New(1).Add(text.New("Unit", headerText)).WithStyle(&headerCell),
		col.New(1).Add(text.New("Labor", headerText)).WithStyle(&headerCell),
		col.New(1).Add(text.New("Materials", headerText)).WithStyle(&headerCell),
		col.New(2).Add(text.New("Total", headerText)).WithStyle(&headerCell),
	))

	bold := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}
	boldRight := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}
	body := props.Text{Size: 7, Align: align.Left}
	bodyCenter := props.Text{Size: 7, Align: align.Center}
	bodyRight := props.Text{Size: 7, Align: align.Right}
	detail := props.Text{Size: 6, Align: align.Left, Color: grey}

	for _, section := range sections {
		m.AddRows(row.New(7).Add(
			col.New(1).Add(text.New(section.Number, bold)),
			col.New(9).Add(text.New(section.Name, bold)),
			col.New(2).Add(text.New(formatUSD(section.Subtotal), boldRight)),
		))
		for _, category := range section.Categories {
			m.AddRows(row.New(6).Add(
				col.New(1).Add(text.New(category.Number, body)),
				col.New(9).Add(text.New(category.Title, props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Left})),
				col.New(2).Add(text.New(formatUSD(category.Subtotal), bodyRight)),
			))
			for i, item := range category.Items {
				cells := []core.Col{
					col.New(1).Add(text.New(item.Number, body)),
					col.New(5).Add(text.New(item.Label, body)),
					col.New(1).Add(text.New(formatQty(item.Quantity), bodyCenter)),
					col.New(1).Add(text.New(item.Unit, bodyCenter)),
					col.New(1).Add(text.New(priceOrDash(item, item.LaborCost), bodyRight)),
					col.New(1).Add(text.New(priceOrDash(item, item.MaterialCost), bodyRight)),
					col.New(2).Add(text.New(priceOrDash(item, item.LineTotal), bodyRight)),
				}
				if i%2 == 1 {
					for j := range cells {
						cells[j] = cells[j].WithStyle(&props.Cell{BackgroundColor: altBg})
					}
				}
				m.AddRows(row.New(6).Add(cells...))

				for _, line := range item.MaterialLines {
					m.AddRows(row.New(4).Add(
						col.New(1),
						col.New(9).Add(text.New(materialDetail(line), detail)),
						col.New(2),
					))
				}
			}
		}
	}
	m.AddRows(row.New(4))
}

func addTotals(m core.Maroto, t entities.ViewTotals) {
	label := props.Text{Size: 8, Align: align.Right, Color: grey}
	value := props.Text{Size: 8, Align: align.Right}

	for _, line := range summaryLines(t) {
		m.AddRows(row.New(6).Add(
			col.New(7),
			col.New(3).Add(text.New(line.label, label)),
			col.New(2).Add(text.New(line.value, value)),
		))
	}
	m.AddRows(
		row.New(3),
		row.New(8).Add(
			col.New(12).Add(text.New("Amount in words: "+t.TotalInWords,
				props.Text{Size: 8, Style: fontstyle.BoldItalic, Align: align.Left})),
		),
	)
}

func priceOrDash(item entities.ViewLineItem, v float64) string {
	if !item.Priced {
		return "-"
	}
	return formatUSD(v)
}

func materialDetail(line entities.MaterialLine) string {
	s := fmt.Sprintf("%s  %s x %s = %s", line.Name, formatQty(line.Quantity), formatUSD(line.UnitCost), formatUSD(line.LineCost))
	if line.CustomerSupplied {
		s += " (supplied by customer)"
	}
	return s
}
