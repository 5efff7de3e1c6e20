package export

import (
	"bytes"
	"fmt"
	"strings"

	"home_estimate/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Estimate"

var columns = []string{"A", "B", "C", "D", "E", "F", "G"}

// RenderXLSX writes the outline with numeric cells so the sheet can be
// re-totalled by the reader.
func (r *Renderer) RenderXLSX(view entities.ViewModel) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	widths := []float64{8, 48, 10, 10, 14, 14, 14}
	for i, c := range columns {
		if err := f.SetColWidth(sheetName, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	styles, err := newSheetStyles(f)
	if err != nil {
		return nil, err
	}
	lastCol := columns[len(columns)-1]

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(r.Company+" - "+title(view)))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", styles.title)
	f.SetCellValue(sheetName, "A2", sanitizeExcelCell(locationLine(view.Location)))

	headers := []string{"#", "Description", "Qty", "Unit", "Labor", "Materials", "Total"}
	for i, h := range headers {
		f.SetCellValue(sheetName, columns[i]+"4", h)
	}
	f.SetCellStyle(sheetName, "A4", lastCol+"4", styles.header)

	row := 5
	put := func(values []any, style int) {
		for i, v := range values {
			if s, ok := v.(string); ok {
				v = sanitizeExcelCell(s)
			}
			f.SetCellValue(sheetName, fmt.Sprintf("%s%d", columns[i], row), v)
		}
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), style)
		row++
	}

	for _, section := range view.Sections {
		put([]any{section.Number, section.Name, "", "", "", "", section.Subtotal}, styles.section)
		for _, category := range section.Categories {
			put([]any{category.Number, "  " + category.Title, "", "", "", "", category.Subtotal}, styles.category)
			for _, item := range category.Items {
				if !item.Priced {
					put([]any{item.Number, "    " + item.Label, item.Quantity, item.Unit, "", "", "not priced"}, styles.item)
					continue
				}
				put([]any{item.Number, "    " + item.Label, item.Quantity, item.Unit, item.LaborCost, item.MaterialCost, item.LineTotal}, styles.item)
				for _, line := range item.MaterialLines {
					put([]any{"", "      " + materialDetail(line), line.Quantity, "", "", line.LineCost, ""}, styles.detail)
				}
			}
		}
	}

	row++
	for _, line := range summaryLines(view.Totals) {
		cell := fmt.Sprintf("F%d", row)
		f.SetCellValue(sheetName, cell, line.label)
		f.SetCellStyle(sheetName, cell, cell, styles.summaryLabel)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), strings.TrimSpace(line.value))
		row++
	}
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row+1), "Amount in words: "+view.Totals.TotalInWords)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

type sheetStyles struct {
	title, header, section, category, item, detail, summaryLabel int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	money := "#,##0.00"
	var s sheetStyles
	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&s.title, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}}},
		{&s.header, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    thinBorders(),
		}},
		{&s.section, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}, Border: thinBorders(), CustomNumFmt: &money}},
		{&s.category, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 10}, Border: thinBorders(), CustomNumFmt: &money}},
		{&s.item, &excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders(), CustomNumFmt: &money}},
		{&s.detail, &excelize.Style{Font: &excelize.Font{Size: 9, Color: "#666666"}, CustomNumFmt: &money}},
		{&s.summaryLabel, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}, Alignment: &excelize.Alignment{Horizontal: "right"}}},
	}
	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return sheetStyles{}, fmt.Errorf("create style: %w", err)
		}
		*d.dst = id
	}
	return s, nil
}

// sanitizeExcelCell prevents formula injection by quoting cells whose first
// character Excel would read as the start of a formula.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
