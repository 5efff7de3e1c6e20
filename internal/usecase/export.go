package usecase

import (
	"errors"
	"fmt"
	"strings"

	"home_estimate/internal/domain/entities"
	"home_estimate/internal/usecase/interfaces"
)

var ErrUnsupportedExportFormat = errors.New("unsupported export format")

type ExportFormat string

const (
	ExportPDF  ExportFormat = "pdf"
	ExportXLSX ExportFormat = "xlsx"
)

// Document is a rendered export ready to be served as an attachment.
type Document struct {
	FileName    string
	ContentType string
	Body        []byte
}

func ParseExportFormat(v string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(v))); f {
	case "", ExportPDF:
		return ExportPDF, nil
	case ExportXLSX:
		return ExportXLSX, nil
	default:
		return "", ErrUnsupportedExportFormat
	}
}

func render(r interfaces.IExportRenderer, view entities.ViewModel, format ExportFormat) (Document, error) {
	const op = "export.render"

	if r == nil {
		return Document{}, errors.New("export renderer not configured")
	}
	name := strings.ToLower(strings.ReplaceAll(view.Reference, " ", "-"))
	if name == "" {
		name = "estimate"
	}

	var (
		body []byte
		err  error
		doc  Document
	)
	switch format {
	case ExportPDF:
		body, err = r.RenderPDF(view)
		doc = Document{FileName: name + ".pdf", ContentType: "application/pdf"}
	case ExportXLSX:
		body, err = r.RenderXLSX(view)
		doc = Document{FileName: name + ".xlsx", ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"}
	default:
		return Document{}, ErrUnsupportedExportFormat
	}
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", op, err)
	}
	doc.Body = body
	return doc, nil
}
