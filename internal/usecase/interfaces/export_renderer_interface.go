package interfaces

import "home_estimate/internal/domain/entities"

// IExportRenderer turns a view model into a printable document.
type IExportRenderer interface {
	RenderPDF(view entities.ViewModel) ([]byte, error)
	RenderXLSX(view entities.ViewModel) ([]byte, error)
}
