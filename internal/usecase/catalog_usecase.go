package usecase

import (
	"errors"
	"strings"

	"home_estimate/internal/domain/catalog"
	"home_estimate/internal/domain/entities"

	"github.com/samber/lo"
)

var ErrUnknownCategory = errors.New("unknown category")

// SectionTree is a section with its categories, in catalog order.
type SectionTree struct {
	Section    entities.Section
	Categories []entities.Category
}

// ICatalogUseCase serves the read-only catalog the selection steps browse.
type ICatalogUseCase interface {
	Sections() []SectionTree
	Services(categoryID entities.CategoryID) ([]entities.Service, error)
	TimeCoefficients() []entities.TimeCoefficientPreset
}

type CatalogUseCase struct {
	index *catalog.Index
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(ix *catalog.Index) *CatalogUseCase {
	return &CatalogUseCase{index: ix}
}

func (u *CatalogUseCase) Sections() []SectionTree {
	return lo.Map(u.index.Sections(), func(s entities.Section, _ int) SectionTree {
		return SectionTree{Section: s, Categories: u.index.Categories(s.ID)}
	})
}

func (u *CatalogUseCase) Services(categoryID entities.CategoryID) ([]entities.Service, error) {
	categoryID = entities.CategoryID(strings.TrimSpace(string(categoryID)))
	services := u.index.ServicesOf(categoryID)
	if len(services) == 0 {
		return nil, ErrUnknownCategory
	}
	return services, nil
}

func (u *CatalogUseCase) TimeCoefficients() []entities.TimeCoefficientPreset {
	return catalog.TimeCoefficientPresets()
}
