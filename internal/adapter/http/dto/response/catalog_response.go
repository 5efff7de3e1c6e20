package response

import (
	"home_estimate/internal/domain/entities"
	"home_estimate/internal/usecase"

	"github.com/samber/lo"
)

type SectionResponse struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Categories []entities.Category `json:"categories"`
}

func FromSectionTrees(trees []usecase.SectionTree) []SectionResponse {
	return lo.Map(trees, func(t usecase.SectionTree, _ int) SectionResponse {
		return SectionResponse{ID: t.Section.ID, Name: t.Section.Name, Categories: t.Categories}
	})
}
