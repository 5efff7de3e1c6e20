package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"home_estimate/internal/domain/entities"

	"github.com/samber/lo"
)

//go:embed catalog.json
var seedJSON []byte

// Data is the static catalog as loaded from JSON.
type Data struct {
	Sections []SectionData `json:"sections"`
}

type SectionData struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Categories []CategoryData `json:"categories"`
}

type CategoryData struct {
	ID       entities.CategoryID `json:"id"`
	Title    string              `json:"title"`
	Services []entities.Service  `json:"services"`
}

// Index answers service -> category -> section lookups over an immutable
// catalog. Every lookup is total: misses resolve to fallback buckets.
type Index struct {
	sections     []entities.Section
	sectionByID  map[string]entities.Section
	categories   map[string][]entities.Category
	categoryByID map[entities.CategoryID]entities.Category
	services     map[entities.CategoryID][]entities.Service
	serviceByID  map[entities.ServiceID]entities.Service
	refs         map[entities.ServiceID]entities.ServiceRef

	sectionRank  map[string]int
	categoryRank map[entities.CategoryID]int
	serviceRank  map[entities.ServiceID]int
}

var (
	defaultOnce  sync.Once
	defaultIndex *Index
)

// Default returns the index built from the embedded catalog.
func Default() *Index {
	defaultOnce.Do(func() {
		var data Data
		if err := json.Unmarshal(seedJSON, &data); err != nil {
			panic(fmt.Sprintf("catalog: embedded catalog: %v", err))
		}
		ix, err := New(data)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded catalog: %v", err))
		}
		defaultIndex = ix
	})
	return defaultIndex
}

// New validates data and builds the lookup tables. Service ids are parsed once
// here; a service whose id does not decompose into its enclosing category is
// rejected.
func New(data Data) (*Index, error) {
	ix := &Index{
		sectionByID:  map[string]entities.Section{},
		categories:   map[string][]entities.Category{},
		categoryByID: map[entities.CategoryID]entities.Category{},
		services:     map[entities.CategoryID][]entities.Service{},
		serviceByID:  map[entities.ServiceID]entities.Service{},
		refs:         map[entities.ServiceID]entities.ServiceRef{},
		sectionRank:  map[string]int{},
		categoryRank: map[entities.CategoryID]int{},
		serviceRank:  map[entities.ServiceID]int{},
	}

	for _, sd := range data.Sections {
		if sd.ID == "" {
			return nil, fmt.Errorf("section %q has no id", sd.Name)
		}
		if _, dup := ix.sectionByID[sd.ID]; dup {
			return nil, fmt.Errorf("duplicate section %q", sd.ID)
		}
		section := entities.Section{ID: sd.ID, Name: sd.Name}
		ix.sectionRank[sd.ID] = len(ix.sections)
		ix.sections = append(ix.sections, section)
		ix.sectionByID[sd.ID] = section

		for _, cd := range sd.Categories {
			if _, dup := ix.categoryByID[cd.ID]; dup {
				return nil, fmt.Errorf("duplicate category %q", cd.ID)
			}
			category := entities.Category{ID: cd.ID, Title: cd.Title, Section: sd.ID}
			ix.categoryRank[cd.ID] = len(ix.categoryRank)
			ix.categories[sd.ID] = append(ix.categories[sd.ID], category)
			ix.categoryByID[cd.ID] = category

			for _, svc := range cd.Services {
				ref, ok := entities.ParseServiceID(svc.ID)
				if !ok || ref.CategoryID() != cd.ID {
					return nil, fmt.Errorf("service %q does not belong to category %q", svc.ID, cd.ID)
				}
				if _, dup := ix.serviceByID[svc.ID]; dup {
					return nil, fmt.Errorf("duplicate service %q", svc.ID)
				}
				if svc.MaxQuantity > 0 && svc.MaxQuantity < svc.MinQuantity {
					return nil, fmt.Errorf("service %q has max_quantity below min_quantity", svc.ID)
				}
				ix.serviceRank[svc.ID] = len(ix.serviceRank)
				ix.services[cd.ID] = append(ix.services[cd.ID], svc)
				ix.serviceByID[svc.ID] = svc
				ix.refs[svc.ID] = ref
			}
		}
	}
	return ix, nil
}

func (ix *Index) Sections() []entities.Section {
	return append([]entities.Section(nil), ix.sections...)
}

func (ix *Index) Categories(sectionID string) []entities.Category {
	return append([]entities.Category(nil), ix.categories[sectionID]...)
}

func (ix *Index) Service(id entities.ServiceID) (entities.Service, bool) {
	svc, ok := ix.serviceByID[id]
	return svc, ok
}

// ServicesOf returns the services of a category in catalog order.
func (ix *Index) ServicesOf(id entities.CategoryID) []entities.Service {
	return append([]entities.Service(nil), ix.services[id]...)
}

// CategoryOf derives the category from the first two tokens of the id.
// An unknown but well-formed id yields a category titled with the raw
// category id; a malformed id yields the Unknown Category bucket.
func (ix *Index) CategoryOf(id entities.ServiceID) entities.Category {
	ref, ok := ix.refs[id]
	if !ok {
		ref, ok = entities.ParseServiceID(id)
	}
	if !ok {
		return entities.Category{
			ID:      entities.UnknownCategoryID,
			Title:   entities.UnknownCategoryName,
			Section: entities.UnknownSectionID,
		}
	}
	if c, found := ix.categoryByID[ref.CategoryID()]; found {
		return c
	}
	return entities.Category{
		ID:      ref.CategoryID(),
		Title:   string(ref.CategoryID()),
		Section: entities.UnknownSectionID,
	}
}

func (ix *Index) SectionOf(id entities.CategoryID) entities.Section {
	if c, ok := ix.categoryByID[id]; ok {
		if s, ok := ix.sectionByID[c.Section]; ok {
			return s
		}
	}
	return entities.Section{ID: entities.UnknownSectionID, Name: entities.UnknownSectionName}
}

// TitleOf returns the catalog title, or the raw id on a miss.
func (ix *Index) TitleOf(id entities.ServiceID) string {
	if svc, ok := ix.serviceByID[id]; ok {
		return svc.Title
	}
	return string(id)
}

// Outline groups ids into a numbered Section -> Category -> Service tree in
// catalog order. Unknown entries sort after known ones. Empty groups never
// appear.
func (ix *Index) Outline(ids []entities.ServiceID) []entities.OutlineSection {
	ids = lo.Uniq(ids)
	sort.SliceStable(ids, func(i, j int) bool {
		return ix.less(ids[i], ids[j])
	})

	var out []entities.OutlineSection
	for _, id := range ids {
		category := ix.CategoryOf(id)
		section := ix.SectionOf(category.ID)

		if len(out) == 0 || out[len(out)-1].Section.ID != section.ID {
			out = append(out, entities.OutlineSection{
				Number:  strconv.Itoa(len(out) + 1),
				Section: section,
			})
		}
		s := &out[len(out)-1]

		if len(s.Categories) == 0 || s.Categories[len(s.Categories)-1].Category.ID != category.ID {
			s.Categories = append(s.Categories, entities.OutlineCategory{
				Number:   s.Number + "." + strconv.Itoa(len(s.Categories)+1),
				Category: category,
			})
		}
		c := &s.Categories[len(s.Categories)-1]

		c.Services = append(c.Services, entities.OutlineService{
			Number:    c.Number + "." + strconv.Itoa(len(c.Services)+1),
			ServiceID: id,
			Title:     ix.TitleOf(id),
		})
	}
	return out
}

func (ix *Index) less(a, b entities.ServiceID) bool {
	ca, cb := ix.CategoryOf(a), ix.CategoryOf(b)
	sa, sb := ix.rankSection(ix.SectionOf(ca.ID).ID), ix.rankSection(ix.SectionOf(cb.ID).ID)
	if sa != sb {
		return sa < sb
	}
	ra, rb := ix.rankCategory(ca.ID), ix.rankCategory(cb.ID)
	if ra != rb {
		return ra < rb
	}
	if ca.ID != cb.ID {
		return ca.ID < cb.ID
	}
	va, vb := ix.rankService(a), ix.rankService(b)
	if va != vb {
		return va < vb
	}
	return a < b
}

func (ix *Index) rankSection(id string) int {
	if r, ok := ix.sectionRank[id]; ok {
		return r
	}
	return len(ix.sectionRank)
}

func (ix *Index) rankCategory(id entities.CategoryID) int {
	if r, ok := ix.categoryRank[id]; ok {
		return r
	}
	return len(ix.categoryRank)
}

func (ix *Index) rankService(id entities.ServiceID) int {
	if r, ok := ix.serviceRank[id]; ok {
		return r
	}
	return len(ix.serviceRank)
}

var timeCoefficientPresets = []entities.TimeCoefficientPreset{
	{Name: "flexible", Coefficient: 0.9},
	{Name: "standard", Coefficient: 1},
	{Name: "priority", Coefficient: 1.15},
	{Name: "urgent", Coefficient: 1.3},
}

// TimeCoefficientPresets lists the scheduling options offered to the user.
func TimeCoefficientPresets() []entities.TimeCoefficientPreset {
	return append([]entities.TimeCoefficientPreset(nil), timeCoefficientPresets...)
}
