package entities

import "strings"

// ServiceID is the hyphenated structural identifier "section-category-index".
// The remote pricing service and persisted orders carry the dotted form.
type ServiceID string

type CategoryID string

const (
	UnknownSectionID    = "unknown"
	UnknownSectionName  = "Unknown Section"
	UnknownCategoryID   = CategoryID("unknown")
	UnknownCategoryName = "Unknown Category"
)

// ServiceRef is a ServiceID split into its structural tokens.
type ServiceRef struct {
	ID       ServiceID
	Section  string
	Category string
	Index    string
}

func (r ServiceRef) CategoryID() CategoryID {
	return CategoryID(r.Section + "-" + r.Category)
}

// ParseServiceID splits id into section, category and index tokens.
// The index token keeps any further hyphens.
func ParseServiceID(id ServiceID) (ServiceRef, bool) {
	parts := strings.SplitN(strings.TrimSpace(string(id)), "-", 3)
	if len(parts) < 3 {
		return ServiceRef{}, false
	}
	for _, p := range parts {
		if p == "" {
			return ServiceRef{}, false
		}
	}
	return ServiceRef{ID: id, Section: parts[0], Category: parts[1], Index: parts[2]}, true
}

// Dotted returns the wire form used by the pricing service and order storage.
func (id ServiceID) Dotted() string {
	return strings.ReplaceAll(string(id), "-", ".")
}

// ServiceIDFromCode normalizes a dotted work code back to the structural form.
func ServiceIDFromCode(code string) ServiceID {
	return ServiceID(strings.ReplaceAll(strings.TrimSpace(code), ".", "-"))
}

type Section struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Category struct {
	ID      CategoryID `json:"id"`
	Title   string     `json:"title"`
	Section string     `json:"section"`
}

// Service is a sellable unit of work.
type Service struct {
	ID                    ServiceID `json:"id"`
	Title                 string    `json:"title"`
	UnitOfMeasurement     string    `json:"unit_of_measurement"`
	MinQuantity           float64   `json:"min_quantity"`
	MaxQuantity           float64   `json:"max_quantity"`
	BasePrice             float64   `json:"base_price,omitempty"`
	HasFinishingMaterials bool      `json:"has_finishing_materials"`
}

// Clamp bounds qty to the service limits. A zero MaxQuantity means unbounded.
func (s Service) Clamp(qty float64) (float64, bool) {
	if qty < s.MinQuantity {
		return s.MinQuantity, true
	}
	if s.MaxQuantity > 0 && qty > s.MaxQuantity {
		return s.MaxQuantity, true
	}
	return qty, false
}

// TimeCoefficientPreset is a named scheduling option offered to the user.
type TimeCoefficientPreset struct {
	Name        string  `json:"name"`
	Coefficient float64 `json:"coefficient"`
}
