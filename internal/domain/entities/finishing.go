package entities

import (
	"errors"
	"sort"
)

var ErrUnknownFinishingMaterial = errors.New("unknown finishing material")

type FinishingMaterialOption struct {
	ExternalID        string  `json:"external_id"`
	Name              string  `json:"name"`
	CostPerUnit       float64 `json:"cost_per_unit"`
	UnitOfMeasurement string  `json:"unit_of_measurement"`
	Image             string  `json:"image,omitempty"`
}

// FinishingSelection holds the candidate set of a service, partitioned into
// named sub-groups, with one pick per sub-group.
//
// CustomerSupplied flags an external id whose cost is borne by the customer;
// the material stays listed on the line item with a zero cost.
type FinishingSelection struct {
	Groups           map[string][]FinishingMaterialOption `json:"groups"`
	Picks            map[string]string                    `json:"picks"`
	CustomerSupplied map[string]bool                      `json:"customer_supplied,omitempty"`
}

// NewFinishingSelection picks the first candidate of every non-empty sub-group.
func NewFinishingSelection(groups map[string][]FinishingMaterialOption) FinishingSelection {
	fs := FinishingSelection{
		Groups:           groups,
		Picks:            make(map[string]string, len(groups)),
		CustomerSupplied: map[string]bool{},
	}
	for name, options := range groups {
		if len(options) > 0 {
			fs.Picks[name] = options[0].ExternalID
		}
	}
	return fs
}

// GroupNames returns the sub-group names in a stable order.
func (f FinishingSelection) GroupNames() []string {
	names := make([]string, 0, len(f.Groups))
	for name := range f.Groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Current returns the picked external ids ordered by sub-group name.
func (f FinishingSelection) Current() []string {
	out := make([]string, 0, len(f.Picks))
	for _, name := range f.GroupNames() {
		if id, ok := f.Picks[name]; ok && id != "" {
			out = append(out, id)
		}
	}
	return out
}

func (f FinishingSelection) groupOf(externalID string) (string, bool) {
	for _, name := range f.GroupNames() {
		for _, o := range f.Groups[name] {
			if o.ExternalID == externalID {
				return name, true
			}
		}
	}
	return "", false
}

// Pick replaces the choice of the sub-group containing externalID.
func (f *FinishingSelection) Pick(externalID string) error {
	group, ok := f.groupOf(externalID)
	if !ok {
		return ErrUnknownFinishingMaterial
	}
	if f.Picks == nil {
		f.Picks = map[string]string{}
	}
	f.Picks[group] = externalID
	return nil
}

func (f *FinishingSelection) MarkCustomerSupplied(externalID string, supplied bool) error {
	if _, ok := f.groupOf(externalID); !ok {
		return ErrUnknownFinishingMaterial
	}
	if f.CustomerSupplied == nil {
		f.CustomerSupplied = map[string]bool{}
	}
	if supplied {
		f.CustomerSupplied[externalID] = true
	} else {
		delete(f.CustomerSupplied, externalID)
	}
	return nil
}
