package request

import (
	"strings"

	"home_estimate/internal/domain/entities"
	"home_estimate/internal/usecase"

	"github.com/samber/lo"
)

type LocationRequest struct {
	Country    string `json:"country" binding:"required"`
	State      string `json:"state"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code" binding:"required"`
	Street     string `json:"street"`
}

// SiteRequest is the address step: where the work happens and what it is.
type SiteRequest struct {
	Location    LocationRequest `json:"location" binding:"required"`
	Description string          `json:"description"`
	Photos      []string        `json:"photos"`
}

func (r SiteRequest) ToSiteDetails() usecase.SiteDetails {
	return usecase.SiteDetails{
		Location: entities.Location{
			Country:    strings.TrimSpace(r.Location.Country),
			State:      strings.TrimSpace(r.Location.State),
			City:       strings.TrimSpace(r.Location.City),
			PostalCode: strings.TrimSpace(r.Location.PostalCode),
			Street:     strings.TrimSpace(r.Location.Street),
		},
		Description: strings.TrimSpace(r.Description),
		Photos: lo.Filter(lo.Map(r.Photos, func(p string, _ int) string { return strings.TrimSpace(p) }),
			func(p string, _ int) bool { return p != "" }),
	}
}

type TimeCoefficientRequest struct {
	Coefficient float64 `json:"coefficient" binding:"required,gt=0"`
}

type ToggleRequest struct {
	Group string `json:"group"`
}

type QuantityRequest struct {
	Quantity *float64 `json:"quantity" binding:"required"`
}

type PickRequest struct {
	ExternalID string `json:"external_id" binding:"required"`
}

// CustomerSuppliedRequest flags (or unflags, with supplied=false) a material
// the customer will source.
type CustomerSuppliedRequest struct {
	ExternalID string `json:"external_id" binding:"required"`
	Supplied   *bool  `json:"supplied"`
}

func (r CustomerSuppliedRequest) IsSupplied() bool {
	return r.Supplied == nil || *r.Supplied
}

// RecalculateRequest limits a recalculation to some services; empty means all
// selected services.
type RecalculateRequest struct {
	ServiceIDs []string `json:"service_ids"`
}

func (r RecalculateRequest) IDs() []entities.ServiceID {
	ids := lo.FilterMap(r.ServiceIDs, func(id string, _ int) (entities.ServiceID, bool) {
		id = strings.TrimSpace(id)
		return entities.ServiceID(id), id != ""
	})
	return lo.Uniq(ids)
}
