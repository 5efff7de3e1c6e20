package entities

import (
	"strings"
	"time"
)

type WarningKind string

const (
	WarningQuantity WarningKind = "quantity"
	WarningLocation WarningKind = "location"
	WarningPricing  WarningKind = "pricing"
)

type SelectionEntry struct {
	ServiceID ServiceID `json:"service_id"`
	Quantity  float64   `json:"quantity"`
	// Group is the optional sub-group the entry was chosen in (room, indoor, outdoor).
	Group string `json:"group,omitempty"`
}

type Location struct {
	Country    string `json:"country"`
	State      string `json:"state"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Street     string `json:"street,omitempty"`
}

// SupportedCountry is the only country the pricing service quotes.
const SupportedCountry = "US"

// Priceable reports whether the pricing service can quote this location: a
// supported country and a five digit numeric postal code.
func (l Location) Priceable() bool {
	if !strings.EqualFold(strings.TrimSpace(l.Country), SupportedCountry) {
		return false
	}
	zip := strings.TrimSpace(l.PostalCode)
	if len(zip) != 5 {
		return false
	}
	for _, r := range zip {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Session is the state shared by every step of the estimate flow
// (room selection, service selection, estimate, checkout).
//
// Storage model (DynamoDB):
//   - PK: id
//   - version guards every write
type Session struct {
	ID              string                           `json:"id"`
	Version         int64                            `json:"version"`
	Location        Location                         `json:"location"`
	Description     string                           `json:"description,omitempty"`
	Photos          []string                         `json:"photos,omitempty"`
	Selection       map[ServiceID]SelectionEntry     `json:"selection"`
	Finishing       map[ServiceID]FinishingSelection `json:"finishing"`
	Calculations    map[ServiceID]CalculationEntry   `json:"calculations"`
	TimeCoefficient float64                          `json:"time_coefficient"`
	Totals          *EstimateTotals                  `json:"totals,omitempty"`
	Warnings        map[WarningKind]string           `json:"warnings,omitempty"`
	OrderCode       string                           `json:"order_code,omitempty"`
	CreatedAt       time.Time                        `json:"created_at"`
	UpdatedAt       time.Time                        `json:"updated_at"`
}

func NewSession(id string, now time.Time) Session {
	s := Session{ID: id, TimeCoefficient: 1, CreatedAt: now, UpdatedAt: now}
	s.EnsureMaps()
	return s
}

// EnsureMaps initialises nil maps left by decoding an older snapshot.
func (s *Session) EnsureMaps() {
	if s.Selection == nil {
		s.Selection = map[ServiceID]SelectionEntry{}
	}
	if s.Finishing == nil {
		s.Finishing = map[ServiceID]FinishingSelection{}
	}
	if s.Calculations == nil {
		s.Calculations = map[ServiceID]CalculationEntry{}
	}
	if s.Warnings == nil {
		s.Warnings = map[WarningKind]string{}
	}
	if s.TimeCoefficient <= 0 {
		s.TimeCoefficient = 1
	}
}

func (s Session) IsSelected(id ServiceID) bool {
	_, ok := s.Selection[id]
	return ok
}

func (s *Session) SetWarning(kind WarningKind, text string) {
	s.EnsureMaps()
	s.Warnings[kind] = text
}

func (s *Session) ClearWarning(kind WarningKind) {
	delete(s.Warnings, kind)
}

// Remove drops a selection entry together with its finishing selection and
// cached calculation.
func (s *Session) Remove(id ServiceID) {
	delete(s.Selection, id)
	delete(s.Finishing, id)
	delete(s.Calculations, id)
}

// EffectiveResults projects every selected service with a known result.
func (s Session) EffectiveResults() map[ServiceID]CalculationResult {
	out := make(map[ServiceID]CalculationResult, len(s.Calculations))
	for id, entry := range s.Calculations {
		if !s.IsSelected(id) {
			continue
		}
		if r, ok := entry.Effective(s.Finishing[id].CustomerSupplied); ok {
			out[id] = r
		}
	}
	return out
}
