package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"home_estimate/internal/domain/catalog"
	"home_estimate/internal/domain/entities"
	"home_estimate/internal/usecase/interfaces"
	"home_estimate/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound        = errors.New("session not found")
	ErrInvalidSessionID       = errors.New("invalid session id")
	ErrSessionConflict        = errors.New("session was modified concurrently")
	ErrUnknownService         = errors.New("unknown service")
	ErrServiceNotSelected     = errors.New("service not selected")
	ErrInvalidQuantity        = errors.New("invalid quantity")
	ErrInvalidTimeCoefficient = errors.New("invalid time coefficient")
)

// SiteDetails is the address step of the flow.
type SiteDetails struct {
	Location    entities.Location
	Description string
	Photos      []string
}

// ISessionUseCase exposes the session lifecycle and the selection state.
//
// Every mutation is persisted before returning, so the next step of the flow
// always reads what the previous one wrote.
type ISessionUseCase interface {
	Create(ctx context.Context) (entities.Session, error)
	Get(ctx context.Context, id string) (entities.Session, error)
	UpdateSite(ctx context.Context, id string, in SiteDetails) (entities.Session, error)
	SetTimeCoefficient(ctx context.Context, id string, coefficient float64) (entities.Session, error)
	Toggle(ctx context.Context, id string, serviceID entities.ServiceID, group string) (entities.Session, error)
	SetQuantity(ctx context.Context, id string, serviceID entities.ServiceID, quantity float64) (entities.Session, error)
	Clear(ctx context.Context, id string) (entities.Session, error)
}

type SessionUseCase struct {
	repo    interfaces.ISessionRepository
	store   sessionStore
	index   *catalog.Index
	pricing IPricingUseCase
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(repo interfaces.ISessionRepository, ix *catalog.Index, pricing IPricingUseCase) *SessionUseCase {
	return &SessionUseCase{repo: repo, store: newSessionStore(repo), index: ix, pricing: pricing}
}

func (u *SessionUseCase) Create(ctx context.Context) (entities.Session, error) {
	const op = "session.create"

	s := entities.NewSession(uuid.NewString(), u.store.now())
	s.SetWarning(entities.WarningLocation, locationWarningText)
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return entities.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	logger.With(logger.String("op", op)).Info(ctx, "session created", logger.String("session_id", created.ID))
	created.EnsureMaps()
	return created, nil
}

func (u *SessionUseCase) Get(ctx context.Context, id string) (entities.Session, error) {
	return u.store.load(ctx, id)
}

// UpdateSite stores the address step. An unsupported location is a warning,
// not an error; a supported one reprices everything already selected.
func (u *SessionUseCase) UpdateSite(ctx context.Context, id string, in SiteDetails) (entities.Session, error) {
	loc := entities.Location{
		Country:    strings.ToUpper(strings.TrimSpace(in.Location.Country)),
		State:      strings.ToUpper(strings.TrimSpace(in.Location.State)),
		City:       strings.TrimSpace(in.Location.City),
		PostalCode: strings.TrimSpace(in.Location.PostalCode),
		Street:     strings.TrimSpace(in.Location.Street),
	}

	s, err := u.store.mutate(ctx, id, func(s *entities.Session) error {
		s.Location = loc
		s.Description = strings.TrimSpace(in.Description)
		s.Photos = append([]string(nil), in.Photos...)
		if loc.Priceable() {
			s.ClearWarning(entities.WarningLocation)
		} else {
			s.SetWarning(entities.WarningLocation, locationWarningText)
		}
		return nil
	})
	if err != nil {
		return entities.Session{}, err
	}
	if !loc.Priceable() || len(s.Selection) == 0 {
		return s, nil
	}
	return u.pricing.Recalculate(ctx, s.ID)
}

// SetTimeCoefficient accepts any positive multiplier. Only labor is affected,
// at aggregation time, so nothing is repriced.
func (u *SessionUseCase) SetTimeCoefficient(ctx context.Context, id string, coefficient float64) (entities.Session, error) {
	if coefficient <= 0 || math.IsNaN(coefficient) || math.IsInf(coefficient, 0) {
		return entities.Session{}, ErrInvalidTimeCoefficient
	}
	return u.store.mutate(ctx, id, func(s *entities.Session) error {
		s.TimeCoefficient = coefficient
		return nil
	})
}

// Toggle adds a service at its minimum quantity, or removes it together with
// its finishing selection and cached pricing.
func (u *SessionUseCase) Toggle(ctx context.Context, id string, serviceID entities.ServiceID, group string) (entities.Session, error) {
	svc, ok := u.index.Service(serviceID)
	if !ok {
		return entities.Session{}, ErrUnknownService
	}

	var added bool
	s, err := u.store.mutate(ctx, id, func(s *entities.Session) error {
		added = !s.IsSelected(serviceID)
		if !added {
			s.Remove(serviceID)
			return nil
		}
		s.Selection[serviceID] = entities.SelectionEntry{
			ServiceID: serviceID,
			Quantity:  svc.MinQuantity,
			Group:     strings.TrimSpace(group),
		}
		return nil
	})
	if err != nil || !added {
		return s, err
	}
	return u.pricing.Recalculate(ctx, id, serviceID)
}

// SetQuantity clamps to the service bounds. A clamped value is kept and
// reported as a warning naming the service.
func (u *SessionUseCase) SetQuantity(ctx context.Context, id string, serviceID entities.ServiceID, quantity float64) (entities.Session, error) {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return entities.Session{}, ErrInvalidQuantity
	}
	svc, ok := u.index.Service(serviceID)
	if !ok {
		return entities.Session{}, ErrUnknownService
	}
	clamped, adjusted := svc.Clamp(quantity)

	_, err := u.store.mutate(ctx, id, func(s *entities.Session) error {
		entry, ok := s.Selection[serviceID]
		if !ok {
			return ErrServiceNotSelected
		}
		entry.Quantity = clamped
		s.Selection[serviceID] = entry
		if adjusted {
			s.SetWarning(entities.WarningQuantity, quantityWarning(svc, quantity, clamped))
		} else {
			s.ClearWarning(entities.WarningQuantity)
		}
		return nil
	})
	if err != nil {
		return entities.Session{}, err
	}
	return u.pricing.Recalculate(ctx, id, serviceID)
}

func (u *SessionUseCase) Clear(ctx context.Context, id string) (entities.Session, error) {
	return u.store.mutate(ctx, id, func(s *entities.Session) error {
		s.Selection = map[entities.ServiceID]entities.SelectionEntry{}
		s.Finishing = map[entities.ServiceID]entities.FinishingSelection{}
		s.Calculations = map[entities.ServiceID]entities.CalculationEntry{}
		s.Totals = nil
		s.ClearWarning(entities.WarningQuantity)
		s.ClearWarning(entities.WarningPricing)
		return nil
	})
}

func quantityWarning(svc entities.Service, requested, applied float64) string {
	bound := "minimum"
	if requested > applied {
		bound = "maximum"
	}
	return fmt.Sprintf("%s: quantity %s is outside the allowed range, set to the %s of %s %s.",
		svc.Title, formatQuantity(requested), bound, formatQuantity(applied), svc.UnitOfMeasurement)
}

func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
