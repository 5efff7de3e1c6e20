package usecase

import (
	"context"
	"errors"
	"fmt"

	"home_estimate/internal/domain/catalog"
	"home_estimate/internal/domain/entities"
	"home_estimate/internal/usecase/interfaces"
	"home_estimate/pkg/logger"
)

var (
	ErrUnknownFinishingMaterial = errors.New("unknown finishing material")
	ErrFinishingUnavailable     = errors.New("finishing materials unavailable")
)

// IFinishingUseCase manages the finishing material picks of selected services.
type IFinishingUseCase interface {
	EnsureLoaded(ctx context.Context, sessionID string, serviceID entities.ServiceID) (entities.FinishingSelection, error)
	CurrentSelection(ctx context.Context, sessionID string, serviceID entities.ServiceID) ([]string, error)
	Pick(ctx context.Context, sessionID string, serviceID entities.ServiceID, externalID string) (entities.Session, error)
	MarkCustomerSupplied(ctx context.Context, sessionID string, serviceID entities.ServiceID, externalID string, supplied bool) (entities.Session, error)
}

type FinishingUseCase struct {
	store    sessionStore
	resolver finishingResolver
	pricing  IPricingUseCase
}

var _ IFinishingUseCase = (*FinishingUseCase)(nil)

func NewFinishingUseCase(repo interfaces.ISessionRepository, ix *catalog.Index, gateway interfaces.IPricingGateway, pricing IPricingUseCase) *FinishingUseCase {
	return &FinishingUseCase{
		store:    newSessionStore(repo),
		resolver: finishingResolver{index: ix, gateway: gateway},
		pricing:  pricing,
	}
}

// finishingResolver fetches the candidate set of a service and picks the
// defaults. It never touches the session.
type finishingResolver struct {
	index   *catalog.Index
	gateway interfaces.IPricingGateway
}

func (r finishingResolver) resolve(ctx context.Context, id entities.ServiceID) (entities.FinishingSelection, error) {
	svc, ok := r.index.Service(id)
	if !ok || !svc.HasFinishingMaterials {
		return entities.NewFinishingSelection(map[string][]entities.FinishingMaterialOption{}), nil
	}
	groups, err := r.gateway.ResolveFinishingMaterials(ctx, id)
	if err != nil {
		return entities.FinishingSelection{}, err
	}
	if groups == nil {
		groups = map[string][]entities.FinishingMaterialOption{}
	}
	return entities.NewFinishingSelection(groups), nil
}

// EnsureLoaded fetches the candidates of a selected service on first need.
// An existing selection is returned untouched.
func (u *FinishingUseCase) EnsureLoaded(ctx context.Context, sessionID string, serviceID entities.ServiceID) (entities.FinishingSelection, error) {
	const op = "finishing.ensure_loaded"

	s, err := u.store.load(ctx, sessionID)
	if err != nil {
		return entities.FinishingSelection{}, err
	}
	if !s.IsSelected(serviceID) {
		return entities.FinishingSelection{}, ErrServiceNotSelected
	}
	if fs, ok := s.Finishing[serviceID]; ok {
		return fs, nil
	}

	resolved, err := u.resolver.resolve(ctx, serviceID)
	if err != nil {
		logger.With(logger.String("op", op), logger.String("session_id", sessionID)).
			Error(ctx, "finishing materials fetch failed", logger.String("service_id", string(serviceID)), logger.ErrorF(err))
		return entities.FinishingSelection{}, fmt.Errorf("%s: %w: %w", op, ErrFinishingUnavailable, err)
	}

	saved, err := u.store.mutate(ctx, sessionID, func(s *entities.Session) error {
		if !s.IsSelected(serviceID) {
			return ErrServiceNotSelected
		}
		if _, ok := s.Finishing[serviceID]; !ok {
			s.Finishing[serviceID] = resolved
		}
		return nil
	})
	if err != nil {
		return entities.FinishingSelection{}, err
	}
	return saved.Finishing[serviceID], nil
}

func (u *FinishingUseCase) CurrentSelection(ctx context.Context, sessionID string, serviceID entities.ServiceID) ([]string, error) {
	fs, err := u.EnsureLoaded(ctx, sessionID, serviceID)
	if err != nil {
		return nil, err
	}
	return fs.Current(), nil
}

// Pick replaces the choice of one sub-group and reprices the service.
func (u *FinishingUseCase) Pick(ctx context.Context, sessionID string, serviceID entities.ServiceID, externalID string) (entities.Session, error) {
	if _, err := u.EnsureLoaded(ctx, sessionID, serviceID); err != nil {
		return entities.Session{}, err
	}
	if _, err := u.store.mutate(ctx, sessionID, func(s *entities.Session) error {
		fs := s.Finishing[serviceID]
		if err := fs.Pick(externalID); err != nil {
			return mapFinishingError(err)
		}
		s.Finishing[serviceID] = fs
		return nil
	}); err != nil {
		return entities.Session{}, err
	}
	return u.pricing.Recalculate(ctx, sessionID, serviceID)
}

// MarkCustomerSupplied flags a material as brought by the customer. The
// effective result is a projection, so no new pricing call is made.
func (u *FinishingUseCase) MarkCustomerSupplied(ctx context.Context, sessionID string, serviceID entities.ServiceID, externalID string, supplied bool) (entities.Session, error) {
	if _, err := u.EnsureLoaded(ctx, sessionID, serviceID); err != nil {
		return entities.Session{}, err
	}
	return u.store.mutate(ctx, sessionID, func(s *entities.Session) error {
		fs := s.Finishing[serviceID]
		err := fs.MarkCustomerSupplied(externalID, supplied)
		if errors.Is(err, entities.ErrUnknownFinishingMaterial) && pricedMaterial(s.Calculations[serviceID], externalID) {
			err = nil
			setCustomerSupplied(&fs, externalID, supplied)
		}
		if err != nil {
			return mapFinishingError(err)
		}
		s.Finishing[serviceID] = fs
		return nil
	})
}

// pricedMaterial reports whether the last pricing result lists externalID,
// which covers base materials that are not finishing candidates.
func pricedMaterial(entry entities.CalculationEntry, externalID string) bool {
	if entry.Fetched == nil || externalID == "" {
		return false
	}
	for _, line := range entry.Fetched.MaterialLines {
		if line.ExternalID == externalID {
			return true
		}
	}
	return false
}

func setCustomerSupplied(fs *entities.FinishingSelection, externalID string, supplied bool) {
	if fs.CustomerSupplied == nil {
		fs.CustomerSupplied = map[string]bool{}
	}
	if supplied {
		fs.CustomerSupplied[externalID] = true
		return
	}
	delete(fs.CustomerSupplied, externalID)
}

func mapFinishingError(err error) error {
	if errors.Is(err, entities.ErrUnknownFinishingMaterial) {
		return ErrUnknownFinishingMaterial
	}
	return err
}
