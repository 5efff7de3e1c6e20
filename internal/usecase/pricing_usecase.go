package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"home_estimate/internal/domain/catalog"
	"home_estimate/internal/domain/entities"
	"home_estimate/internal/usecase/interfaces"
	"home_estimate/pkg/logger"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const (
	locationWarningText = "Pricing needs a US address with a 5-digit ZIP code."
	pricingWarningText  = "Could not price: %s. Previous prices are kept."
)

var ErrServiceNotPriced = errors.New("service has no pricing result")

// IPricingUseCase runs the resolve-then-price pipeline for selected services
// and owns the local "remove finishing materials" override.
type IPricingUseCase interface {
	Recalculate(ctx context.Context, sessionID string, serviceIDs ...entities.ServiceID) (entities.Session, error)
	RemoveFinishingMaterials(ctx context.Context, sessionID string, serviceID entities.ServiceID) (entities.Session, error)
	RestoreFinishingMaterials(ctx context.Context, sessionID string, serviceID entities.ServiceID) (entities.Session, error)
}

type PricingUseCase struct {
	store       sessionStore
	index       *catalog.Index
	gateway     interfaces.IPricingGateway
	resolver    finishingResolver
	concurrency int
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(repo interfaces.ISessionRepository, ix *catalog.Index, gateway interfaces.IPricingGateway, concurrency int) *PricingUseCase {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &PricingUseCase{
		store:       newSessionStore(repo),
		index:       ix,
		gateway:     gateway,
		resolver:    finishingResolver{index: ix, gateway: gateway},
		concurrency: concurrency,
	}
}

type pricingJob struct {
	id        entities.ServiceID
	token     string
	quantity  float64
	finishing entities.FinishingSelection
	loaded    bool
}

type pricingOutcome struct {
	job       pricingJob
	finishing *entities.FinishingSelection
	result    *entities.CalculationResult
	err       error
}

// Recalculate prices the given services, or every selected service when none
// are given.
//
// Each call issues a fresh token per service; a result is applied only if the
// service is still selected and no newer call has replaced the token.
func (u *PricingUseCase) Recalculate(ctx context.Context, sessionID string, serviceIDs ...entities.ServiceID) (entities.Session, error) {
	const op = "pricing.recalculate"
	log := logger.With(logger.String("op", op), logger.String("session_id", sessionID))

	current, err := u.store.load(ctx, sessionID)
	if err != nil {
		return entities.Session{}, err
	}
	targets := serviceIDs
	if len(targets) == 0 {
		targets = lo.Keys(current.Selection)
	}
	targets = lo.Filter(lo.Uniq(targets), func(id entities.ServiceID, _ int) bool {
		return current.IsSelected(id)
	})
	if len(targets) == 0 {
		return current, nil
	}

	if !current.Location.Priceable() {
		log.Warn(ctx, "pricing skipped, location not supported",
			logger.String("country", current.Location.Country),
			logger.String("postal_code", current.Location.PostalCode),
		)
		return u.store.mutate(ctx, sessionID, func(s *entities.Session) error {
			s.SetWarning(entities.WarningLocation, locationWarningText)
			return nil
		})
	}

	var jobs []pricingJob
	issued, err := u.store.mutate(ctx, sessionID, func(s *entities.Session) error {
		jobs = jobs[:0]
		s.ClearWarning(entities.WarningLocation)
		for _, id := range targets {
			sel, ok := s.Selection[id]
			if !ok {
				continue
			}
			entry := s.Calculations[id]
			entry.Token = uuid.NewString()
			s.Calculations[id] = entry

			fs, loaded := s.Finishing[id]
			jobs = append(jobs, pricingJob{id: id, token: entry.Token, quantity: sel.Quantity, finishing: fs, loaded: loaded})
		}
		return nil
	})
	if err != nil {
		return entities.Session{}, err
	}
	if len(jobs) == 0 {
		return issued, nil
	}

	outcomes := make([]pricingOutcome, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.concurrency)
	for i, job := range jobs {
		g.Go(func() error {
			outcomes[i] = u.run(gctx, issued.Location.PostalCode, job)
			return nil
		})
	}
	_ = g.Wait()

	return u.store.mutate(ctx, sessionID, func(s *entities.Session) error {
		var failed []string
		for _, out := range outcomes {
			id := out.job.id
			entry, ok := s.Calculations[id]
			if !s.IsSelected(id) || !ok || entry.Token != out.job.token {
				log.Debug(ctx, "discarding stale pricing result", logger.String("service_id", string(id)))
				continue
			}
			if _, has := s.Finishing[id]; !has && out.finishing != nil {
				s.Finishing[id] = *out.finishing
			}
			if out.err != nil {
				log.Error(ctx, "pricing failed, keeping previous result",
					logger.String("service_id", string(id)),
					logger.ErrorF(out.err),
				)
				failed = append(failed, u.index.TitleOf(id))
				continue
			}
			entry.Fetched = out.result
			entry.PricedAt = u.store.now()
			s.Calculations[id] = entry
		}

		if len(failed) > 0 {
			s.SetWarning(entities.WarningPricing, fmt.Sprintf(pricingWarningText, strings.Join(failed, ", ")))
		} else {
			s.ClearWarning(entities.WarningPricing)
		}
		return nil
	})
}

// run is the two-stage task of one service: the price stage only starts once
// the finishing candidates are resolved, since the request carries the picks.
func (u *PricingUseCase) run(ctx context.Context, zip string, job pricingJob) pricingOutcome {
	out := pricingOutcome{job: job}

	fs := job.finishing
	if !job.loaded {
		resolved, err := u.resolver.resolve(ctx, job.id)
		if err != nil {
			out.err = fmt.Errorf("resolve finishing materials: %w", err)
			return out
		}
		fs = resolved
		out.finishing = &resolved
	}

	svc, _ := u.index.Service(job.id)
	result, err := u.gateway.Calculate(ctx, entities.PricingRequest{
		ServiceID:          job.id,
		ZipCode:            strings.TrimSpace(zip),
		UnitOfMeasurement:  svc.UnitOfMeasurement,
		Quantity:           job.quantity,
		FinishingMaterials: fs.Current(),
	})
	if err != nil {
		out.err = err
		return out
	}
	if result.MaterialLines == nil {
		result.MaterialLines = []entities.MaterialLine{}
	}
	out.result = &result
	return out
}

// RemoveFinishingMaterials zeroes the materials of a priced service without a
// remote call. The flag survives later recalculations.
func (u *PricingUseCase) RemoveFinishingMaterials(ctx context.Context, sessionID string, serviceID entities.ServiceID) (entities.Session, error) {
	return u.setMaterialsRemoved(ctx, sessionID, serviceID, true)
}

func (u *PricingUseCase) RestoreFinishingMaterials(ctx context.Context, sessionID string, serviceID entities.ServiceID) (entities.Session, error) {
	return u.setMaterialsRemoved(ctx, sessionID, serviceID, false)
}

func (u *PricingUseCase) setMaterialsRemoved(ctx context.Context, sessionID string, serviceID entities.ServiceID, removed bool) (entities.Session, error) {
	return u.store.mutate(ctx, sessionID, func(s *entities.Session) error {
		if !s.IsSelected(serviceID) {
			return ErrServiceNotSelected
		}
		entry, ok := s.Calculations[serviceID]
		if !ok || entry.Fetched == nil {
			return ErrServiceNotPriced
		}
		entry.MaterialsRemoved = removed
		s.Calculations[serviceID] = entry
		return nil
	})
}
