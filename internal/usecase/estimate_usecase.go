package usecase

import (
	"context"
	"errors"
	"time"

	"home_estimate/internal/domain/catalog"
	"home_estimate/internal/domain/entities"
	"home_estimate/internal/domain/estimate"
	"home_estimate/internal/domain/orderview"
	"home_estimate/internal/usecase/interfaces"
	"home_estimate/pkg/logger"
)

var (
	ErrEmptySelection      = errors.New("no services selected")
	ErrLocationRequired    = errors.New("a supported address is required")
	ErrEstimateNotComputed = errors.New("estimate not computed yet")
)

// EstimateResult is what the estimate step shows: the totals it stored on the
// session, the numbered view and the temporary estimate number.
type EstimateResult struct {
	Number         string
	TaxRatePercent float64
	Totals         entities.EstimateTotals
	View           entities.ViewModel
	Warnings       map[entities.WarningKind]string
}

// IEstimateUseCase exposes the estimate step.
//
// ComputeEstimate is the only writer of Session.Totals; checkout reads them
// back through GetEstimate so the two surfaces never compute independently.
type IEstimateUseCase interface {
	ComputeEstimate(ctx context.Context, sessionID string) (EstimateResult, error)
	GetEstimate(ctx context.Context, sessionID string) (entities.EstimateTotals, error)
	Export(ctx context.Context, sessionID string, format ExportFormat) (Document, error)
}

type EstimateUseCase struct {
	store    sessionStore
	index    *catalog.Index
	composer *orderview.Composer
	renderer interfaces.IExportRenderer
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.ISessionRepository, ix *catalog.Index, renderer interfaces.IExportRenderer) *EstimateUseCase {
	return &EstimateUseCase{
		store:    newSessionStore(repo),
		index:    ix,
		composer: orderview.NewComposer(ix),
		renderer: renderer,
	}
}

func (u *EstimateUseCase) ComputeEstimate(ctx context.Context, sessionID string) (EstimateResult, error) {
	const op = "estimate.compute"

	var totals entities.EstimateTotals
	s, err := u.store.mutate(ctx, sessionID, func(s *entities.Session) error {
		if len(s.Selection) == 0 {
			return ErrEmptySelection
		}
		if !s.Location.Priceable() {
			return ErrLocationRequired
		}
		totals = estimate.Aggregate(u.index, estimate.Input{
			Selection:       s.Selection,
			Results:         s.EffectiveResults(),
			TimeCoefficient: s.TimeCoefficient,
			TaxRatePercent:  estimate.TaxRatePercent(s.Location.State),
		})
		s.Totals = &totals
		return nil
	})
	if err != nil {
		return EstimateResult{}, err
	}

	number := estimateNumber(s, u.store.now)
	logger.With(logger.String("op", op), logger.String("session_id", s.ID)).Info(ctx, "estimate computed",
		logger.String("estimate_number", number),
		logger.Float64("final_total", totals.FinalTotal),
	)
	return EstimateResult{
		Number:         number,
		TaxRatePercent: totals.TaxRatePercent,
		Totals:         totals,
		View:           u.composer.FromLiveEstimate(s, totals, number),
		Warnings:       s.Warnings,
	}, nil
}

func (u *EstimateUseCase) GetEstimate(ctx context.Context, sessionID string) (entities.EstimateTotals, error) {
	s, err := u.store.load(ctx, sessionID)
	if err != nil {
		return entities.EstimateTotals{}, err
	}
	if s.Totals == nil {
		return entities.EstimateTotals{}, ErrEstimateNotComputed
	}
	return *s.Totals, nil
}

// Export recomputes so that the printed outline and totals always match the
// current selection.
func (u *EstimateUseCase) Export(ctx context.Context, sessionID string, format ExportFormat) (Document, error) {
	res, err := u.ComputeEstimate(ctx, sessionID)
	if err != nil {
		return Document{}, err
	}
	return render(u.renderer, res.View, format)
}

func estimateNumber(s entities.Session, now func() time.Time) string {
	region := s.Location.State
	if region == "" {
		region = s.Location.City
	}
	return estimate.EstimateNumber(region, s.Location.PostalCode, now())
}
