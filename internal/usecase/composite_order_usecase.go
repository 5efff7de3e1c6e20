package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"home_estimate/internal/domain/catalog"
	"home_estimate/internal/domain/entities"
	"home_estimate/internal/domain/estimate"
	"home_estimate/internal/domain/orderview"
	"home_estimate/internal/usecase/interfaces"
	"home_estimate/pkg/logger"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderCode   = errors.New("invalid order code")
	ErrInvalidOrderUpdate = errors.New("invalid order update")
	ErrUnpricedServices   = errors.New("some selected services have no price yet")
)

const (
	orderCodePrefix = "HE-"
	orderCodeLength = 10
)

// ICompositeOrderUseCase exposes persisted orders: confirming a live estimate,
// reading an order back through the view composer and updating it.
type ICompositeOrderUseCase interface {
	ConfirmEstimate(ctx context.Context, sessionID string) (entities.CompositeOrder, error)
	GetOrder(ctx context.Context, code string) (entities.CompositeOrder, error)
	GetOrderView(ctx context.Context, code string) (entities.ViewModel, error)
	UpdateOrder(ctx context.Context, code string, upd entities.CompositeOrderUpdate) (entities.CompositeOrder, error)
	Export(ctx context.Context, code string, format ExportFormat) (Document, error)
}

type CompositeOrderUseCase struct {
	repo      interfaces.ICompositeOrderRepository
	store     sessionStore
	estimates IEstimateUseCase
	composer  *orderview.Composer
	renderer  interfaces.IExportRenderer
}

var _ ICompositeOrderUseCase = (*CompositeOrderUseCase)(nil)

func NewCompositeOrderUseCase(
	repo interfaces.ICompositeOrderRepository,
	sessions interfaces.ISessionRepository,
	ix *catalog.Index,
	estimates IEstimateUseCase,
	renderer interfaces.IExportRenderer,
) *CompositeOrderUseCase {
	return &CompositeOrderUseCase{
		repo:      repo,
		store:     newSessionStore(sessions),
		estimates: estimates,
		composer:  orderview.NewComposer(ix),
		renderer:  renderer,
	}
}

// ConfirmEstimate freezes the live estimate into a composite order.
//
// Works keep their pre-coefficient totals; the time adjustment lives in the
// order subtotal and is derived back when the order is rendered.
func (u *CompositeOrderUseCase) ConfirmEstimate(ctx context.Context, sessionID string) (entities.CompositeOrder, error) {
	const op = "order.confirm"

	res, err := u.estimates.ComputeEstimate(ctx, sessionID)
	if err != nil {
		return entities.CompositeOrder{}, err
	}
	s, err := u.store.load(ctx, sessionID)
	if err != nil {
		return entities.CompositeOrder{}, err
	}

	var works []entities.OrderWork
	for _, sec := range res.View.Sections {
		for _, cat := range sec.Categories {
			for _, item := range cat.Items {
				if !item.Priced {
					return entities.CompositeOrder{}, ErrUnpricedServices
				}
				works = append(works, toOrderWork(item))
			}
		}
	}

	now := u.store.now()
	t := res.Totals
	order := entities.CompositeOrder{
		Code:                  newOrderCode(),
		Subtotal:              estimate.Sum(t.FinalLabor, t.MaterialsSubtotal),
		TaxAmount:             t.TaxAmount,
		ServiceFeeOnLabor:     t.ServiceFeeOnLabor,
		ServiceFeeOnMaterials: t.ServiceFeeOnMaterials,
		Common: entities.OrderCommon{
			Address:         formatAddress(s.Location),
			Location:        s.Location,
			Date:            now,
			Photos:          s.Photos,
			Description:     s.Description,
			DateCoefficient: t.TimeCoefficient,
		},
		Works:     works,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.repo.Create(ctx, order)
	if err != nil {
		return entities.CompositeOrder{}, fmt.Errorf("%s: %w", op, err)
	}
	if _, err := u.store.mutate(ctx, sessionID, func(s *entities.Session) error {
		s.OrderCode = created.Code
		return nil
	}); err != nil {
		logger.With(logger.String("op", op), logger.String("session_id", sessionID)).
			Warn(ctx, "order created but not linked to session", logger.String("order_code", created.Code), logger.ErrorF(err))
	}

	logger.With(logger.String("op", op), logger.String("session_id", sessionID)).Info(ctx, "estimate confirmed",
		logger.String("order_code", created.Code),
		logger.String("estimate_number", res.Number),
		logger.Float64("grand_total", created.GrandTotal()),
	)
	return created, nil
}

func toOrderWork(item entities.ViewLineItem) entities.OrderWork {
	return entities.OrderWork{
		Code:              item.ServiceID.Dotted(),
		Name:              item.Label,
		Quantity:          item.Quantity,
		UnitOfMeasurement: item.Unit,
		Total:             item.LineTotal,
		Materials: lo.Map(item.MaterialLines, func(m entities.MaterialLine, _ int) entities.OrderMaterial {
			return entities.OrderMaterial{
				Name:        m.Name,
				ExternalID:  m.ExternalID,
				CostPerUnit: m.UnitCost,
				Quantity:    m.Quantity,
				Cost:        m.LineCost,
			}
		}),
	}
}

func newOrderCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return orderCodePrefix + strings.ToUpper(raw[:orderCodeLength])
}

func formatAddress(l entities.Location) string {
	parts := lo.Filter([]string{l.Street, l.City, strings.TrimSpace(l.State + " " + l.PostalCode)}, func(p string, _ int) bool {
		return strings.TrimSpace(p) != ""
	})
	return strings.Join(parts, ", ")
}

func (u *CompositeOrderUseCase) GetOrder(ctx context.Context, code string) (entities.CompositeOrder, error) {
	const op = "order.get"

	code = strings.TrimSpace(code)
	if code == "" {
		return entities.CompositeOrder{}, ErrInvalidOrderCode
	}
	o, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return entities.CompositeOrder{}, fmt.Errorf("%s: %w", op, err)
	}
	if o.Code == "" {
		return entities.CompositeOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *CompositeOrderUseCase) GetOrderView(ctx context.Context, code string) (entities.ViewModel, error) {
	o, err := u.GetOrder(ctx, code)
	if err != nil {
		return entities.ViewModel{}, err
	}
	return u.composer.FromPersistedOrder(o), nil
}

// UpdateOrder applies the non-nil parts of upd to an existing order. A
// rejected update wraps ErrInvalidOrderUpdate with a readable message.
func (u *CompositeOrderUseCase) UpdateOrder(ctx context.Context, code string, upd entities.CompositeOrderUpdate) (entities.CompositeOrder, error) {
	const op = "order.update"

	o, err := u.GetOrder(ctx, code)
	if err != nil {
		return entities.CompositeOrder{}, err
	}

	if upd.Subtotal != nil {
		o.Subtotal = *upd.Subtotal
	}
	if upd.TaxAmount != nil {
		o.TaxAmount = *upd.TaxAmount
	}
	if upd.ServiceFeeOnLabor != nil {
		o.ServiceFeeOnLabor = *upd.ServiceFeeOnLabor
	}
	if upd.ServiceFeeOnMaterials != nil {
		o.ServiceFeeOnMaterials = *upd.ServiceFeeOnMaterials
	}
	if upd.Common != nil {
		o.Common = *upd.Common
	}
	if upd.Works != nil {
		o.Works = upd.Works
	}
	if err := validateOrder(o); err != nil {
		return entities.CompositeOrder{}, err
	}
	o.UpdatedAt = u.store.now()

	updated, err := u.repo.Update(ctx, o)
	if err != nil {
		return entities.CompositeOrder{}, fmt.Errorf("%s: %w", op, err)
	}
	if updated.Code == "" {
		return entities.CompositeOrder{}, ErrOrderNotFound
	}
	return updated, nil
}

func validateOrder(o entities.CompositeOrder) error {
	amounts := map[string]float64{
		"subtotal":                 o.Subtotal,
		"tax_amount":               o.TaxAmount,
		"service_fee_on_labor":     o.ServiceFeeOnLabor,
		"service_fee_on_materials": o.ServiceFeeOnMaterials,
	}
	for _, name := range []string{"subtotal", "tax_amount", "service_fee_on_labor", "service_fee_on_materials"} {
		if amounts[name] < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidOrderUpdate, name)
		}
	}
	if o.Common.DateCoefficient < 0 {
		return fmt.Errorf("%w: common.date_coefficient must not be negative", ErrInvalidOrderUpdate)
	}
	for i, w := range o.Works {
		if strings.TrimSpace(w.Code) == "" {
			return fmt.Errorf("%w: works[%d].code is required", ErrInvalidOrderUpdate, i)
		}
		if w.Total < 0 {
			return fmt.Errorf("%w: works[%d].total must not be negative", ErrInvalidOrderUpdate, i)
		}
		costs := make([]float64, 0, len(w.Materials))
		for j, m := range w.Materials {
			if m.Cost < 0 || m.Quantity < 0 || m.CostPerUnit < 0 {
				return fmt.Errorf("%w: works[%d].materials[%d] has a negative amount", ErrInvalidOrderUpdate, i, j)
			}
			costs = append(costs, m.Cost)
		}
		// labor is back-derived as total minus materials and must not go negative
		if estimate.Sum(costs...) > estimate.RoundCents(w.Total) {
			return fmt.Errorf("%w: works[%d] materials exceed total", ErrInvalidOrderUpdate, i)
		}
	}
	return nil
}

func (u *CompositeOrderUseCase) Export(ctx context.Context, code string, format ExportFormat) (Document, error) {
	view, err := u.GetOrderView(ctx, code)
	if err != nil {
		return Document{}, err
	}
	return render(u.renderer, view, format)
}
