package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"home_estimate/internal/domain/entities"
	"home_estimate/internal/domain/estimate"
	"home_estimate/internal/usecase/interfaces"
	"home_estimate/pkg/logger"

	"github.com/samber/lo"
)

var (
	ErrBillingPaymentNotFound         = errors.New("billing payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrOrderAlreadyPaid               = errors.New("order already paid")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentOptions carries the checkout settings read from configuration.
type PaymentOptions struct {
	Mock            bool
	Sandbox         bool
	TestPayerEmail  string
	TestPayerUserID string
}

// IBillingPaymentUseCase charges a confirmed composite order.
//
// The amount is never taken from the request: it is the grand total of the
// stored order, the same figure the checkout view shows.
type IBillingPaymentUseCase interface {
	CreatePayment(ctx context.Context, orderCode string, mpPayload json.RawMessage) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByOrderCode(ctx context.Context, orderCode string) ([]entities.BillingPayment, error)
}

type BillingPaymentUseCase struct {
	repo      interfaces.IBillingPaymentRepository
	orderRepo interfaces.ICompositeOrderRepository
	gateway   interfaces.IPaymentGateway
	opts      PaymentOptions
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(repo interfaces.IBillingPaymentRepository, orderRepo interfaces.ICompositeOrderRepository, gateway interfaces.IPaymentGateway, opts PaymentOptions) *BillingPaymentUseCase {
	return &BillingPaymentUseCase{repo: repo, orderRepo: orderRepo, gateway: gateway, opts: opts}
}

func (u *BillingPaymentUseCase) CreatePayment(ctx context.Context, orderCode string, mpPayload json.RawMessage) (entities.BillingPayment, error) {
	const op = "payment.create"

	orderCode = strings.TrimSpace(orderCode)
	log := logger.With(logger.String("op", op), logger.String("order_code", orderCode))
	log.Debug(ctx, "create payment start", logger.Int("payload_len", len(mpPayload)))

	if orderCode == "" {
		return entities.BillingPayment{}, ErrInvalidOrderCode
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.Mock {
			log.Warn(ctx, "invalid payload")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !u.opts.Mock {
		return entities.BillingPayment{}, ErrPaymentGatewayNotConfigured
	}
	if u.orderRepo == nil {
		return entities.BillingPayment{}, errors.New("order repository not configured")
	}

	order, err := u.orderRepo.GetByCode(ctx, orderCode)
	if err != nil {
		log.Error(ctx, "failed loading order", logger.ErrorF(err))
		return entities.BillingPayment{}, fmt.Errorf("%s: %w", op, err)
	}
	if order.Code == "" {
		return entities.BillingPayment{}, ErrOrderNotFound
	}

	existing, err := u.repo.ListByOrderCode(ctx, orderCode)
	if err != nil {
		return entities.BillingPayment{}, fmt.Errorf("%s: %w", op, err)
	}
	if lo.ContainsBy(existing, func(p entities.BillingPayment) bool { return p.Status == entities.PaymentStatusApproved }) {
		return entities.BillingPayment{}, ErrOrderAlreadyPaid
	}

	amount := estimate.RoundCents(order.GrandTotal())
	log.Info(ctx, "order loaded", logger.Float64("amount", amount))

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		reqMap = map[string]any{}
	}
	if !u.opts.Mock {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Warn(ctx, "missing payment_method_id")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Warn(ctx, "missing or invalid payer")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
	}

	// Mercado Pago uses external_reference to reconcile events with the order.
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = orderCode
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Order %s", orderCode)
	}
	reqMap["transaction_amount"] = amount

	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.BillingPayment{}, fmt.Errorf("%s: %w", op, err)
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if u.opts.Mock {
		log.Info(ctx, "mock mode enabled, skipping external payment gateway")
		providerPaymentID, providerStatus, providerResp, err = mockPayment(reqMap)
		if err != nil {
			return entities.BillingPayment{}, fmt.Errorf("%s: %w", op, err)
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Error(ctx, "payment gateway failed", logger.ErrorF(err))
			return entities.BillingPayment{}, mapGatewayError(err)
		}
	}
	log.Info(ctx, "payment gateway success",
		logger.String("provider_payment_id", providerPaymentID),
		logger.String("provider_status", providerStatus),
	)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn(ctx, "provider response is not json", logger.ErrorF(err))
	}

	p := entities.BillingPayment{
		ID:           providerPaymentID,
		OrderCode:    orderCode,
		Amount:       amount,
		Date:         time.Now().UTC(),
		Status:       paymentStatusOf(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error(ctx, "payment repository create failed", logger.String("payment_id", p.ID), logger.ErrorF(err))
		return entities.BillingPayment{}, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

func mockPayment(req map[string]any) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)

	resp := make(map[string]any, len(req)+5)
	for k, v := range req {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func paymentStatusOf(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func mapGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *BillingPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox either payer.id or payer.email may be used; fill email only
	// when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
			payer["email"] = email
		} else if u.opts.Sandbox {
			payer["email"] = "test_user_us@testuser.com"
		}
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email,
// which is what the sandbox expects.
func (u *BillingPaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	if !u.opts.Sandbox {
		return
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}

	userID := strings.TrimSpace(u.opts.TestPayerUserID)
	email := strings.TrimSpace(u.opts.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}

	payer["email"] = email
	delete(payer, "id")
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

func (u *BillingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	return p, nil
}

func (u *BillingPaymentUseCase) ListByOrderCode(ctx context.Context, orderCode string) ([]entities.BillingPayment, error) {
	orderCode = strings.TrimSpace(orderCode)
	if orderCode == "" {
		return nil, ErrInvalidOrderCode
	}
	return u.repo.ListByOrderCode(ctx, orderCode)
}
