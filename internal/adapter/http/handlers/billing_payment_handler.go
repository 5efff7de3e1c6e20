package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "home_estimate/internal/adapter/http/dto/response"
	"home_estimate/internal/usecase"
	"home_estimate/pkg"
	"home_estimate/pkg/logger"

	"github.com/gin-gonic/gin"
)

// BillingPaymentHandler handles the checkout of composite orders.
type BillingPaymentHandler struct {
	usecase usecase.IBillingPaymentUseCase
}

func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase) *BillingPaymentHandler {
	return &BillingPaymentHandler{usecase: uc}
}

// CreatePayment charges the order in the path. The body is either a raw
// Mercado Pago payload or wrapped as {"mp_payload": {...}}.
func (h *BillingPaymentHandler) CreatePayment(c *gin.Context) {
	orderCode := c.Param("code")
	log := logger.With(logger.String("order_code", orderCode))

	mpPayload, err := readMPPayload(c)
	if err != nil {
		log.Warn(c.Request.Context(), "invalid payment payload", logger.ErrorF(err))
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	created, err := h.usecase.CreatePayment(c.Request.Context(), orderCode, mpPayload)
	if err != nil {
		writeError(c, "payment.create", mapBillingPaymentError(err))
		return
	}
	log.Info(c.Request.Context(), "payment created",
		logger.String("payment_id", created.ID), logger.String("status", string(created.Status)))

	c.JSON(http.StatusCreated, response.FromBillingPayment(created))
}

// ListPayments returns every payment attempt of an order, oldest first.
func (h *BillingPaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByOrderCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, "payment.list", mapBillingPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBillingPayments(payments))
}

func (h *BillingPaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		writeError(c, "payment.get", mapBillingPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(payment))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if trimmed := strings.TrimSpace(string(wrapped)); trimmed == "" || trimmed == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapBillingPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderCode), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAlreadyPaid):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_PAID", "Order already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillingPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
