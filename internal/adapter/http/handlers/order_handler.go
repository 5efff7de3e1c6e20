package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "home_estimate/internal/adapter/http/dto/request"
	response "home_estimate/internal/adapter/http/dto/response"
	"home_estimate/internal/usecase"
	"home_estimate/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves confirmed composite orders.
type OrderHandler struct {
	usecase usecase.ICompositeOrderUseCase
}

func NewOrderHandler(uc usecase.ICompositeOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	code := c.Param("code")
	order, err := h.usecase.GetOrder(c.Request.Context(), code)
	if err != nil {
		writeError(c, "order.get", mapOrderError(err))
		return
	}
	view, err := h.usecase.GetOrderView(c.Request.Context(), code)
	if err != nil {
		writeError(c, "order.get", mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order, &view))
}

// UpdateOrder applies a partial update. Omitted fields stay untouched.
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var payload request.OrderUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	order, err := h.usecase.UpdateOrder(c.Request.Context(), c.Param("code"), payload.ToUpdate())
	if err != nil {
		writeError(c, "order.update", mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order, nil))
}

func (h *OrderHandler) ExportOrder(c *gin.Context) {
	format, err := usecase.ParseExportFormat(c.Query("format"))
	if err != nil {
		writeError(c, "order.export", mapOrderError(err))
		return
	}

	doc, err := h.usecase.Export(c.Request.Context(), c.Param("code"), format)
	if err != nil {
		writeError(c, "order.export", mapOrderError(err))
		return
	}
	writeDocument(c, doc)
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderCode):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidOrderUpdate):
		msg := strings.TrimPrefix(err.Error(), usecase.ErrInvalidOrderUpdate.Error()+": ")
		return pkg.NewDomainErrorSimple("INVALID_ORDER_UPDATE", msg, http.StatusBadRequest)
	default:
		return mapSessionError(err)
	}
}
