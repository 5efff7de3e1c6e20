package handlers

import (
	"fmt"
	"net/http"

	response "home_estimate/internal/adapter/http/dto/response"
	"home_estimate/internal/usecase"
	"home_estimate/pkg/logger"

	"github.com/gin-gonic/gin"
)

// EstimateHandler exposes the estimate of a session and its confirmation.
type EstimateHandler struct {
	estimates usecase.IEstimateUseCase
	orders    usecase.ICompositeOrderUseCase
}

func NewEstimateHandler(estimates usecase.IEstimateUseCase, orders usecase.ICompositeOrderUseCase) *EstimateHandler {
	return &EstimateHandler{estimates: estimates, orders: orders}
}

// ComputeEstimate recomputes the totals from the current selection and
// returns them with the presentation view.
func (h *EstimateHandler) ComputeEstimate(c *gin.Context) {
	sessionID := c.Param("session_id")
	result, err := h.estimates.ComputeEstimate(c.Request.Context(), sessionID)
	if err != nil {
		writeError(c, "estimate.compute", mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateResult(sessionID, result))
}

// GetEstimate returns the last computed totals without recomputing.
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	totals, err := h.estimates.GetEstimate(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, "estimate.get", mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, totals)
}

func (h *EstimateHandler) ExportEstimate(c *gin.Context) {
	format, err := usecase.ParseExportFormat(c.Query("format"))
	if err != nil {
		writeError(c, "estimate.export", mapSessionError(err))
		return
	}

	doc, err := h.estimates.Export(c.Request.Context(), c.Param("session_id"), format)
	if err != nil {
		writeError(c, "estimate.export", mapSessionError(err))
		return
	}
	writeDocument(c, doc)
}

// ConfirmEstimate turns the session estimate into a composite order.
func (h *EstimateHandler) ConfirmEstimate(c *gin.Context) {
	sessionID := c.Param("session_id")
	order, err := h.orders.ConfirmEstimate(c.Request.Context(), sessionID)
	if err != nil {
		writeError(c, "estimate.confirm", mapOrderError(err))
		return
	}
	logger.With(logger.String("session_id", sessionID), logger.String("order_code", order.Code)).
		Info(c.Request.Context(), "estimate confirmed")
	c.JSON(http.StatusCreated, response.FromOrder(order, nil))
}

func writeDocument(c *gin.Context, doc usecase.Document) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}
