package handlers

import (
	"net/http"

	request "home_estimate/internal/adapter/http/dto/request"
	response "home_estimate/internal/adapter/http/dto/response"
	"home_estimate/internal/domain/entities"
	"home_estimate/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CalculationHandler drives the pricing pipeline and the local overrides of
// cached results.
type CalculationHandler struct {
	usecase usecase.IPricingUseCase
}

func NewCalculationHandler(uc usecase.IPricingUseCase) *CalculationHandler {
	return &CalculationHandler{usecase: uc}
}

// Recalculate reprices the requested services, or every selected one when the
// body is empty. Failed services keep their previous price and are reported
// in the pricing warning.
func (h *CalculationHandler) Recalculate(c *gin.Context) {
	var payload request.RecalculateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
	}

	s, err := h.usecase.Recalculate(c.Request.Context(), c.Param("session_id"), payload.IDs()...)
	if err != nil {
		writeError(c, "calculation.recalculate", mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

func (h *CalculationHandler) RemoveMaterials(c *gin.Context) {
	s, err := h.usecase.RemoveFinishingMaterials(c.Request.Context(), c.Param("session_id"), entities.ServiceID(c.Param("service_id")))
	if err != nil {
		writeError(c, "calculation.remove_materials", mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

func (h *CalculationHandler) RestoreMaterials(c *gin.Context) {
	s, err := h.usecase.RestoreFinishingMaterials(c.Request.Context(), c.Param("session_id"), entities.ServiceID(c.Param("service_id")))
	if err != nil {
		writeError(c, "calculation.restore_materials", mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}
