package handlers

import (
	"net/http"

	request "home_estimate/internal/adapter/http/dto/request"
	response "home_estimate/internal/adapter/http/dto/response"
	"home_estimate/internal/domain/entities"
	"home_estimate/internal/usecase"

	"github.com/gin-gonic/gin"
)

// FinishingHandler exposes the finishing material choices of a service.
type FinishingHandler struct {
	usecase usecase.IFinishingUseCase
}

func NewFinishingHandler(uc usecase.IFinishingUseCase) *FinishingHandler {
	return &FinishingHandler{usecase: uc}
}

// GetFinishing loads the candidates on first use and returns the current picks.
func (h *FinishingHandler) GetFinishing(c *gin.Context) {
	serviceID := entities.ServiceID(c.Param("service_id"))
	fs, err := h.usecase.EnsureLoaded(c.Request.Context(), c.Param("session_id"), serviceID)
	if err != nil {
		writeError(c, "finishing.get", mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFinishing(serviceID, fs))
}

func (h *FinishingHandler) Pick(c *gin.Context) {
	var payload request.PickRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	s, err := h.usecase.Pick(c.Request.Context(), c.Param("session_id"), entities.ServiceID(c.Param("service_id")), payload.ExternalID)
	if err != nil {
		writeError(c, "finishing.pick", mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

func (h *FinishingHandler) MarkCustomerSupplied(c *gin.Context) {
	var payload request.CustomerSuppliedRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	s, err := h.usecase.MarkCustomerSupplied(c.Request.Context(), c.Param("session_id"),
		entities.ServiceID(c.Param("service_id")), payload.ExternalID, payload.IsSupplied())
	if err != nil {
		writeError(c, "finishing.customer_supplied", mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}
