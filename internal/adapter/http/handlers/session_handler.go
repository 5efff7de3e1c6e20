package handlers

import (
	"net/http"

	request "home_estimate/internal/adapter/http/dto/request"
	response "home_estimate/internal/adapter/http/dto/response"
	"home_estimate/internal/domain/entities"
	"home_estimate/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the session lifecycle and the selection state.
type SessionHandler struct {
	usecase usecase.ISessionUseCase
}

func NewSessionHandler(uc usecase.ISessionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

func (h *SessionHandler) CreateSession(c *gin.Context) {
	s, err := h.usecase.Create(c.Request.Context())
	if err != nil {
		writeError(c, "session.create", mapSessionError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(s))
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, "session.get", mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// UpdateLocation stores the address step. An unsupported address is not an
// error: it comes back as a location warning.
func (h *SessionHandler) UpdateLocation(c *gin.Context) {
	var payload request.SiteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	s, err := h.usecase.UpdateSite(c.Request.Context(), c.Param("session_id"), payload.ToSiteDetails())
	if err != nil {
		writeError(c, "session.location", mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

func (h *SessionHandler) SetTimeCoefficient(c *gin.Context) {
	var payload request.TimeCoefficientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	s, err := h.usecase.SetTimeCoefficient(c.Request.Context(), c.Param("session_id"), payload.Coefficient)
	if err != nil {
		writeError(c, "session.time_coefficient", mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// ToggleService selects or deselects a service. The body is optional.
func (h *SessionHandler) ToggleService(c *gin.Context) {
	var payload request.ToggleRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
	}

	s, err := h.usecase.Toggle(c.Request.Context(), c.Param("session_id"), entities.ServiceID(c.Param("service_id")), payload.Group)
	if err != nil {
		writeError(c, "session.toggle", mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

func (h *SessionHandler) SetQuantity(c *gin.Context) {
	var payload request.QuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	s, err := h.usecase.SetQuantity(c.Request.Context(), c.Param("session_id"), entities.ServiceID(c.Param("service_id")), *payload.Quantity)
	if err != nil {
		writeError(c, "session.quantity", mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

func (h *SessionHandler) ClearSelection(c *gin.Context) {
	s, err := h.usecase.Clear(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, "session.clear", mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}
