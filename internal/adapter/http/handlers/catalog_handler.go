package handlers

import (
	"net/http"

	response "home_estimate/internal/adapter/http/dto/response"
	"home_estimate/internal/domain/entities"
	"home_estimate/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only catalog browsed by the selection steps.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListSections(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSectionTrees(h.usecase.Sections()))
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.Services(entities.CategoryID(c.Param("category_id")))
	if err != nil {
		writeError(c, "catalog.services", mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *CatalogHandler) ListTimeCoefficients(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.TimeCoefficients())
}
