package routes

import (
	"home_estimate/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathCatalog = "/catalog"

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/sections", h.ListSections)
		catalog.GET("/categories/:category_id/services", h.ListServices)
		catalog.GET("/time-coefficients", h.ListTimeCoefficients)
	}
}
