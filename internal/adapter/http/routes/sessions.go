package routes

import (
	"github.com/gin-gonic/gin"
)

const PathSessions = "/sessions"

// addSessionRoutes mounts the estimate flow: site, selection, finishing,
// pricing and the estimate itself, all scoped to one session.
func addSessionRoutes(rg *gin.RouterGroup, h Handlers) {
	sessions := rg.Group(PathSessions)
	sessions.POST("", h.Session.CreateSession)

	s := sessions.Group("/:session_id")
	{
		s.GET("", h.Session.GetSession)
		s.PUT("/location", h.Session.UpdateLocation)
		s.PUT("/time-coefficient", h.Session.SetTimeCoefficient)

		s.DELETE("/selection", h.Session.ClearSelection)
		s.POST("/selection/:service_id/toggle", h.Session.ToggleService)
		s.PUT("/selection/:service_id", h.Session.SetQuantity)

		s.GET("/finishing/:service_id", h.Finishing.GetFinishing)
		s.PUT("/finishing/:service_id/pick", h.Finishing.Pick)
		s.PUT("/finishing/:service_id/customer-supplied", h.Finishing.MarkCustomerSupplied)

		s.DELETE("/calculations/:service_id/materials", h.Calculation.RemoveMaterials)
		s.POST("/calculations/:service_id/materials", h.Calculation.RestoreMaterials)

		s.POST("/estimate", h.Estimate.ComputeEstimate)
		s.GET("/estimate", h.Estimate.GetEstimate)
		s.GET("/estimate/export", h.Estimate.ExportEstimate)
		s.POST("/estimate/recalculate", h.Calculation.Recalculate)
		s.POST("/confirm", h.Estimate.ConfirmEstimate)
	}
}
