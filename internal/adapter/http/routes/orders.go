package routes

import (
	"home_estimate/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders   = "/orders"
	PathPayments = "/payments"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, paymentHandler *handlers.BillingPaymentHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("/:code", orderHandler.GetOrder)
		orders.PATCH("/:code", orderHandler.UpdateOrder)
		orders.GET("/:code/export", orderHandler.ExportOrder)
		orders.POST("/:code/payments", paymentHandler.CreatePayment)
		orders.GET("/:code/payments", paymentHandler.ListPayments)
	}

	rg.GET(PathPayments+"/:payment_id", paymentHandler.GetPayment)
}
