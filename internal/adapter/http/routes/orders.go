package routes

import (
	"oficina_insufilm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathOrders = "/orders"

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.WorkOrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.Create)
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.GetByID)
		orders.PATCH("/:id", orderHandler.Update)
		orders.DELETE("/:id", orderHandler.Delete)

		orders.PATCH("/:id/status", orderHandler.UpdateStatus)
		orders.POST("/:id/payments", orderHandler.RecordPayment)
		orders.POST("/:id/material", orderHandler.ConsumeMaterial)
		orders.GET("/:id/reconciliation", orderHandler.Reconcile)

		// Mercado Pago charges.
		orders.POST("/:id/charge", orderHandler.Charge)
		orders.GET("/:id/charges", orderHandler.ListCharges)
	}
}
