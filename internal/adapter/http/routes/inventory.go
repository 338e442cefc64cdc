package routes

import (
	"oficina_insufilm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathInventory = "/inventory"

func addInventoryRoutes(rg *gin.RouterGroup, inventoryHandler *handlers.InventoryHandler) {
	inventory := rg.Group(PathInventory)
	{
		inventory.POST("", inventoryHandler.Create)
		inventory.GET("", inventoryHandler.List)
		inventory.GET("/low-stock", inventoryHandler.LowStock)
		inventory.GET("/:id", inventoryHandler.GetByID)
		inventory.PATCH("/:id", inventoryHandler.Update)
		inventory.DELETE("/:id", inventoryHandler.Delete)
		inventory.POST("/:id/consume", inventoryHandler.Consume)
		inventory.POST("/:id/restock", inventoryHandler.Restock)
	}
}
