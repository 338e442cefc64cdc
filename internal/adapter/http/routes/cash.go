package routes

import (
	"oficina_insufilm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathCash = "/cash"

func addCashRoutes(rg *gin.RouterGroup, cashHandler *handlers.CashHandler) {
	cash := rg.Group(PathCash)
	{
		cash.POST("", cashHandler.Create)
		cash.GET("", cashHandler.List)
		cash.GET("/summary", cashHandler.Summary)
		cash.GET("/orders/:order_id", cashHandler.ListByOrder)
		cash.GET("/:id", cashHandler.GetByID)
		cash.PATCH("/:id", cashHandler.Update)
		cash.DELETE("/:id", cashHandler.Delete)
	}
}
