package routes

import (
	"net/http"

	"oficina_insufilm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSchedule = "/schedule"
	PathSettings = "/settings"
	PathPing     = "/ping"
)

func addScheduleRoutes(rg *gin.RouterGroup, scheduleHandler *handlers.ScheduleHandler, settingsHandler *handlers.SettingsHandler) {
	schedule := rg.Group(PathSchedule)
	{
		schedule.POST("", scheduleHandler.Create)
		schedule.GET("", scheduleHandler.List)
		schedule.GET("/:id", scheduleHandler.GetByID)
		schedule.PUT("/:id", scheduleHandler.Update)
		schedule.DELETE("/:id", scheduleHandler.Delete)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("", settingsHandler.Get)
		settings.PUT("", settingsHandler.Update)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
