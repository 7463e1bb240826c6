package routes

import (
	"printstudio/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addHealthRoutes(router *gin.Engine, h *handlers.HealthHandler) {
	router.GET("/", h.Root)
	router.GET("/status", h.Status)
}
