package routes

import (
	"github.com/gin-gonic/gin"

	healthcontroller "github.com/NelushGayashan/demo-api/controllers/health"
)

func SetupHealthRoutes(api *gin.RouterGroup) {
	api.GET("/health", healthcontroller.HealthCheck)
	api.GET("/info", healthcontroller.Info)
}
