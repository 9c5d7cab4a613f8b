package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NelushGayashan/demo-api/middleware"
	"github.com/NelushGayashan/demo-api/repository"
	"github.com/NelushGayashan/demo-api/services"
)

// SetupRoutes is the single entry-point that wires up all resource route
// groups under /api/v1.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api/v1")
	api.Use(middleware.TracingHeaders)

	SetupHealthRoutes(api)
	SetupProductRoutes(api, services.NewProductService(repository.NewProductRepository(db)))
	SetupUserRoutes(api, services.NewUserService(repository.NewUserRepository(db)))
	SetupOrderRoutes(api, services.NewOrderService(repository.NewOrderRepository(db)))
}
