package routes

import (
	"github.com/gin-gonic/gin"

	ordercontroller "github.com/NelushGayashan/demo-api/controllers/order"
	"github.com/NelushGayashan/demo-api/services"
)

func SetupOrderRoutes(api *gin.RouterGroup, svc *services.OrderService) {
	orders := api.Group("/orders")
	{
		orders.GET("", ordercontroller.GetOrders(svc))
		orders.GET("/statuses", ordercontroller.GetAllStatuses(svc))
		orders.GET("/number/:orderNumber", ordercontroller.GetOrderByOrderNumber(svc))
		orders.GET("/user/:userId", ordercontroller.GetOrdersByUserID(svc))
		orders.GET("/status/:status", ordercontroller.GetOrdersByStatus(svc))
		orders.GET("/:id", ordercontroller.GetOrderByID(svc))
		orders.POST("", ordercontroller.CreateOrder(svc))
		orders.PUT("/:id", ordercontroller.UpdateOrder(svc))
		orders.DELETE("/:id", ordercontroller.DeleteOrder(svc))
	}
}
