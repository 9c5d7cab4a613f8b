package ordercontroller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NelushGayashan/demo-api/models"
	"github.com/NelushGayashan/demo-api/repository"
	"github.com/NelushGayashan/demo-api/services"
)

// GetOrders lists all orders with their items.
func GetOrders(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.GetOrders()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error("Failed to fetch orders"))
			return
		}
		c.Header("X-Total-Count", strconv.Itoa(len(orders)))
		c.JSON(http.StatusOK, models.Success(orders, "Orders retrieved successfully"))
	}
}

func GetOrderByID(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.Error("Invalid order ID"))
			return
		}

		order, err := svc.GetOrderByID(uint(id))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.Error(fmt.Sprintf("Order not found with id: %d", id)))
			} else {
				c.JSON(http.StatusInternalServerError, models.Error("Failed to retrieve order"))
			}
			return
		}
		c.JSON(http.StatusOK, models.Success(order, "Order found"))
	}
}

func GetOrderByOrderNumber(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderNumber := c.Param("orderNumber")

		order, err := svc.GetOrderByOrderNumber(orderNumber)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.Error("Order not found with number: "+orderNumber))
			} else {
				c.JSON(http.StatusInternalServerError, models.Error("Failed to retrieve order"))
			}
			return
		}
		c.JSON(http.StatusOK, models.Success(order, "Order found"))
	}
}

func GetOrdersByUserID(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.Error("Invalid user ID"))
			return
		}

		orders, err := svc.GetOrdersByUserID(uint(userID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error("Failed to fetch orders"))
			return
		}
		c.Header("X-Total-Count", strconv.Itoa(len(orders)))
		c.JSON(http.StatusOK, models.Success(orders, fmt.Sprintf("Orders retrieved for user: %d", userID)))
	}
}

func GetOrdersByStatus(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.Param("status")

		orders, err := svc.GetOrdersByStatus(status)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error("Failed to fetch orders"))
			return
		}
		c.Header("X-Total-Count", strconv.Itoa(len(orders)))
		c.JSON(http.StatusOK, models.Success(orders, "Orders retrieved for status: "+status))
	}
}

// GetAllStatuses lists the distinct statuses present in the store.
func GetAllStatuses(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		statuses, err := svc.GetAllStatuses()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error("Failed to fetch statuses"))
			return
		}
		c.JSON(http.StatusOK, models.Success(statuses, "Statuses retrieved successfully"))
	}
}

// CreateOrder places a new order.
func CreateOrder(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := c.ShouldBindJSON(&order); err != nil {
			c.JSON(http.StatusBadRequest, models.Error("Invalid order payload: "+err.Error()))
			return
		}

		created, err := svc.CreateOrder(&order)
		if err != nil {
			if errors.Is(err, repository.ErrConflict) {
				c.JSON(http.StatusConflict, models.Error("Order with this order number already exists"))
			} else {
				c.JSON(http.StatusInternalServerError, models.Error("Failed to create order"))
			}
			return
		}

		c.Header("Location", fmt.Sprintf("/api/v1/orders/%d", created.ID))
		c.JSON(http.StatusCreated, models.Success(created, "Order created successfully"))
	}
}

// UpdateOrder replaces an existing order's scalar fields with the payload.
func UpdateOrder(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.Error("Invalid order ID"))
			return
		}

		var order models.Order
		if err := c.ShouldBindJSON(&order); err != nil {
			c.JSON(http.StatusBadRequest, models.Error("Invalid order payload: "+err.Error()))
			return
		}

		updated, err := svc.UpdateOrder(uint(id), order)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrNotFound):
				c.JSON(http.StatusNotFound, models.Error(fmt.Sprintf("Order not found with id: %d", id)))
			case errors.Is(err, repository.ErrConflict):
				c.JSON(http.StatusConflict, models.Error("Order with this order number already exists"))
			default:
				c.JSON(http.StatusInternalServerError, models.Error("Failed to update order"))
			}
			return
		}

		c.JSON(http.StatusOK, models.Success(updated, "Order updated successfully"))
	}
}

// DeleteOrder removes an order and its items.
func DeleteOrder(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.Error("Invalid order ID"))
			return
		}

		deleted, err := svc.DeleteOrder(uint(id))
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error("Failed to delete order"))
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, models.Error(fmt.Sprintf("Order not found with id: %d", id)))
			return
		}
		c.JSON(http.StatusOK, models.Success(nil, "Order deleted successfully"))
	}
}
