package productcontroller

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

// UpdateProduct replaces an existing product's fields with the payload.
func UpdateProduct(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.Error("Invalid product ID"))
			return
		}

		var product models.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, models.Error("Invalid product payload: "+err.Error()))
			return
		}

		updated, err := svc.UpdateProduct(uint(id), product)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrNotFound):
				c.JSON(http.StatusNotFound, models.Error(fmt.Sprintf("Product not found with id: %d", id)))
			case errors.Is(err, repository.ErrConflict):
				c.JSON(http.StatusConflict, models.Error("Product with this SKU already exists"))
			default:
				c.JSON(http.StatusInternalServerError, models.Error("Failed to update product"))
			}
			return
		}

		c.JSON(http.StatusOK, models.Success(updated, "Product updated successfully"))
	}
}
