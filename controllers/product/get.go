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

// GetProductByID returns a single product.
// URL param: /products/:id
func GetProductByID(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.Error("Invalid product ID"))
			return
		}

		product, err := svc.GetProductByID(uint(id))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.Error(fmt.Sprintf("Product not found with id: %d", id)))
			} else {
				c.JSON(http.StatusInternalServerError, models.Error("Failed to retrieve product"))
			}
			return
		}
		c.JSON(http.StatusOK, models.Success(product, "Product found"))
	}
}

// GetProductBySKU returns the product carrying the given SKU.
// URL param: /products/sku/:sku
func GetProductBySKU(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sku := c.Param("sku")

		product, err := svc.GetProductBySKU(sku)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.Error("Product not found with SKU: "+sku))
			} else {
				c.JSON(http.StatusInternalServerError, models.Error("Failed to retrieve product"))
			}
			return
		}
		c.JSON(http.StatusOK, models.Success(product, "Product found"))
	}
}
