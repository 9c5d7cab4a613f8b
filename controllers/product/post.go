package productcontroller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NelushGayashan/demo-api/models"
	"github.com/NelushGayashan/demo-api/repository"
	"github.com/NelushGayashan/demo-api/services"
)

// CreateProduct adds a new product to the catalog.
func CreateProduct(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, models.Error("Invalid product payload: "+err.Error()))
			return
		}

		created, err := svc.CreateProduct(&product)
		if err != nil {
			if errors.Is(err, repository.ErrConflict) {
				c.JSON(http.StatusConflict, models.Error("Product with this SKU already exists"))
			} else {
				c.JSON(http.StatusInternalServerError, models.Error("Failed to create product"))
			}
			return
		}

		c.Header("Location", fmt.Sprintf("/api/v1/products/%d", created.ID))
		c.JSON(http.StatusCreated, models.Success(created, "Product created successfully"))
	}
}
