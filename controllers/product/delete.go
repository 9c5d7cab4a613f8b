package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NelushGayashan/demo-api/models"
	"github.com/NelushGayashan/demo-api/services"
)

// DeleteProduct removes a product from the catalog.
func DeleteProduct(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.Error("Invalid product ID"))
			return
		}

		deleted, err := svc.DeleteProduct(uint(id))
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error("Failed to delete product"))
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, models.Error(fmt.Sprintf("Product not found with id: %d", id)))
			return
		}
		c.JSON(http.StatusOK, models.Success(nil, "Product deleted successfully"))
	}
}
