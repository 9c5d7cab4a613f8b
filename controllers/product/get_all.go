package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NelushGayashan/demo-api/models"
	"github.com/NelushGayashan/demo-api/services"
)

// GetProducts lists products with optional filters: category, brand,
// minPrice, maxPrice, search.
func GetProducts(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := services.ProductFilter{
			Category: c.Query("category"),
			Brand:    c.Query("brand"),
			Search:   c.Query("search"),
		}

		if v := c.Query("minPrice"); v != "" {
			minPrice, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, models.Error("Invalid minPrice"))
				return
			}
			filter.MinPrice = &minPrice
		}
		if v := c.Query("maxPrice"); v != "" {
			maxPrice, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, models.Error("Invalid maxPrice"))
				return
			}
			filter.MaxPrice = &maxPrice
		}

		products, err := svc.GetProducts(filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error("Failed to fetch products"))
			return
		}

		c.Header("X-Total-Count", strconv.Itoa(len(products)))
		c.JSON(http.StatusOK, models.Success(products, "Products retrieved successfully"))
	}
}
