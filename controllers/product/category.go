package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NelushGayashan/demo-api/models"
	"github.com/NelushGayashan/demo-api/services"
)

func GetProductsByCategory(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Param("category")

		products, err := svc.GetProductsByCategory(category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error("Failed to fetch products"))
			return
		}
		c.Header("X-Total-Count", strconv.Itoa(len(products)))
		c.JSON(http.StatusOK, models.Success(products, "Products retrieved for category: "+category))
	}
}

func GetProductsByBrand(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		brand := c.Param("brand")

		products, err := svc.GetProductsByBrand(brand)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error("Failed to fetch products"))
			return
		}
		c.Header("X-Total-Count", strconv.Itoa(len(products)))
		c.JSON(http.StatusOK, models.Success(products, "Products retrieved for brand: "+brand))
	}
}

// GetLowStockProducts lists products with stock strictly below the threshold
// (default 10).
func GetLowStockProducts(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		threshold, err := strconv.Atoi(c.DefaultQuery("threshold", "10"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.Error("Invalid threshold"))
			return
		}

		products, err := svc.GetLowStockProducts(threshold)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error("Failed to fetch products"))
			return
		}
		c.Header("X-Total-Count", strconv.Itoa(len(products)))
		c.JSON(http.StatusOK, models.Success(products, "Low stock products retrieved"))
	}
}

func GetAllCategories(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.GetAllCategories()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error("Failed to fetch categories"))
			return
		}
		c.JSON(http.StatusOK, models.Success(categories, "Categories retrieved successfully"))
	}
}

func GetAllBrands(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		brands, err := svc.GetAllBrands()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error("Failed to fetch brands"))
			return
		}
		c.JSON(http.StatusOK, models.Success(brands, "Brands retrieved successfully"))
	}
}
