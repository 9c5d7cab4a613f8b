package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/NelushGayashan/demo-api/controllers/product"
	"github.com/NelushGayashan/demo-api/services"
)

func SetupProductRoutes(api *gin.RouterGroup, svc *services.ProductService) {
	products := api.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(svc))
		products.GET("/categories", productcontroller.GetAllCategories(svc))
		products.GET("/brands", productcontroller.GetAllBrands(svc))
		products.GET("/low-stock", productcontroller.GetLowStockProducts(svc))
		products.GET("/export", productcontroller.ExportProductsToExcel(svc))
		products.GET("/sku/:sku", productcontroller.GetProductBySKU(svc))
		products.GET("/category/:category", productcontroller.GetProductsByCategory(svc))
		products.GET("/brand/:brand", productcontroller.GetProductsByBrand(svc))
		products.GET("/:id", productcontroller.GetProductByID(svc))
		products.POST("", productcontroller.CreateProduct(svc))
		products.PUT("/:id", productcontroller.UpdateProduct(svc))
		products.DELETE("/:id", productcontroller.DeleteProduct(svc))
	}
}
