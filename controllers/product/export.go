package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/NelushGayashan/demo-api/models"
	"github.com/NelushGayashan/demo-api/services"
)

// ExportProductsToExcel streams the full catalog as an .xlsx download.
func ExportProductsToExcel(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.GetProducts(services.ProductFilter{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error("Failed to fetch products"))
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.Error("Failed to create Excel sheet"))
			return
		}

		headers := []string{"ID", "Name", "Description", "Price", "Category", "Stock", "SKU", "Brand", "CreatedAt", "UpdatedAt"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		strOrEmpty := func(v *string) string {
			if v == nil {
				return ""
			}
			return *v
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(strOrEmpty(p.Description))
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(strOrEmpty(p.Category))
			if p.Stock != nil {
				row.AddCell().SetValue(*p.Stock)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(strOrEmpty(p.SKU))
			row.AddCell().SetValue(strOrEmpty(p.Brand))
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, models.Error("Failed to write Excel file"))
			return
		}
	}
}
