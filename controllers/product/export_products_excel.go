package productController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/anurag-b72/ecommerce-shopping-backend/store"
)

// GET /product/export-excel
func ExportProductsToExcel(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := products.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range []string{"ID", "Name", "Description", "Price", "ImageURL"} {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range all {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID.Hex())
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.ImageURL)
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
