package routes

import (
	"github.com/gin-gonic/gin"

	productController "github.com/anurag-b72/ecommerce-shopping-backend/controllers/product"
)

// SetupProductRoutes registers all "/product/*" endpoints.
func SetupProductRoutes(r *gin.Engine, deps Deps) {
	productGroup := r.Group("/product")
	{
		productGroup.POST("/add-product", productController.CreateProduct(deps.Stores.Products, deps.Uploader))
		productGroup.PUT("/edit-product/:product_id", productController.UpdateProduct(deps.Stores.Products, deps.Uploader))
		productGroup.DELETE("/delete-product/:product_id", productController.DeleteProduct(deps.Stores.Products))
		productGroup.GET("/get-product/:product_id", productController.GetProduct(deps.Stores.Products))
		productGroup.GET("/get-all-products", productController.GetAllProducts(deps.Stores.Products))
		productGroup.GET("/export-excel", productController.ExportProductsToExcel(deps.Stores.Products))
	}
}
