package productController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anurag-b72/ecommerce-shopping-backend/errs"
	"github.com/anurag-b72/ecommerce-shopping-backend/store"
)

// DELETE /product/delete-product/:product_id
func DeleteProduct(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("product_id")

		if err := products.Delete(c.Request.Context(), productID); err != nil {
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product Deleted Successfully", "product_id": productID})
	}
}
