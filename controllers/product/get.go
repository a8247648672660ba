package productController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anurag-b72/ecommerce-shopping-backend/errs"
	"github.com/anurag-b72/ecommerce-shopping-backend/store"
)

// GET /product/get-product/:product_id
func GetProduct(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := products.FindByID(c.Request.Context(), c.Param("product_id"))
		if err != nil {
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GET /product/get-all-products
func GetAllProducts(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := products.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, all)
	}
}
