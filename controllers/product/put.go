package productController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anurag-b72/ecommerce-shopping-backend/errs"
	"github.com/anurag-b72/ecommerce-shopping-backend/models"
	"github.com/anurag-b72/ecommerce-shopping-backend/store"
	"github.com/anurag-b72/ecommerce-shopping-backend/upload"
)

// PUT /product/edit-product/:product_id
//
// Partial patch: only provided form fields are changed. An uploaded image
// replaces the stored image URL.
func UpdateProduct(products store.ProductStore, up upload.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("product_id")

		if _, err := products.FindByID(c.Request.Context(), productID); err != nil {
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}

		var patch models.ProductPatch
		if name, ok := c.GetPostForm("name"); ok {
			patch.Name = &name
		}
		if description, ok := c.GetPostForm("description"); ok {
			patch.Description = &description
		}
		if priceStr, ok := c.GetPostForm("price"); ok {
			price, err := strconv.ParseFloat(priceStr, 64)
			if err != nil || price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a non-negative number"})
				return
			}
			patch.Price = &price
		}
		if fileHeader, err := c.FormFile("image"); err == nil {
			url, ok := uploadImage(c, up, fileHeader, productImageFolder)
			if !ok {
				return
			}
			patch.ImageURL = &url
		}

		if err := products.Update(c.Request.Context(), productID, patch); err != nil {
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product Updated Successfully", "product_id": productID})
	}
}
