package productController

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anurag-b72/ecommerce-shopping-backend/models"
	"github.com/anurag-b72/ecommerce-shopping-backend/store"
	"github.com/anurag-b72/ecommerce-shopping-backend/upload"
)

const productImageFolder = "Ecommerce-Shopping/Products"

// uploadImage pushes a multipart image to the asset host and returns its
// secure URL.
func uploadImage(c *gin.Context, up upload.Uploader, fileHeader *multipart.FileHeader, folder string) (string, bool) {
	if up == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Image uploads are not configured"})
		return "", false
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image file"})
		return "", false
	}
	defer file.Close()

	url, err := up.Upload(c.Request.Context(), file, folder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return "", false
	}
	return url, true
}

// POST /product/add-product
func CreateProduct(products store.ProductStore, up upload.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		description := c.PostForm("description")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		price, err := strconv.ParseFloat(c.PostForm("price"), 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a non-negative number"})
			return
		}

		imageURL := models.DefaultProductURL
		if fileHeader, err := c.FormFile("image"); err == nil {
			url, ok := uploadImage(c, up, fileHeader, productImageFolder)
			if !ok {
				return
			}
			imageURL = url
		}

		product := models.Product{
			Name:        name,
			Description: description,
			Price:       price,
			ImageURL:    imageURL,
		}

		id, err := products.Insert(c.Request.Context(), product)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":           "New Product Added Successfully.",
			"product_id":        id,
			"product_image_url": imageURL,
		})
	}
}
