package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anurag-b72/ecommerce-shopping-backend/errs"
	"github.com/anurag-b72/ecommerce-shopping-backend/models"
	"github.com/anurag-b72/ecommerce-shopping-backend/store"
	"github.com/anurag-b72/ecommerce-shopping-backend/upload"
)

// PUT /user/update-profile-pic
func UpdateProfilePic(users store.UserStore, up upload.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")

		if _, err := users.FindByID(c.Request.Context(), userID); err != nil {
			if errs.Is(err, errs.KindNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}

		if up == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Image uploads are not configured"})
			return
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image file"})
			return
		}
		defer file.Close()

		url, err := up.Upload(c.Request.Context(), file, "Ecommerce-Shopping/Users/"+userID+"/profile")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}

		if err := users.Update(c.Request.Context(), userID, models.UserPatch{ProfileURL: &url}); err != nil {
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "URL set successfully!", "profile_url": url})
	}
}
