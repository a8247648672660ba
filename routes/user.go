package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/anurag-b72/ecommerce-shopping-backend/controllers/cart"
	userControllers "github.com/anurag-b72/ecommerce-shopping-backend/controllers/user"
)

// SetupUserRoutes registers all "/user/*" endpoints, including the nested
// shopping-cart group.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	{
		userGroup.POST("/user-register", userControllers.RegisterUser(deps.Stores.Users))
		userGroup.GET("/user-login", userControllers.LoginUser(deps.Stores.Users))
		userGroup.GET("/my-profile", userControllers.MyProfile(deps.Stores.Users))
		userGroup.PUT("/update-user/:user_id", userControllers.UpdateUser(deps.Stores.Users))
		userGroup.PUT("/update-profile-pic", userControllers.UpdateProfilePic(deps.Stores.Users, deps.Uploader))

		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.POST("/add-items", cartControllers.AddItems(deps.Carts))
			cartGroup.PUT("/update-quantity", cartControllers.UpdateQuantity(deps.Carts))
			cartGroup.DELETE("/remove-item", cartControllers.RemoveItem(deps.Carts))
			cartGroup.GET("/get-items", cartControllers.GetItems(deps.Carts))
			cartGroup.GET("/total-price", cartControllers.TotalPrice(deps.Carts))
		}
	}
}
