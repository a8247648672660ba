package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/anurag-b72/ecommerce-shopping-backend/controllers/admin"
)

// SetupAdminRoutes registers all "/admin/*" endpoints.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	{
		adminGroup.POST("/admin-register", adminController.RegisterAdmin(deps.Stores.Admins))
		adminGroup.GET("/admin-login", adminController.LoginAdmin(deps.Stores.Admins))
		adminGroup.GET("/get-all-users", adminController.GetAllUsers(deps.Stores.Users))
		adminGroup.GET("/get-all-admins", adminController.GetAllAdmins(deps.Stores.Admins))
		adminGroup.GET("/order-management", adminController.OrderManagement(deps.Orders))
	}
}
