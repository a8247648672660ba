package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/anurag-b72/ecommerce-shopping-backend/engine/cart"
	"github.com/anurag-b72/ecommerce-shopping-backend/engine/order"
	"github.com/anurag-b72/ecommerce-shopping-backend/store"
	"github.com/anurag-b72/ecommerce-shopping-backend/upload"
)

// Deps holds everything the route groups need, constructed once at process
// start and passed explicitly.
type Deps struct {
	Stores   store.Stores
	Carts    *cart.Engine
	Orders   *order.Engine
	Uploader upload.Uploader
}

// SetupRoutes is the single entry point that wires up the User, Product,
// Order and Admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	SetupUserRoutes(r, deps)
	SetupProductRoutes(r, deps)
	SetupOrderRoutes(r, deps)
	SetupAdminRoutes(r, deps)
}
