package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/anurag-b72/ecommerce-shopping-backend/controllers/order"
)

// SetupOrderRoutes registers all "/order/*" endpoints.
func SetupOrderRoutes(r *gin.Engine, deps Deps) {
	orderGroup := r.Group("/order")
	{
		orderGroup.POST("/complete-purchase", orderControllers.CompletePurchase(deps.Orders))
		orderGroup.GET("/get-order/:order_id", orderControllers.GetOrder(deps.Orders))
		orderGroup.GET("/get-all-orders", orderControllers.GetAllOrders(deps.Orders))

		// websocket endpoint for real-time order updates
		orderGroup.GET("/ws", orderControllers.OrderWebSocketHandler)
	}
}
