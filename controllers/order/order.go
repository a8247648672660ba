package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anurag-b72/ecommerce-shopping-backend/engine/order"
	"github.com/anurag-b72/ecommerce-shopping-backend/errs"
)

// POST /order/complete-purchase
func CompletePurchase(eng *order.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")
		userAddress := c.Query("user_address")

		created, err := eng.CompletePurchase(c.Request.Context(), userID, userAddress)
		if err != nil {
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}

		broadcastOrderUpdate(*created)

		c.JSON(http.StatusOK, gin.H{
			"message":  "Purchase completed successfully",
			"order_id": created.ID.Hex(),
		})
	}
}

// GET /order/get-order/:order_id
func GetOrder(eng *order.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		found, err := eng.GetOrder(c.Request.Context(), c.Param("order_id"))
		if err != nil {
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, found)
	}
}

// GET /order/get-all-orders
func GetAllOrders(eng *order.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := eng.ListOrders(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
