package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	orderControllers "github.com/anurag-b72/ecommerce-shopping-backend/controllers/order"
	"github.com/anurag-b72/ecommerce-shopping-backend/engine/order"
	"github.com/anurag-b72/ecommerce-shopping-backend/errs"
)

// GET /admin/order-management
//
// The admin id is verified for existence only; there is no role model.
func OrderManagement(eng *order.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Query("order_id")
		adminID := c.Query("admin_id")
		action := order.Action(c.Query("order_action"))

		updated, err := eng.SetApprovalStatus(c.Request.Context(), orderID, adminID, action)
		if err != nil {
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}

		orderControllers.BroadcastOrderUpdate(*updated)

		if action == order.ActionApprove {
			c.JSON(http.StatusOK, gin.H{"message": "Order status approved by admin id=" + adminID})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status rejected by admin id=" + adminID})
	}
}
