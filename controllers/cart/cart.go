package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anurag-b72/ecommerce-shopping-backend/engine/cart"
	"github.com/anurag-b72/ecommerce-shopping-backend/errs"
)

func intQuery(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be an integer"})
		return 0, false
	}
	return value, true
}

// POST /user/cart/add-items
func AddItems(eng *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")
		productID := c.Query("product_id")
		quantity, ok := intQuery(c, "quantity")
		if !ok {
			return
		}

		total, merged, err := eng.AddItem(c.Request.Context(), userID, productID, quantity)
		if err != nil {
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}

		if merged {
			c.JSON(http.StatusOK, gin.H{
				"message": "Item already added, hence updated the quantity to " + strconv.Itoa(total),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product added to user's shopping cart successfully"})
	}
}

// PUT /user/cart/update-quantity
func UpdateQuantity(eng *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")
		productID := c.Query("product_id")
		newQuantity, ok := intQuery(c, "new_quantity")
		if !ok {
			return
		}

		if err := eng.UpdateQuantity(c.Request.Context(), userID, productID, newQuantity); err != nil {
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Quantity of item " + productID + " updated successfully to " + strconv.Itoa(newQuantity),
		})
	}
}

// DELETE /user/cart/remove-item
func RemoveItem(eng *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")
		productID := c.Query("product_id")

		if err := eng.RemoveItem(c.Request.Context(), userID, productID); err != nil {
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Item " + productID + " removed from the shopping cart successfully",
		})
	}
}

// GET /user/cart/get-items
func GetItems(eng *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")

		items, err := eng.GetCart(c.Request.Context(), userID)
		if err != nil {
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user_id": userID, "shopping_cart": items})
	}
}

// GET /user/cart/total-price
func TotalPrice(eng *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")

		total, err := eng.ComputeTotal(c.Request.Context(), userID)
		if err != nil {
			c.JSON(errs.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user_id": userID, "total_price": total})
	}
}
