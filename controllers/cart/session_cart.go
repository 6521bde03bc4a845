package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/carts"
	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/sessioncart"
)

// Session cart endpoints mirror the user cart for anonymous visitors. State
// lives under the visitor's cart_session cookie until login merges it.

// GET /session/cart
func GetSessionCart(db *gorm.DB, sessions *sessioncart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("cart_session_id")

		items, err := sessions.Read(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch session cart"})
			return
		}

		view, err := carts.ViewForSession(carts.NewStore(db), items)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch session cart"})
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// POST /session/cart
func AddSessionCartItem(db *gorm.DB, sessions *sessioncart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("cart_session_id")

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}

		exists, err := carts.NewStore(db).ProductExists(input.ProductID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}
		if !exists {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		if err := sessions.Add(c.Request.Context(), sessionID, input.ProductID, input.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to session cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item added to session cart"})
	}
}

// DELETE /session/cart/:product_id
func DeleteSessionCartItem(sessions *sessioncart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("cart_session_id")

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		if err := sessions.Remove(c.Request.Context(), sessionID, uint(productID)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Session cart item deleted"})
	}
}

// DELETE /session/cart
func ClearSessionCart(sessions *sessioncart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("cart_session_id")

		if err := sessions.Clear(c.Request.Context(), sessionID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Session cart cleared"})
	}
}
