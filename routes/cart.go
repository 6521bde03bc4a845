package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/controllers/cart"
	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/middleware"
	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/sessioncart"
)

// SetupCartRoutes registers both cart surfaces: the persisted user cart and
// the anonymous session cart.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB, sessions *sessioncart.Store) {
	userCart := r.Group("/user/cart")
	userCart.Use(middleware.RequireUser)
	{
		userCart.GET("/", cartControllers.GetUserCart(db))                  // GET /user/cart
		userCart.POST("/", cartControllers.AddCartItem(db))                 // POST /user/cart
		userCart.DELETE("/:product_id", cartControllers.DeleteCartItem(db)) // DELETE /user/cart/:product_id
		userCart.DELETE("/", cartControllers.ClearUserCart(db))             // DELETE /user/cart
	}

	sessionCart := r.Group("/session/cart")
	{
		sessionCart.GET("/", cartControllers.GetSessionCart(db, sessions))                  // GET /session/cart
		sessionCart.POST("/", cartControllers.AddSessionCartItem(db, sessions))             // POST /session/cart
		sessionCart.DELETE("/:product_id", cartControllers.DeleteSessionCartItem(sessions)) // DELETE /session/cart/:product_id
		sessionCart.DELETE("/", cartControllers.ClearSessionCart(sessions))                 // DELETE /session/cart
	}
}
