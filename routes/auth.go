package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/controllers/user"
	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/sessioncart"
)

// SetupAuthRoutes registers signup and login. Both endpoints merge the
// visitor's session cart into the account once identity is established.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, sessions *sessioncart.Store) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", userControllers.Signup(db, sessions)) // POST /auth/signup
		authGroup.POST("/login", userControllers.Login(db, sessions))   // POST /auth/login
	}
}
