package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/sessioncart"
	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/storage"
)

// SetupRoutes is the single entry-point that wires up the Auth, User,
// Product, and Cart route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, sessions *sessioncart.Store, images *storage.ImageStore) {
	// Public auth routes (session cookie middleware applied globally)
	SetupAuthRoutes(r, db, sessions)

	// User profile routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Product catalog routes (public reads, JWT-protected writes)
	SetupProductRoutes(r, db, images)

	// Cart routes (user cart JWT-protected, session cart public)
	SetupCartRoutes(r, db, sessions)
}
