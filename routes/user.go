package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/controllers/user"
	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/middleware"
)

// SetupUserRoutes registers the "/user/*" profile endpoints. Requires JWT
// middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.RequireUser)
	{
		userGroup.GET("/", userControllers.GetUser(db))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(db)) // PUT /user/
	}
}
