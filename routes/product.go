package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/controllers/product"
	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/middleware"
	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/storage"
)

// SetupProductRoutes registers the catalog endpoints: public browsing plus
// JWT-protected listing management.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB, images *storage.ImageStore) {
	// Public browsing
	r.GET("/products", productcontroller.GetProducts(db))           // GET /products
	r.GET("/product/:slug", productcontroller.GetProductBySlug(db)) // GET /product/:slug

	// Listing management
	productGroup := r.Group("/products")
	productGroup.Use(middleware.RequireUser)
	{
		productGroup.POST("/", productcontroller.CreateProduct(db, images))      // POST /products
		productGroup.PUT("/:id", productcontroller.UpdateProduct(db, images))    // PUT /products/:id
		productGroup.DELETE("/:id", productcontroller.DeleteProduct(db))         // DELETE /products/:id
		productGroup.GET("/export", productcontroller.ExportProductsToExcel(db)) // GET /products/export
	}
}
