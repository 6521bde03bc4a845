package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/catalog"
)

// DeleteProduct removes a product. Only the owner or an admin may delete.
// Cart lines referencing the product are removed by the cascading foreign
// key.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		store := catalog.NewStore(db)
		product, err := store.ByID(uint(id))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if product.UserID != c.GetUint("user_id") && !c.GetBool("is_admin") {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this product"})
			return
		}

		if err := store.Delete(product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
