package productcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/catalog"
	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/storage"
)

// UpdateProduct updates an existing product by ID. Only the owner or an
// admin may edit. The slug never changes on edit unless the request sets
// regenerate_slug=true.
func UpdateProduct(db *gorm.DB, images *storage.ImageStore) gin.HandlerFunc {
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

		// Optional field updates
		if v := strings.TrimSpace(c.PostForm("title")); v != "" {
			product.Title = v
		}
		if v := strings.TrimSpace(c.PostForm("description")); v != "" {
			product.Description = v
		}
		if v := c.PostForm("price_cents"); v != "" {
			priceCents, err := strconv.ParseInt(v, 10, 64)
			if err != nil || priceCents < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price_cents"})
				return
			}
			product.PriceCents = priceCents
		}
		if v := strings.TrimSpace(c.PostForm("size")); v != "" {
			product.Size = v
		}

		// Optional replacement image
		if file, err := c.FormFile("image"); err == nil {
			imagePath, err := images.Save(file)
			if err != nil {
				status := http.StatusInternalServerError
				if errors.Is(err, storage.ErrTooLarge) || errors.Is(err, storage.ErrNotAllowed) {
					status = http.StatusBadRequest
				}
				c.JSON(status, gin.H{"error": "Failed to store image: " + err.Error()})
				return
			}
			product.Image = imagePath
		}

		regenerateSlug, _ := strconv.ParseBool(c.PostForm("regenerate_slug"))

		if err := store.Update(product, regenerateSlug); err != nil {
			if errors.Is(err, catalog.ErrSlugConflict) {
				c.JSON(http.StatusConflict, gin.H{"error": "Could not assign a unique slug, try again"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
