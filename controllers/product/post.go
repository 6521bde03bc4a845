package productcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/catalog"
	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/models"
	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/storage"
)

// CreateProduct creates a new product listing with an optional image upload.
// The slug is assigned from the title at save time.
func CreateProduct(db *gorm.DB, images *storage.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		// Required fields
		title := strings.TrimSpace(c.PostForm("title"))
		description := strings.TrimSpace(c.PostForm("description"))
		priceStr := c.PostForm("price_cents")
		if title == "" || description == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title, description and price_cents are required"})
			return
		}

		priceCents, err := strconv.ParseInt(priceStr, 10, 64)
		if err != nil || priceCents < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price_cents"})
			return
		}

		// Optional fields
		size := strings.TrimSpace(c.PostForm("size"))

		var imagePath string
		if file, err := c.FormFile("image"); err == nil {
			imagePath, err = images.Save(file)
			if err != nil {
				status := http.StatusInternalServerError
				if errors.Is(err, storage.ErrTooLarge) || errors.Is(err, storage.ErrNotAllowed) {
					status = http.StatusBadRequest
				}
				c.JSON(status, gin.H{"error": "Failed to store image: " + err.Error()})
				return
			}
		}

		product := models.Product{
			UserID:      userID,
			Title:       title,
			Description: description,
			PriceCents:  priceCents,
			Size:        size,
			Image:       imagePath,
		}

		if err := catalog.NewStore(db).Create(&product); err != nil {
			if errors.Is(err, catalog.ErrSlugConflict) {
				c.JSON(http.StatusConflict, gin.H{"error": "Could not assign a unique slug, try again"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
