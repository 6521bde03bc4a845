package userControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/auth"
	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/carts"
	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/models"
	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/sessioncart"
)

type SignupInput struct {
	Name     string `json:"name" binding:"required,min=3,max=120"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserInput struct {
	Name *string `json:"name"`
}

// POST /auth/signup
func Signup(db *gorm.DB, sessions *sessioncart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user := models.User{Name: input.Name, Email: input.Email}
		if err := user.SetPassword(input.Password); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		if err := db.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		token, err := auth.IssueUserToken(&user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		mergeStatus := mergeSessionCart(c, db, sessions, user.ID)

		c.JSON(http.StatusCreated, gin.H{
			"user":       user,
			"token":      token,
			"cart_merge": mergeStatus,
		})
	}
}

// POST /auth/login
func Login(db *gorm.DB, sessions *sessioncart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		if !user.CheckPassword(input.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := auth.IssueUserToken(&user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		mergeStatus := mergeSessionCart(c, db, sessions, user.ID)

		c.JSON(http.StatusOK, gin.H{
			"user":       user,
			"token":      token,
			"cart_merge": mergeStatus,
		})
	}
}

// mergeSessionCart folds the visitor's anonymous cart into the account that
// just authenticated. The session cart is cleared only after the merge
// commits; on failure it stays put so a later authentication can retry.
func mergeSessionCart(c *gin.Context, db *gorm.DB, sessions *sessioncart.Store, userID uint) string {
	sessionID := c.GetString("cart_session_id")
	if sessionID == "" {
		return "no-session-cart"
	}

	ctx := c.Request.Context()
	items, err := sessions.Read(ctx, sessionID)
	if err != nil {
		log.Printf("❌ Failed to read session cart %s: %v", sessionID, err)
		return "failed"
	}
	if len(items) == 0 {
		return "empty"
	}

	if err := carts.MergeSessionCart(carts.NewStore(db), userID, items); err != nil {
		log.Printf("❌ Failed to merge session cart %s into user %d: %v", sessionID, userID, err)
		return "failed"
	}

	if err := sessions.Clear(ctx, sessionID); err != nil {
		log.Printf("❌ Failed to clear merged session cart %s: %v", sessionID, err)
	}
	return "merged"
}

// GET /user
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var user models.User
		if err := db.Preload("Products").First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PUT /user
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		if input.Name != nil && *input.Name != "" {
			user.Name = *input.Name
		}
		if err := db.Save(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
