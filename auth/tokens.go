package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/models"
)

// IssueUserToken signs an HS256 JWT for an authenticated user.
func IssueUserToken(u *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  u.ID,
		"email":    u.Email,
		"is_admin": u.IsAdmin,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
