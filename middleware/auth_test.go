package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/auth"
	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/models"
)

func authRouter() (*gin.Engine, *gin.Context) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var captured gin.Context
	r.GET("/protected", RequireUser, func(c *gin.Context) {
		captured = *c.Copy()
		c.Status(http.StatusOK)
	})
	return r, &captured
}

func TestRequireUserAcceptsIssuedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &models.User{ID: 42, Email: "ana@example.com", IsAdmin: true}
	token, err := auth.IssueUserToken(user)
	require.NoError(t, err)

	r, captured := authRouter()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, uint(42), captured.GetUint("user_id"))
	require.True(t, captured.GetBool("is_admin"))
}

func TestRequireUserRejectsMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	r, _ := authRouter()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireUserRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := auth.IssueUserToken(&models.User{ID: 1, Email: "ana@example.com"})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "a-different-secret")
	r, _ := authRouter()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
