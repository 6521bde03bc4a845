package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/sessioncart"
)

// CartSessionCookie names the cookie carrying the anonymous cart session id.
const CartSessionCookie = "cart_session"

// CartSession makes sure every visitor carries a cart session id so the
// anonymous cart has a stable key before (and until) login. The id is stored
// on the context as "cart_session_id".
func CartSession(c *gin.Context) {
	sid, err := c.Cookie(CartSessionCookie)
	if err != nil || sid == "" {
		sid = uuid.NewString()
		c.SetCookie(CartSessionCookie, sid, int(sessioncart.TTL.Seconds()), "/", "", false, true)
	}
	c.Set("cart_session_id", sid)
	c.Next()
}
