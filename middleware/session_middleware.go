package middleware

import (
	"net/http"

	"github.com/MiniShop-Demo/minishop-demo-backend/models"
	session_store "github.com/MiniShop-Demo/minishop-demo-backend/sessions"
	"github.com/gin-gonic/gin"
)

// SessionCookieName carries the visitor's session id across requests.
const SessionCookieName = "minishop_session"

// SessionMiddleware resolves the request's session from the cookie, creating
// a fresh one when the cookie is missing, unknown or expired. A stale cookie
// is never an error; the visitor silently starts a new demo session.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookieID, _ := c.Cookie(SessionCookieName)

		sess, created := session_store.GetOrCreate(cookieID)
		if created {
			maxAge := int(session_store.TTL().Seconds())
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookieName, sess.ID.String(), maxAge, "/", "", false, true)
		}

		sess.Lock()
		sess.Touch(session_store.TTL())
		sess.Unlock()

		c.Set("session", sess)
		c.Next()
	}
}

// GetSessionFromContext fetches the session attached by SessionMiddleware.
func GetSessionFromContext(c *gin.Context) (*models.Session, bool) {
	value, exists := c.Get("session")
	if !exists {
		return nil, false
	}
	sess, ok := value.(*models.Session)
	return sess, ok
}
