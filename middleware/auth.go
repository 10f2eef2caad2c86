package middleware

import (
	"net/http"

	"gamecollection/apperrors"
	"gamecollection/services"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session"

// Auth resolves the session cookie into a username and stores it in the
// request context. Requests without a valid session are rejected with 401.
func Auth(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		username, ok := sessions.Lookup(token)
		if !ok {
			abortUnauthorized(c)
			return
		}

		c.Set("username", username)
		c.Set("session_token", token)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  "error",
		"message": apperrors.ErrNotLoggedIn.Error(),
	})
}
