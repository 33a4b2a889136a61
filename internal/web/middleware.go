package web

import (
	"net/http"
	"strings"

	"pyronix-studio/internal/auth"

	"github.com/gin-gonic/gin"
)

const (
	ctxKeyToken   = "adminToken"
	ctxKeySession = "adminSession"
)

// RequireSession resolves the bearer token into an operator session; without
// one the request ends with 401 and the admin view falls back to the login
// screen.
func RequireSession(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session requise"})
			return
		}

		session, err := authService.Lookup(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expirée"})
			return
		}

		c.Set(ctxKeyToken, token)
		c.Set(ctxKeySession, session)
		c.Next()
	}
}
