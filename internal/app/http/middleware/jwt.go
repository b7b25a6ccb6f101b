package middleware

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"coachsport-app/internal/domain/access"
	"coachsport-app/internal/session"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	ClaimsKey = "claims"
	UserIDKey = "user_id"
	RoleKey   = "role"
	EmailKey  = "email"
)

func AuthMiddleware(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || strings.TrimSpace(tokenString) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Bearer token malformed"})
			return
		}

		claims, err := store.Authenticate(strings.TrimSpace(tokenString))
		switch {
		case errors.Is(err, session.ErrRevoked):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session has been closed"})
			return
		case errors.Is(err, session.ErrExpired):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
			return
		case err != nil:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(UserIDKey, userID)
		c.Set(RoleKey, string(access.ParseRole(claims.Role)))
		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}

// RequireRole lets through only the listed roles. It reads the role of the
// loaded session when there is one, so a role changed in storage applies
// before the token expires.
func RequireRole(roles ...access.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var role access.Role
		if sess, ok := CurrentSession(c); ok && sess.User != nil {
			role = sess.User.Role
		} else if value, ok := c.Get(RoleKey); ok {
			s, _ := value.(string)
			role = access.ParseRole(s)
		} else {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Role not found in token"})
			return
		}

		if !slices.Contains(roles, role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		c.Next()
	}
}
