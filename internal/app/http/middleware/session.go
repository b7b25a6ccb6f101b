package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"coachsport-app/internal/infra/logger"
	"coachsport-app/internal/session"

	"github.com/gin-gonic/gin"
)

const SessionKey = "session"

// LoadSession hydrates the authenticated user from the store on every
// request. While the store is still loading the request is deferred with 503.
func LoadSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(UserIDKey)
		if userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		sess, err := store.Current(c.Request.Context(), userID)
		if errors.Is(err, session.ErrUnknownUser) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}
		if err != nil {
			slog.Error("load session", slog.Uint64("user_id", uint64(userID)), logger.Err(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
			return
		}
		if sess.Loading {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Session is still loading"})
			return
		}

		c.Set(SessionKey, sess)
		c.Next()
	}
}

// CurrentSession returns the session stored by LoadSession.
func CurrentSession(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok && sess != nil
}
