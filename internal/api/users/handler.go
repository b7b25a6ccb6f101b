package users

import (
	"net/http"

	"coachsport-app/internal/app/http/middleware"
	"coachsport-app/internal/session"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Sessions *session.Store
}

// GetCurrentUser returns the session user together with everything the
// client needs to render its shell: subscription, landing and menu.
func (h *Handler) GetCurrentUser(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp := MeResponse{
		User:         BuildUserDTO(sess.Record, sess.User),
		Subscription: BuildSubscriptionDTO(sess.User),
		Access:       BuildAccessDTO(sess.User, h.Sessions.Now(), c.Query("path")),
	}
	c.JSON(http.StatusOK, resp)
}
