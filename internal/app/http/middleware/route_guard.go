package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"coachsport-app/internal/domain/access"

	"github.com/gin-gonic/gin"
)

const DestinationKey = "destination"

// RouteGuard enforces the access policy for the requested path. Allowed
// requests continue; denied ones are answered with a redirect to the
// destination the policy names instead of an error.
func RouteGuard(now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := CurrentSession(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		path := c.Request.URL.Path
		dest, known := access.ResolvePath(path)
		if !known {
			// unknown paths are never waved through
			redirect(c, access.RedirectTo(access.DestHome))
			return
		}

		decision := access.Evaluate(sess.User, now(), dest)
		if !decision.Allowed() {
			slog.Debug("route redirected",
				slog.String("user_id", sess.User.ID),
				slog.String("path", path),
				slog.String("destination", string(dest)),
				slog.String("target", string(decision.Target)))
			redirect(c, decision)
			return
		}

		c.Set(DestinationKey, dest)
		c.Next()
	}
}

func redirect(c *gin.Context, d access.Decision) {
	location := d.Target.Path()
	c.Header("Location", location)
	c.AbortWithStatusJSON(http.StatusTemporaryRedirect, gin.H{
		"verdict":  d.Verdict,
		"target":   d.Target,
		"location": location,
	})
}
