package screens

import (
	"net/http"

	"coachsport-app/internal/app/http/middleware"
	"coachsport-app/internal/domain/access"

	"github.com/gin-gonic/gin"
)

// Show renders the placeholder payload of a guarded screen. The screen
// content itself lives in the client application.
func Show(c *gin.Context) {
	v, _ := c.Get(middleware.DestinationKey)
	dest, _ := v.(access.Destination)
	c.JSON(http.StatusOK, gin.H{
		"destination": dest,
		"label":       dest.Label(),
		"params":      paramsOf(c),
	})
}

func paramsOf(c *gin.Context) map[string]string {
	out := make(map[string]string, len(c.Params))
	for _, p := range c.Params {
		out[p.Key] = p.Value
	}
	return out
}
