package navigation

import (
	"net/http"
	"time"

	"coachsport-app/internal/app/http/middleware"
	"coachsport-app/internal/domain/access"
	"coachsport-app/internal/session"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Sessions *session.Store
}

type DecisionResponse struct {
	Path        string             `json:"path"`
	Destination access.Destination `json:"destination,omitempty"`
	Tier        string             `json:"tier,omitempty"`
	access.Decision
	Location string `json:"location,omitempty"`
}

func decisionResponse(path string, dest access.Destination, d access.Decision) DecisionResponse {
	resp := DecisionResponse{Path: path, Destination: dest, Decision: d}
	if dest != "" {
		resp.Tier = access.TierOf(dest).String()
	}
	if !d.Allowed() {
		resp.Location = d.Target.Path()
	}
	return resp
}

// GetNavigation returns the paged menu of the session user.
func (h *Handler) GetNavigation(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, access.BuildMenu(sess.User, h.Sessions.Now(), c.Query("path")))
}

// CheckPath answers what the route guard would do for ?path= without
// redirecting.
func (h *Handler) CheckPath(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	path := c.Query("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing path"})
		return
	}

	dest, known := access.ResolvePath(path)
	if !known {
		c.JSON(http.StatusOK, decisionResponse(path, "", access.RedirectTo(access.DestHome)))
		return
	}
	c.JSON(http.StatusOK, decisionResponse(path, dest, access.Evaluate(sess.User, h.Sessions.Now(), dest)))
}

type evaluateRequest struct {
	User        *access.User       `json:"user"`
	Destination access.Destination `json:"destination"`
	Path        string             `json:"path"`
	Now         *time.Time         `json:"now"`
}

type evaluateResponse struct {
	HasActiveSubscription bool                 `json:"has_active_subscription"`
	Decision              *DecisionResponse    `json:"decision,omitempty"`
	Visible               []access.Destination `json:"visible"`
	Landing               access.Destination   `json:"landing"`
}

// EvaluateSnapshot runs the policy over a snapshot supplied by the caller,
// for clients that hold their own persisted copy of the user. Dates inside
// the snapshot may use any encoding; bad ones count as no subscription.
func (h *Handler) EvaluateSnapshot(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := h.Sessions.Now()
	if req.Now != nil {
		now = *req.Now
	}

	hasActive := access.HasActiveSubscription(req.User, now)
	var sub *access.Subscription
	if req.User != nil {
		sub = req.User.Subscription
	}
	resp := evaluateResponse{
		HasActiveSubscription: hasActive,
		Visible:               access.VisibleDestinations(req.User, hasActive, sub),
		Landing:               access.Landing(req.User, now),
	}
	if resp.Visible == nil {
		resp.Visible = []access.Destination{}
	}

	dest := req.Destination
	path := req.Path
	if dest == "" && path != "" {
		resolved, known := access.ResolvePath(path)
		if !known {
			d := decisionResponse(path, "", access.RedirectTo(access.DestHome))
			resp.Decision = &d
			c.JSON(http.StatusOK, resp)
			return
		}
		dest = resolved
	}
	if dest != "" {
		d := decisionResponse(path, dest, access.Reach(req.User, hasActive, sub, dest))
		resp.Decision = &d
	}
	c.JSON(http.StatusOK, resp)
}
