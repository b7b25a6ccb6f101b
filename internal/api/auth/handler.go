package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"coachsport-app/internal/app/http/middleware"
	"coachsport-app/internal/domain/access"
	"coachsport-app/internal/infra/logger"
	"coachsport-app/internal/session"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Sessions *session.Store
}

func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, sess, err := h.Sessions.Login(c.Request.Context(), input.Email)
	if errors.Is(err, session.ErrUnknownUser) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		slog.Error("login", logger.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not open session"})
		return
	}

	landing := access.Landing(sess.User, h.Sessions.Now())
	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"landing": landing.Path(),
	})
}

func (h *Handler) Logout(c *gin.Context) {
	v, _ := c.Get(middleware.ClaimsKey)
	claims, ok := v.(*session.Claims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	h.Sessions.Logout(claims)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
