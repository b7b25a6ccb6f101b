package admin

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"coachsport-app/internal/domain/access"
	"coachsport-app/internal/domain/plans"
	"coachsport-app/internal/domain/users"
	"coachsport-app/internal/infra/logger"
	"coachsport-app/internal/session"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	DB       *gorm.DB
	Sessions *session.Store
}

type AdminUser struct {
	ID                    uint    `json:"id"`
	Name                  string  `json:"name"`
	Email                 string  `json:"email"`
	Role                  string  `json:"role"`
	RoleConflict          bool    `json:"role_conflict,omitempty"`
	PlanID                *string `json:"plan_id,omitempty"`
	SubscriptionStart     *string `json:"subscription_start,omitempty"`
	SubscriptionEnd       *string `json:"subscription_end,omitempty"`
	SubscriptionFlag      bool    `json:"subscription_flag"`
	HasActiveSubscription bool    `json:"has_active_subscription"`
	Landing               string  `json:"landing"`
}

type AdminStats struct {
	TotalUsers          int            `json:"total_users"`
	UsersPerRole        map[string]int `json:"users_per_role"`
	ClientsPerPlan      map[string]int `json:"clients_per_plan"`
	ActiveSubscriptions int            `json:"active_subscriptions"`
	RoleConflicts       int            `json:"role_conflicts"`
}

func (h *Handler) toAdminUser(u users.User) AdminUser {
	snap := u.Snapshot()
	now := h.Sessions.Now()
	out := AdminUser{
		ID:                    u.ID,
		Name:                  u.Name,
		Email:                 u.Email,
		Role:                  string(snap.Role),
		RoleConflict:          u.HasRoleConflict(),
		HasActiveSubscription: access.HasActiveSubscription(snap, now),
		Landing:               access.Landing(snap, now).Path(),
	}
	if u.Subscription != nil {
		plan := plans.Parse(u.Subscription.PlanID).String()
		out.PlanID = &plan
		out.SubscriptionStart = &u.Subscription.StartDate
		out.SubscriptionEnd = &u.Subscription.EndDate
		out.SubscriptionFlag = u.Subscription.IsActive
	}
	return out
}

func (h *Handler) AdminDashboard(c *gin.Context) {
	var all []users.User
	if err := h.DB.Preload("Subscription").Find(&all).Error; err != nil {
		slog.Error("admin dashboard", logger.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	now := h.Sessions.Now()
	stats := AdminStats{
		TotalUsers:     len(all),
		UsersPerRole:   map[string]int{},
		ClientsPerPlan: map[string]int{},
	}
	for _, u := range all {
		snap := u.Snapshot()
		stats.UsersPerRole[string(snap.Role)]++
		if u.HasRoleConflict() {
			stats.RoleConflicts++
		}
		if !snap.IsClient() {
			continue
		}
		plan := "No Plan"
		if snap.Subscription != nil {
			plan = snap.Subscription.PlanID.String()
		}
		stats.ClientsPerPlan[plan]++
		if access.HasActiveSubscription(snap, now) {
			stats.ActiveSubscriptions++
		}
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) ListAllUsers(c *gin.Context) {
	var all []users.User
	if err := h.DB.Preload("Subscription").Order("id").Find(&all).Error; err != nil {
		slog.Error("list users", logger.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	adminUsers := make([]AdminUser, 0, len(all))
	for _, u := range all {
		adminUsers = append(adminUsers, h.toAdminUser(u))
	}
	c.JSON(http.StatusOK, adminUsers)
}

func (h *Handler) GetUserDetails(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.toAdminUser(*user))
}

type subscriptionInput struct {
	PlanID    string      `json:"planId" binding:"required,oneof=basic pro full"`
	StartDate access.Date `json:"startDate"`
	EndDate   access.Date `json:"endDate"`
	IsActive  bool        `json:"isActive"`
	AutoRenew bool        `json:"autoRenew"`
}

// PutSubscription replaces the subscription of a client. Dates that cannot
// be read are rejected here rather than stored.
func (h *Handler) PutSubscription(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}
	if access.ParseRole(user.Role) != access.RoleClient {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only clients carry subscriptions"})
		return
	}

	var input subscriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, okStart := input.StartDate.Time()
	end, okEnd := input.EndDate.Time()
	if !okStart || !okEnd {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate and endDate must be valid dates"})
		return
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must not be before startDate"})
		return
	}

	sub := users.Subscription{
		UserID:    user.ID,
		PlanID:    plans.Parse(input.PlanID).String(),
		StartDate: users.FormatDate(start),
		EndDate:   users.FormatDate(end),
		IsActive:  input.IsActive,
		AutoRenew: input.AutoRenew,
	}
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&users.Subscription{}).Error; err != nil {
			return err
		}
		return tx.Create(&sub).Error
	})
	if err != nil {
		slog.Error("replace subscription", slog.Uint64("user_id", uint64(user.ID)), logger.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save subscription"})
		return
	}

	slog.Info("subscription replaced",
		slog.Uint64("user_id", uint64(user.ID)),
		slog.String("plan", sub.PlanID),
		slog.Bool("active", sub.IsActive))
	user.Subscription = &sub
	c.JSON(http.StatusOK, h.toAdminUser(*user))
}

func (h *Handler) DeleteSubscription(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}
	if err := h.DB.Where("user_id = ?", user.ID).Delete(&users.Subscription{}).Error; err != nil {
		slog.Error("delete subscription", slog.Uint64("user_id", uint64(user.ID)), logger.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subscription"})
		return
	}
	user.Subscription = nil
	c.JSON(http.StatusOK, h.toAdminUser(*user))
}

func (h *Handler) loadUser(c *gin.Context) (*users.User, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return nil, false
	}

	var user users.User
	err = h.DB.Preload("Subscription").First(&user, uint(id)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return nil, false
	}
	if err != nil {
		slog.Error("load user", slog.Uint64("user_id", id), logger.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return nil, false
	}
	return &user, true
}
