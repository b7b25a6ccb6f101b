package users

import (
	"time"

	"coachsport-app/internal/domain/access"
	"coachsport-app/internal/domain/plans"
)

// Subscription dates are stored as text exactly as they were received so
// that corrupted rows survive a round trip and degrade at evaluation time.
type Subscription struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_subscriptions_user_id"`
	PlanID    string `gorm:"column:plan_id;type:varchar(20);not null"`
	StartDate string `gorm:"column:start_date"`
	EndDate   string `gorm:"column:end_date"`
	IsActive  bool   `gorm:"column:is_active;not null;default:false"`
	AutoRenew bool   `gorm:"column:auto_renew;not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s Subscription) Snapshot() *access.Subscription {
	return &access.Subscription{
		PlanID:    plans.Parse(s.PlanID),
		StartDate: access.ParseDate(s.StartDate),
		EndDate:   access.ParseDate(s.EndDate),
		IsActive:  s.IsActive,
		AutoRenew: s.AutoRenew,
	}
}

// FormatDate renders t the way subscription rows store it.
func FormatDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
