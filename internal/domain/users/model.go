package users

import (
	"strconv"
	"time"

	"coachsport-app/internal/domain/access"
)

type User struct {
	ID    uint   `gorm:"primaryKey"`
	Email string `gorm:"not null;uniqueIndex:idx_users_email"`
	Name  string
	Phone string
	Role  string `gorm:"type:varchar(20);not null;default:'client'"`

	// Legacy flag from the first client app. Role is authoritative; the column
	// is only read to report conflicting rows.
	IsTrainer bool `gorm:"column:is_trainer;not null;default:false"`

	TrainerID *uint `gorm:"column:trainer_id"`

	Subscription *Subscription `gorm:"foreignKey:UserID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot builds the immutable view the access policy evaluates.
func (u User) Snapshot() *access.User {
	snap := &access.User{
		ID:   strconv.FormatUint(uint64(u.ID), 10),
		Role: access.ParseRole(u.Role),
	}
	if u.Subscription != nil {
		snap.Subscription = u.Subscription.Snapshot()
	}
	return snap
}

// HasRoleConflict reports rows flagged as trainer whose role says client.
func (u User) HasRoleConflict() bool {
	return u.IsTrainer && access.ParseRole(u.Role) == access.RoleClient
}
