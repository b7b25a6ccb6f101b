package users

import (
	"time"

	"coachsport-app/internal/domain/access"
	"coachsport-app/internal/domain/users"
)

func BuildUserDTO(u *users.User, snap *access.User) UserDTO {
	return UserDTO{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Phone: stringPtrIfNotEmpty(u.Phone),
		Role:  string(snap.Role),
	}
}

// BuildSubscriptionDTO reports dates that failed to parse as null.
func BuildSubscriptionDTO(snap *access.User) *SubscriptionDTO {
	if snap == nil || snap.Subscription == nil {
		return nil
	}
	sub := snap.Subscription
	return &SubscriptionDTO{
		PlanID:    sub.PlanID.String(),
		KnownPlan: sub.PlanID.Known(),
		StartDate: stringPtrIfNotEmpty(sub.StartDate.String()),
		EndDate:   stringPtrIfNotEmpty(sub.EndDate.String()),
		IsActive:  sub.IsActive,
		AutoRenew: sub.AutoRenew,
	}
}

func BuildAccessDTO(snap *access.User, now time.Time, currentPath string) AccessDTO {
	return AccessDTO{
		HasActiveSubscription: access.HasActiveSubscription(snap, now),
		IsRecurring:           access.IsRecurring(snap),
		Landing:               access.Landing(snap, now).Path(),
		Navigation:            access.BuildMenu(snap, now, currentPath),
	}
}

func stringPtrIfNotEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
