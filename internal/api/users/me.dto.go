package users

import "coachsport-app/internal/domain/access"

type MeResponse struct {
	User         UserDTO          `json:"user"`
	Subscription *SubscriptionDTO `json:"subscription"`
	Access       AccessDTO        `json:"access"`
}

/* ---------- USER ---------- */

type UserDTO struct {
	ID    uint    `json:"id"`
	Email string  `json:"email"`
	Name  string  `json:"name"`
	Phone *string `json:"phone"`
	Role  string  `json:"role"`
}

/* ---------- SUBSCRIPTION ---------- */

type SubscriptionDTO struct {
	PlanID    string  `json:"plan_id"`
	KnownPlan bool    `json:"known_plan"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	IsActive  bool    `json:"is_active"`
	AutoRenew bool    `json:"auto_renew"`
}

/* ---------- ACCESS ---------- */

type AccessDTO struct {
	HasActiveSubscription bool        `json:"has_active_subscription"`
	IsRecurring           bool        `json:"is_recurring"`
	Landing               string      `json:"landing"`
	Navigation            access.Menu `json:"navigation"`
}
