package access

import (
	"time"

	"coachsport-app/internal/domain/plans"
)

var (
	testStart = time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	testEnd   = time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	testNow   = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
)

func activeSub(plan plans.Plan) *Subscription {
	return &Subscription{
		PlanID:    plan,
		StartDate: DateOf(testStart),
		EndDate:   DateOf(testEnd),
		IsActive:  true,
	}
}

func client(sub *Subscription) *User {
	return &User{ID: "3", Role: RoleClient, Subscription: sub}
}

func staff() []*User {
	return []*User{
		{ID: "1", Role: RoleAdmin},
		{ID: "2", Role: RoleTrainer},
		{ID: "6", Role: RoleTrainer, Subscription: &Subscription{PlanID: plans.Basic}},
	}
}
