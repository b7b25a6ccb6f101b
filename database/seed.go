package database

import (
	"errors"
	"fmt"
	"time"

	"coachsport-app/internal/domain/plans"
	"coachsport-app/internal/domain/users"

	"gorm.io/gorm"
)

// Fixtures are the demo accounts of the coaching app. Client subscriptions
// are laid out around now so every plan is in effect after seeding.
func Fixtures(now time.Time) []users.User {
	day := 24 * time.Hour
	sub := func(plan plans.Plan, from, to time.Duration, autoRenew bool) *users.Subscription {
		return &users.Subscription{
			PlanID:    plan.String(),
			StartDate: users.FormatDate(now.Add(from)),
			EndDate:   users.FormatDate(now.Add(to)),
			IsActive:  true,
			AutoRenew: autoRenew,
		}
	}

	return []users.User{
		{Email: "admin@coachsport.dev", Name: "Leo Segovia", Phone: "+34 600 123 456", Role: "admin", IsTrainer: true},
		{Email: "trainer@coachsport.dev", Name: "Ana García", Phone: "+34 600 234 567", Role: "trainer", IsTrainer: true},
		{Email: "cliente1@coachsport.dev", Name: "María López", Phone: "+34 600 345 678", Role: "client",
			Subscription: sub(plans.Pro, -14*day, 16*day, true)},
		{Email: "cliente2@coachsport.dev", Name: "Juan Pérez", Phone: "+34 600 456 789", Role: "client",
			Subscription: sub(plans.Full, -20*day, 10*day, true)},
		{Email: "cliente3@coachsport.dev", Name: "Sofia Martínez", Phone: "+34 600 567 890", Role: "client",
			Subscription: sub(plans.Basic, -4*day, 26*day, false)},
	}
}

// Seed inserts the fixtures that are not present yet, matched by email.
// It returns how many users were created.
func Seed(db *gorm.DB, now time.Time) (int, error) {
	created := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, u := range Fixtures(now) {
			var existing users.User
			err := tx.Where("email = ?", u.Email).First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("lookup %s: %w", u.Email, err)
			}
			if err := tx.Create(&u).Error; err != nil {
				return fmt.Errorf("create %s: %w", u.Email, err)
			}
			created++
		}
		return nil
	})
	return created, err
}
