package users

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachsport-app/internal/domain/access"
	"coachsport-app/internal/domain/plans"
)

func TestUserSnapshot(t *testing.T) {
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	u := User{
		ID:   3,
		Role: "Client",
		Subscription: &Subscription{
			PlanID:    "PRO",
			StartDate: FormatDate(start),
			EndDate:   "",
			IsActive:  true,
			AutoRenew: true,
		},
	}

	snap := u.Snapshot()
	assert.Equal(t, "3", snap.ID)
	assert.Equal(t, access.RoleClient, snap.Role)
	require.NotNil(t, snap.Subscription)
	assert.Equal(t, plans.Pro, snap.Subscription.PlanID)
	assert.True(t, snap.Subscription.AutoRenew)

	got, ok := snap.Subscription.StartDate.Time()
	require.True(t, ok)
	assert.True(t, start.Equal(got))
	assert.False(t, snap.Subscription.EndDate.Valid())
}

func TestUserSnapshot_NoSubscription(t *testing.T) {
	snap := User{ID: 1, Role: "admin"}.Snapshot()
	assert.Equal(t, access.RoleAdmin, snap.Role)
	assert.Nil(t, snap.Subscription)
}

func TestHasRoleConflict(t *testing.T) {
	assert.True(t, User{Role: "client", IsTrainer: true}.HasRoleConflict())
	assert.True(t, User{Role: "", IsTrainer: true}.HasRoleConflict())
	assert.False(t, User{Role: "trainer", IsTrainer: true}.HasRoleConflict())
	assert.False(t, User{Role: "admin", IsTrainer: true}.HasRoleConflict())
	assert.False(t, User{Role: "client"}.HasRoleConflict())
}
