package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePath(t *testing.T) {
	tests := []struct {
		path string
		want Destination
		ok   bool
	}{
		{"/home", DestHome, true},
		{"/home/", DestHome, true},
		{"/exercises", DestExercises, true},
		{"/exercise/42", DestExerciseDetail, true},
		{"/progress?range=week", DestProgress, true},
		{"/routine/7", DestRoutineDetail, true},
		{"/workout/7", DestWorkout, true},
		{"/workout/7/complete", DestWorkoutComplete, true},
		{"/conversation/2", DestConversation, true},
		{"/profile", DestProfile, true},
		{"/subscriptions", DestSubscriptions, true},
		{"/trainer", DestTrainer, true},
		{"/trainer/clients", DestTrainerClients, true},
		{"/trainer/client/3", DestTrainerClientDetail, true},
		{"/admin/exercises", DestAdminExercises, true},
		{"/exercise", "", false},
		{"/exercises/extra", "", false},
		{"/", "", false},
		{"", "", false},
		{"/nowhere", "", false},
	}
	for _, tt := range tests {
		got, ok := ResolvePath(tt.path)
		assert.Equal(t, tt.ok, ok, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}

func TestTierOf(t *testing.T) {
	for _, d := range []Destination{DestProfile, DestSubscriptions, DestSettings, DestHelp, DestPrivacy, DestAbout, DestLogin} {
		assert.Equal(t, TierOpen, TierOf(d), d)
	}
	for _, d := range []Destination{DestExercises, DestExerciseDetail, DestProgress} {
		assert.Equal(t, TierFullPlan, TierOf(d), d)
	}
	for _, d := range []Destination{DestHome, DestRoutines, DestMessages, DestWorkout, DestTrainer, DestAdmin} {
		assert.Equal(t, TierMember, TierOf(d), d)
	}
	assert.Equal(t, TierFullPlan, TierOf(Destination("mystery")))
}

func TestCatalogPatternsResolveToThemselves(t *testing.T) {
	for _, d := range Destinations() {
		got, ok := ResolvePath(d.Path())
		assert.True(t, ok, d)
		assert.Equal(t, d, got)
	}
}

func TestIsActivePath(t *testing.T) {
	assert.True(t, IsActivePath(DestAdmin, "/admin"))
	assert.True(t, IsActivePath(DestAdmin, "/admin/"))
	assert.False(t, IsActivePath(DestAdmin, "/admin/clients"))
	assert.True(t, IsActivePath(DestRoutines, "/routines"))
	assert.False(t, IsActivePath(DestRoutines, "/routine/3"))
	assert.True(t, IsActivePath(DestTrainerClients, "/trainer/clients/extra"))
	assert.False(t, IsActivePath(DestHome, ""))
	assert.False(t, IsActivePath(Destination("nowhere"), "/nowhere"))
}

func TestDestinationLabel(t *testing.T) {
	assert.Equal(t, "Exercises", DestExercises.Label())
	assert.Equal(t, "mystery", Destination("mystery").Label())
	assert.Equal(t, "", Destination("mystery").Path())
}
