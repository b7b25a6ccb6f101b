package access

import (
	"slices"
	"strings"
)

// Destination identifies a reachable area of the application.
type Destination string

const (
	DestLogin         Destination = "login"
	DestProfile       Destination = "profile"
	DestSubscriptions Destination = "subscriptions"
	DestSettings      Destination = "settings"
	DestHelp          Destination = "help"
	DestPrivacy       Destination = "privacy"
	DestAbout         Destination = "about"

	DestHome            Destination = "home"
	DestRoutines        Destination = "routines"
	DestRoutineDetail   Destination = "routine-detail"
	DestWorkout         Destination = "workout"
	DestWorkoutComplete Destination = "workout-complete"
	DestMessages        Destination = "messages"
	DestConversation    Destination = "conversation"

	DestExercises      Destination = "exercises"
	DestExerciseDetail Destination = "exercise-detail"
	DestProgress       Destination = "progress"

	DestTrainer              Destination = "trainer"
	DestTrainerClients       Destination = "trainer-clients"
	DestTrainerClientDetail  Destination = "trainer-client-detail"
	DestTrainerRoutineEditor Destination = "trainer-routine-editor"

	DestAdmin          Destination = "admin"
	DestAdminTrainers  Destination = "admin-trainers"
	DestAdminClients   Destination = "admin-clients"
	DestAdminExercises Destination = "admin-exercises"
)

type Tier int

const (
	// TierOpen destinations are reachable regardless of subscription state.
	TierOpen Tier = iota
	// TierMember destinations need an active subscription of any plan.
	TierMember
	// TierFullPlan destinations need an active full-plan subscription.
	TierFullPlan
)

func (t Tier) String() string {
	switch t {
	case TierOpen:
		return "open"
	case TierMember:
		return "member"
	case TierFullPlan:
		return "full_plan"
	}
	return "unknown"
}

// Info describes where a destination lives and how it is gated.
// Pattern segments starting with ':' match any single path segment.
type Info struct {
	Pattern string
	Label   string
	Tier    Tier
}

var catalog = map[Destination]Info{
	DestLogin:         {Pattern: "/login", Label: "Login", Tier: TierOpen},
	DestProfile:       {Pattern: "/profile", Label: "Profile", Tier: TierOpen},
	DestSubscriptions: {Pattern: "/subscriptions", Label: "Subscriptions", Tier: TierOpen},
	DestSettings:      {Pattern: "/settings", Label: "Settings", Tier: TierOpen},
	DestHelp:          {Pattern: "/help", Label: "Help", Tier: TierOpen},
	DestPrivacy:       {Pattern: "/privacy", Label: "Privacy", Tier: TierOpen},
	DestAbout:         {Pattern: "/about", Label: "About", Tier: TierOpen},

	DestHome:            {Pattern: "/home", Label: "Home", Tier: TierMember},
	DestRoutines:        {Pattern: "/routines", Label: "Routines", Tier: TierMember},
	DestRoutineDetail:   {Pattern: "/routine/:id", Label: "Routine", Tier: TierMember},
	DestWorkout:         {Pattern: "/workout/:id", Label: "Workout", Tier: TierMember},
	DestWorkoutComplete: {Pattern: "/workout/:id/complete", Label: "Workout complete", Tier: TierMember},
	DestMessages:        {Pattern: "/messages", Label: "Messages", Tier: TierMember},
	DestConversation:    {Pattern: "/conversation/:userId", Label: "Conversation", Tier: TierMember},

	DestExercises:      {Pattern: "/exercises", Label: "Exercises", Tier: TierFullPlan},
	DestExerciseDetail: {Pattern: "/exercise/:id", Label: "Exercise", Tier: TierFullPlan},
	DestProgress:       {Pattern: "/progress", Label: "Progress", Tier: TierFullPlan},

	DestTrainer:              {Pattern: "/trainer", Label: "Home", Tier: TierMember},
	DestTrainerClients:       {Pattern: "/trainer/clients", Label: "Clients", Tier: TierMember},
	DestTrainerClientDetail:  {Pattern: "/trainer/client/:id", Label: "Client", Tier: TierMember},
	DestTrainerRoutineEditor: {Pattern: "/trainer/routine-editor", Label: "Routines", Tier: TierMember},

	DestAdmin:          {Pattern: "/admin", Label: "Home", Tier: TierMember},
	DestAdminTrainers:  {Pattern: "/admin/trainers", Label: "Trainers", Tier: TierMember},
	DestAdminClients:   {Pattern: "/admin/clients", Label: "Clients", Tier: TierMember},
	DestAdminExercises: {Pattern: "/admin/exercises", Label: "Exercises", Tier: TierMember},
}

// Lookup returns the catalogue entry for d.
func Lookup(d Destination) (Info, bool) {
	info, ok := catalog[d]
	return info, ok
}

// TierOf returns the gating tier of d. Destinations missing from the
// catalogue get the strictest tier.
func TierOf(d Destination) Tier {
	if info, ok := catalog[d]; ok {
		return info.Tier
	}
	return TierFullPlan
}

// Path returns the navigable path of d. Parameterised destinations have no
// single path; their pattern is returned.
func (d Destination) Path() string {
	if info, ok := catalog[d]; ok {
		return info.Pattern
	}
	return ""
}

func (d Destination) Label() string {
	if info, ok := catalog[d]; ok {
		return info.Label
	}
	return string(d)
}

// Destinations lists every catalogued destination in lexical order.
func Destinations() []Destination {
	out := make([]Destination, 0, len(catalog))
	for d := range catalog {
		out = append(out, d)
	}
	slices.Sort(out)
	return out
}

// ResolvePath maps a request path such as "/exercise/42" to its destination.
// Matching is segment-wise and exact in length; trailing slashes are ignored.
func ResolvePath(path string) (Destination, bool) {
	segs := splitPath(path)
	if len(segs) == 0 {
		return "", false
	}
	for d, info := range catalog {
		if matchSegments(splitPath(info.Pattern), segs) {
			return d, true
		}
	}
	return "", false
}

func splitPath(p string) []string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	var segs []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

func matchSegments(pattern, segs []string) bool {
	if len(pattern) != len(segs) {
		return false
	}
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			continue
		}
		if p != segs[i] {
			return false
		}
	}
	return true
}

// IsActivePath reports whether the navigation item for d should be shown as
// current while the user is on currentPath. Role roots match exactly, every
// other item matches its own subtree.
func IsActivePath(d Destination, currentPath string) bool {
	p := d.Path()
	if p == "" || currentPath == "" {
		return false
	}
	if d == DestTrainer || d == DestAdmin {
		return strings.TrimSuffix(currentPath, "/") == p
	}
	return currentPath == p || strings.HasPrefix(currentPath, p+"/")
}
