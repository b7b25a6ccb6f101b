package access

import (
	"slices"
	"time"
)

// MenuPageSize is how many entries fit on the first navigation page.
const MenuPageSize = 4

var (
	clientBaseMenu = []Destination{DestHome, DestRoutines, DestProfile}
	trainerMenu    = []Destination{DestTrainer, DestTrainerClients, DestTrainerRoutineEditor, DestProfile, DestSettings}
	adminMenu      = []Destination{DestAdmin, DestAdminTrainers, DestAdminClients, DestAdminExercises, DestProfile, DestSettings}
)

// fullPlanSlots are inserted into the client menu in this order, each at its
// index in the menu built so far.
var fullPlanSlots = []struct {
	index int
	dest  Destination
}{
	{1, DestExercises},
	{3, DestProgress},
}

// VisibleDestinations returns the ordered menu for u. It is rebuilt on every
// call; nothing is cached between snapshots.
func VisibleDestinations(u *User, hasActive bool, sub *Subscription) []Destination {
	if u == nil {
		return nil
	}
	switch ParseRole(string(u.Role)) {
	case RoleAdmin:
		return slices.Clone(adminMenu)
	case RoleTrainer:
		return slices.Clone(trainerMenu)
	}

	if !hasActive {
		return []Destination{DestProfile}
	}
	menu := slices.Clone(clientBaseMenu)
	if sub != nil && sub.PlanID.UnlocksFullTier() {
		for _, slot := range fullPlanSlots {
			menu = slices.Insert(menu, min(slot.index, len(menu)), slot.dest)
		}
	}
	return menu
}

// Paginate splits dests into the first page and the overflow page.
func Paginate(dests []Destination, size int) (first, overflow []Destination) {
	if size <= 0 || len(dests) <= size {
		return slices.Clone(dests), nil
	}
	return slices.Clone(dests[:size]), slices.Clone(dests[size:])
}

type MenuItem struct {
	Destination Destination `json:"destination"`
	Path        string      `json:"path"`
	Label       string      `json:"label"`
	Active      bool        `json:"active"`
}

type Menu struct {
	First    []MenuItem `json:"first"`
	Overflow []MenuItem `json:"overflow"`
	HasMore  bool       `json:"has_more"`
}

// BuildMenu derives the paged menu for u at now, marking the entry matching
// currentPath as active.
func BuildMenu(u *User, now time.Time, currentPath string) Menu {
	dests := VisibleDestinations(u, HasActiveSubscription(u, now), subscriptionOf(u))
	first, overflow := Paginate(dests, MenuPageSize)
	return Menu{
		First:    menuItems(first, currentPath),
		Overflow: menuItems(overflow, currentPath),
		HasMore:  len(overflow) > 0,
	}
}

func menuItems(dests []Destination, currentPath string) []MenuItem {
	items := make([]MenuItem, 0, len(dests))
	for _, d := range dests {
		items = append(items, MenuItem{
			Destination: d,
			Path:        d.Path(),
			Label:       d.Label(),
			Active:      IsActivePath(d, currentPath),
		})
	}
	return items
}

// Landing is where a freshly loaded session should start.
func Landing(u *User, now time.Time) Destination {
	switch {
	case u == nil:
		return DestLogin
	case ParseRole(string(u.Role)) == RoleAdmin:
		return DestAdmin
	case ParseRole(string(u.Role)) == RoleTrainer:
		return DestTrainer
	case HasActiveSubscription(u, now):
		return DestHome
	default:
		return DestProfile
	}
}
