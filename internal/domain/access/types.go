package access

import (
	"encoding/json"
	"strings"

	"coachsport-app/internal/domain/plans"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTrainer Role = "trainer"
	RoleClient  Role = "client"
)

// ParseRole normalizes a stored role. Anything that is not a staff role is a
// client, so unknown data is gated rather than waved through.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleTrainer:
		return RoleTrainer
	default:
		return RoleClient
	}
}

// Subscription is the access-relevant view of a user's subscription.
// AutoRenew is billing only and never affects access.
type Subscription struct {
	PlanID    plans.Plan `json:"planId"`
	StartDate Date       `json:"startDate"`
	EndDate   Date       `json:"endDate"`
	IsActive  bool       `json:"isActive"`
	AutoRenew bool       `json:"autoRenew"`
}

// User is an immutable snapshot handed to the policy for one evaluation.
type User struct {
	ID           string        `json:"id"`
	Role         Role          `json:"role"`
	Subscription *Subscription `json:"subscription,omitempty"`
}

// UnmarshalJSON normalizes the role while decoding a stored snapshot.
func (r *Role) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*r = RoleClient
		return nil
	}
	*r = ParseRole(s)
	return nil
}

// IsClient reports whether u is subject to subscription gating. Roles that
// are not staff roles count as client.
func (u *User) IsClient() bool {
	return u != nil && ParseRole(string(u.Role)) == RoleClient
}

func subscriptionOf(u *User) *Subscription {
	if u == nil {
		return nil
	}
	return u.Subscription
}

type Verdict string

const (
	VerdictAllow    Verdict = "allow"
	VerdictRedirect Verdict = "redirect"
)

// Decision is the outcome of a reachability check. Target is set only when
// Verdict is VerdictRedirect.
type Decision struct {
	Verdict Verdict     `json:"verdict"`
	Target  Destination `json:"target,omitempty"`
}

func Allow() Decision {
	return Decision{Verdict: VerdictAllow}
}

func RedirectTo(target Destination) Decision {
	return Decision{Verdict: VerdictRedirect, Target: target}
}

func (d Decision) Allowed() bool {
	return d.Verdict == VerdictAllow
}
