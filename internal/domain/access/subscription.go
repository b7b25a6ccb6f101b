package access

import "time"

// HasActiveSubscription reports whether u may use member areas at now.
// Only clients are gated: an absent user or a staff user is always active.
// A client needs a subscription flagged active whose dates parse and whose
// range contains now, both ends inclusive.
func HasActiveSubscription(u *User, now time.Time) bool {
	if !u.IsClient() {
		return true
	}
	sub := u.Subscription
	if sub == nil || !sub.IsActive {
		return false
	}
	start, ok := sub.StartDate.Time()
	if !ok {
		return false
	}
	end, ok := sub.EndDate.Time()
	if !ok {
		return false
	}
	return !now.Before(start) && !now.After(end)
}

// IsRecurring reports whether the subscription renews automatically.
func IsRecurring(u *User) bool {
	sub := subscriptionOf(u)
	return sub != nil && sub.AutoRenew
}
