package access

import "time"

// Reach decides whether u may open d given a precomputed subscription state.
// The checks form a waterfall and their order matters:
//
//  1. open destinations are always allowed
//  2. non-clients bypass every gate
//  3. clients without an active subscription go to their profile
//  4. full-plan destinations send under-provisioned clients home
func Reach(u *User, hasActive bool, sub *Subscription, d Destination) Decision {
	tier := TierOf(d)
	if tier == TierOpen {
		return Allow()
	}
	if !u.IsClient() {
		return Allow()
	}
	if !hasActive {
		return RedirectTo(DestProfile)
	}
	if tier == TierFullPlan && (sub == nil || !sub.PlanID.UnlocksFullTier()) {
		return RedirectTo(DestHome)
	}
	return Allow()
}

// Evaluate is Reach with the subscription state derived from u at now.
func Evaluate(u *User, now time.Time, d Destination) Decision {
	return Reach(u, HasActiveSubscription(u, now), subscriptionOf(u), d)
}
