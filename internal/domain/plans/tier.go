package plans

import (
	"encoding/json"
	"strings"
)

// Plan is a subscription plan id as stored on a subscription record.
type Plan string

// Plan constants (single source of truth)
const (
	Basic Plan = "basic"
	Pro   Plan = "pro"
	Full  Plan = "full"
)

// Parse normalizes a stored or received plan id.
// Unknown values are kept (lower-cased) so they can still be displayed,
// but they never unlock anything beyond the member tier.
func Parse(s string) Plan {
	return Plan(strings.ToLower(strings.TrimSpace(s)))
}

// Known reports whether p is one of the catalogued plans.
func (p Plan) Known() bool {
	switch p {
	case Basic, Pro, Full:
		return true
	}
	return false
}

// UnlocksFullTier reports whether p unlocks full-plan destinations.
// basic and pro currently unlock the same destination set.
func (p Plan) UnlocksFullTier() bool {
	return Parse(string(p)) == Full
}

func (p Plan) String() string {
	return string(p)
}

// UnmarshalJSON normalizes the plan id. Non-string values decode to an empty
// plan instead of failing the surrounding document.
func (p *Plan) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*p = ""
		return nil
	}
	*p = Parse(s)
	return nil
}
