package access

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"time"
)

// Date is a subscription boundary decoded leniently. It holds either a valid
// instant or nothing; malformed input produces an invalid Date, never an error.
type Date struct {
	t     time.Time
	valid bool
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	time.DateOnly,
	time.RFC1123Z,
	time.RFC1123,
}

// DateOf wraps an already parsed instant. The zero time is invalid.
func DateOf(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	return Date{t: t, valid: true}
}

// ParseDate accepts time values, date strings and epoch milliseconds.
func ParseDate(v any) Date {
	switch x := v.(type) {
	case nil:
		return Date{}
	case Date:
		return x
	case *Date:
		if x == nil {
			return Date{}
		}
		return *x
	case time.Time:
		return DateOf(x)
	case *time.Time:
		if x == nil {
			return Date{}
		}
		return DateOf(*x)
	case string:
		return parseDateString(x)
	case *string:
		if x == nil {
			return Date{}
		}
		return parseDateString(*x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return Date{}
		}
		return fromMillis(f)
	case float64:
		return fromMillis(x)
	case float32:
		return fromMillis(float64(x))
	case int:
		return fromMillis(float64(x))
	case int64:
		return fromMillis(float64(x))
	default:
		return Date{}
	}
}

func parseDateString(s string) Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t)
		}
	}
	return Date{}
}

// fromMillis follows the epoch-milliseconds convention of browser clients.
func fromMillis(ms float64) Date {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > 8.64e15 {
		return Date{}
	}
	return DateOf(time.UnixMilli(int64(ms)).UTC())
}

// Time returns the instant and whether the date is valid.
func (d Date) Time() (time.Time, bool) {
	return d.t, d.valid
}

func (d Date) Valid() bool {
	return d.valid
}

// String renders valid dates as RFC 3339 and invalid ones as "".
func (d Date) String() string {
	if !d.valid {
		return ""
	}
	return d.t.UTC().Format(time.RFC3339Nano)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if !d.valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON never fails: anything that is not a date string or a number
// decodes to an invalid Date.
func (d *Date) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*d = Date{}
	if len(b) == 0 {
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		*d = parseDateString(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		*d = ParseDate(json.Number(b))
	}
	return nil
}
