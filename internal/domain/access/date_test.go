package access

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	ts := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		in    any
		want  time.Time
		valid bool
	}{
		{"time value", ts, ts, true},
		{"time pointer", &ts, ts, true},
		{"nil time pointer", (*time.Time)(nil), time.Time{}, false},
		{"zero time", time.Time{}, time.Time{}, false},
		{"date only", "2024-11-01", ts, true},
		{"iso with millis", "2024-11-01T00:00:00.000Z", ts, true},
		{"iso with offset", "2024-11-01T02:00:00+02:00", ts, true},
		{"padded", "  2024-11-01  ", ts, true},
		{"local datetime", "2024-11-01T00:00:00", ts, true},
		{"epoch millis", float64(ts.UnixMilli()), ts, true},
		{"epoch millis int64", ts.UnixMilli(), ts, true},
		{"json number", json.Number("1730419200000"), ts, true},
		{"empty string", "", time.Time{}, false},
		{"garbage", "next tuesday", time.Time{}, false},
		{"NaN", math.NaN(), time.Time{}, false},
		{"infinite", math.Inf(1), time.Time{}, false},
		{"bool", true, time.Time{}, false},
		{"map", map[string]any{"$date": "2024-11-01"}, time.Time{}, false},
		{"nil", nil, time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.in).Time()
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.True(t, tt.want.Equal(got), "got %s", got)
			}
		})
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var sub Subscription
	doc := `{
		"planId": "full",
		"startDate": "2024-11-01T00:00:00.000Z",
		"endDate": 1733011200000,
		"isActive": true,
		"autoRenew": true
	}`
	require.NoError(t, json.Unmarshal([]byte(doc), &sub))
	assert.True(t, sub.StartDate.Valid())
	assert.True(t, sub.EndDate.Valid())
	assert.Equal(t, "2024-12-01T00:00:00Z", sub.EndDate.String())

	for _, raw := range []string{`null`, `""`, `"garbage"`, `{}`, `[1,2]`, `true`} {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(raw), &d), raw)
		assert.False(t, d.Valid(), raw)
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(DateOf(time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-11-01T00:00:00Z"`, string(b))

	b, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestUser_UnmarshalJSON(t *testing.T) {
	var u User
	doc := `{"id":"5","role":"Trainer","subscription":{"planId":"basic","startDate":{},"endDate":""}}`
	require.NoError(t, json.Unmarshal([]byte(doc), &u))
	assert.Equal(t, RoleTrainer, u.Role)
	require.NotNil(t, u.Subscription)
	assert.False(t, u.Subscription.StartDate.Valid())

	require.NoError(t, json.Unmarshal([]byte(`{"id":"6","role":42}`), &u))
	assert.Equal(t, RoleClient, u.Role)
}
