package plans

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Plan
	}{
		{"full", Full},
		{" FULL ", Full},
		{"Pro", Pro},
		{"basic", Basic},
		{"gold", Plan("gold")},
		{"", Plan("")},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Parse(tt.in), "Parse(%q)", tt.in)
	}
}

func TestKnown(t *testing.T) {
	assert.True(t, Basic.Known())
	assert.True(t, Pro.Known())
	assert.True(t, Full.Known())
	assert.False(t, Plan("gold").Known())
	assert.False(t, Plan("").Known())
}

func TestUnlocksFullTier(t *testing.T) {
	assert.True(t, Full.UnlocksFullTier())
	assert.True(t, Plan(" Full").UnlocksFullTier())
	assert.False(t, Pro.UnlocksFullTier())
	assert.False(t, Basic.UnlocksFullTier())
	assert.False(t, Plan("premium").UnlocksFullTier())
}

func TestUnmarshalJSON(t *testing.T) {
	var v struct {
		Plan Plan `json:"planId"`
	}
	assert.NoError(t, json.Unmarshal([]byte(`{"planId":" Full "}`), &v))
	assert.Equal(t, Full, v.Plan)

	assert.NoError(t, json.Unmarshal([]byte(`{"planId":3}`), &v))
	assert.Equal(t, Plan(""), v.Plan)
}
