package gateway

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		payload interface{}
	}{
		{"scalar", "hi"},
		{"list", []string{"a", "b"}},
		{"mapping", map[string]interface{}{"message": "done"}},
		{"nil payload", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := Wrap(tt.payload)
			assert.Equal(t, ContentTypeJSON, env.Type)
			assert.Equal(t, tt.payload, env.Data)
		})
	}
}

func TestEnvelope_JSON(t *testing.T) {
	env := Wrap(map[string]interface{}{"message": "Tags applied"})

	payload, err := env.JSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
	assert.Equal(t, "application/json", decoded["type"])
	assert.Equal(t, map[string]interface{}{"message": "Tags applied"}, decoded["data"])
}

func TestEnvelope_JSONUnserializablePayload(t *testing.T) {
	env := Wrap(make(chan int))

	_, err := env.JSON()
	assert.Error(t, err)
}
