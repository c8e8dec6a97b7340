package provider_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxes/internal/domains/workshop/provider"
)

func TestAddress_UnmarshalObject(t *testing.T) {
	payload := `{
		"id": 1,
		"name": "Taller Norte",
		"active": true,
		"address": {
			"name": "Av. Siempre Viva 742",
			"formatted_address": "Av. Siempre Viva 742, Springfield",
			"place_id": "abc123"
		}
	}`

	var record provider.WorkshopRecord
	require.NoError(t, json.Unmarshal([]byte(payload), &record))

	require.NotNil(t, record.Address)
	assert.False(t, record.Address.Empty())
	assert.Equal(t, "Av. Siempre Viva 742, Springfield", record.Address.Formatted())
}

func TestAddress_UnmarshalEncodedString(t *testing.T) {
	payload := `{
		"id": 2,
		"name": "Taller Sur",
		"active": true,
		"address": "{\"formatted_address\": \"Calle Falsa 123\", \"vicinity\": \"Centro\"}"
	}`

	var record provider.WorkshopRecord
	require.NoError(t, json.Unmarshal([]byte(payload), &record))

	require.NotNil(t, record.Address)
	assert.False(t, record.Address.Empty())
	assert.Equal(t, "Calle Falsa 123", record.Address.Formatted())
}

func TestAddress_UnmarshalDegenerateValues(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{
			name:    "null address",
			payload: `{"id": 3, "name": "Taller", "active": true, "address": null}`,
		},
		{
			name:    "empty string address",
			payload: `{"id": 3, "name": "Taller", "active": true, "address": ""}`,
		},
		{
			name:    "malformed encoded string",
			payload: `{"id": 3, "name": "Taller", "active": true, "address": "{not json"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var record provider.WorkshopRecord
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &record))

			assert.True(t, record.Address.Empty())
			assert.Equal(t, "", record.Address.Formatted())
		})
	}
}

func TestAddress_UnmarshalAbsent(t *testing.T) {
	var record provider.WorkshopRecord
	require.NoError(t, json.Unmarshal([]byte(`{"id": 4, "name": "Taller", "active": false}`), &record))

	assert.Nil(t, record.Address)
	assert.True(t, record.Address.Empty())
}

func TestAddress_FormattedFallbacks(t *testing.T) {
	address := &provider.Address{Vicinity: "Centro"}
	assert.Equal(t, "Centro", address.Formatted())

	address = &provider.Address{Name: "Taller"}
	assert.Equal(t, "Taller", address.Formatted())
}
