package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    time.Duration
		expectError bool
	}{
		{name: "string duration", input: `"30s"`, expected: 30 * time.Second},
		{name: "string with hours", input: `"1h30m"`, expected: 90 * time.Minute},
		{name: "numeric nanoseconds", input: `5000000000`, expected: 5 * time.Second},
		{name: "invalid string", input: `"not-a-duration"`, expectError: true},
		{name: "invalid json", input: `{`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	d := Duration(45 * time.Second)
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"45s"`, string(data))
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"feed_grace": "5s"},
		"storage": map[string]any{
			"db": map[string]any{"dsn": "postgres://localhost/notes"},
		},
		"server": map[string]any{
			"http_address":    "localhost:8080",
			"request_timeout": "30s",
		},
		"location": map[string]any{
			"endpoint":        "http://localhost:7979/coordinate",
			"request_timeout": "5s",
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.App.FeedGrace)
	assert.Equal(t, "postgres://localhost/notes", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:7979/coordinate", cfg.Location.Endpoint)
	assert.Empty(t, cfg.JSONFilePath)
}
