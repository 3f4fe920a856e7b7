package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.BodyLimit)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, ":3000", cfg.Address())
}

func TestLoad_FromEnv(t *testing.T) {
	cfg, err := load(lookupFrom(map[string]string{
		"PORT":             "8080",
		"DEBUG":            "true",
		"BODY_LIMIT":       "1M",
		"SHUTDOWN_TIMEOUT": "3s",
	}))
	require.NoError(t, err)

	assert.Equal(t, Config{
		Port:            8080,
		Debug:           true,
		BodyLimit:       "1M",
		ShutdownTimeout: 3 * time.Second,
	}, cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"non numeric port", map[string]string{"PORT": "http"}, "parse PORT"},
		{"port out of range", map[string]string{"PORT": "70000"}, "out of range"},
		{"zero port", map[string]string{"PORT": "0"}, "out of range"},
		{"bad timeout", map[string]string{"SHUTDOWN_TIMEOUT": "soon"}, "parse SHUTDOWN_TIMEOUT"},
		{"negative timeout", map[string]string{"SHUTDOWN_TIMEOUT": "-1s"}, "must be positive"},
		{"zero timeout", map[string]string{"SHUTDOWN_TIMEOUT": "0s"}, "must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(lookupFrom(tt.env))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_UsesProcessEnv(t *testing.T) {
	t.Setenv("PORT", "4321")
	t.Setenv("DEBUG", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4321, cfg.Port)
	assert.False(t, cfg.Debug)
}
