package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	cases := map[string]struct {
		args        []string
		env         map[string]string
		expected    *Config
		expectedErr string
	}{
		"defaults": {
			expected: &Config{Username: "billy", Password: "secret", LogLevel: "info"},
		},
		"short flags": {
			args:     []string{"-u", "alice", "-p", "wonderland", "-l", "debug"},
			expected: &Config{Username: "alice", Password: "wonderland", LogLevel: "debug"},
		},
		"long flags": {
			args:     []string{"--username=alice", "--password=wonderland", "--legacy-credential-check", "--log-level=warn"},
			expected: &Config{Username: "alice", Password: "wonderland", LegacyCredentialCheck: true, LogLevel: "warn"},
		},
		"environment": {
			env:      map[string]string{"DEMO_USERNAME": "bob", "DEMO_PASSWORD": "builder"},
			expected: &Config{Username: "bob", Password: "builder", LogLevel: "info"},
		},
		"flags override environment": {
			args:     []string{"-u", "alice"},
			env:      map[string]string{"DEMO_USERNAME": "bob"},
			expected: &Config{Username: "alice", Password: "secret", LogLevel: "info"},
		},
		"invalid log level": {
			args:        []string{"-l", "verbose"},
			expectedErr: "Invalid value `verbose'",
		},
		"unknown flag": {
			args:        []string{"--unknown"},
			expectedErr: "unknown flag",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := Load(tc.args)
			if tc.expectedErr != "" {
				assert.ErrorContains(t, err, tc.expectedErr)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg)
		})
	}
}

func TestLoad_Help(t *testing.T) {
	_, err := Load([]string{"--help"})
	assert.True(t, IsHelp(err))

	_, err = Load([]string{"--unknown"})
	assert.False(t, IsHelp(err))
}

func TestConfig_Level(t *testing.T) {
	cases := map[string]struct {
		level    string
		expected slog.Level
	}{
		"debug":   {level: "debug", expected: slog.LevelDebug},
		"info":    {level: "info", expected: slog.LevelInfo},
		"warn":    {level: "warn", expected: slog.LevelWarn},
		"error":   {level: "error", expected: slog.LevelError},
		"unknown": {level: "verbose", expected: slog.LevelInfo},
		"empty":   {level: "", expected: slog.LevelInfo},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := &Config{LogLevel: tc.level}
			assert.Equal(t, tc.expected, cfg.Level())
		})
	}
}
