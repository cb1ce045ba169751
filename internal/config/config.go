// Package config parses the demo command line. Every option can also be
// supplied through the environment variable named in its env tag.
package config

import (
	"errors"
	"log/slog"

	"github.com/jessevdk/go-flags"
)

type Config struct {
	Username              string `short:"u" long:"username" env:"DEMO_USERNAME" default:"billy" description:"username to register and sign in with"`
	Password              string `short:"p" long:"password" env:"DEMO_PASSWORD" default:"secret" description:"password to register and sign in with"`
	LegacyCredentialCheck bool   `long:"legacy-credential-check" description:"compare the supplied password with the stored username (known defect)"`
	LogLevel              string `short:"l" long:"log-level" env:"LOG_LEVEL" default:"info" choice:"debug" choice:"info" choice:"warn" choice:"error" description:"minimum log level"`
}

// Level returns LogLevel as a slog.Level, falling back to info.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return level
}

// Load parses args into a Config.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	if _, err := flags.NewParser(cfg, flags.HelpFlag|flags.PassDoubleDash).ParseArgs(args); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsHelp reports whether err was returned because help was requested.
func IsHelp(err error) bool {
	var flagsErr *flags.Error
	return errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp
}
