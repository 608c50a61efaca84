package configs

import (
	"log/slog"
	"strings"
)

// Logger controls the structured logger. Level is the minimum level
// emitted ("debug", "info", "warn", "error"); Format selects the output
// encoding, either "text" or "json".
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

// SlogLevel maps the configured level to a slog.Level. Unrecognised
// values fall back to info.
func (c Logger) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// JSONFormat reports whether log output should be JSON encoded.
func (c Logger) JSONFormat() bool {
	return strings.ToLower(c.Format) == "json"
}
