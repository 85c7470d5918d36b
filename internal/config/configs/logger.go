package configs

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// Logger defines configuration options for the structured logger. The
// Level controls the minimum level emitted by the logger. Valid values
// include "debug", "info", "warn" and "error". Format determines the
// output encoding and may be "text" (default) or "json". An unknown
// format falls back to "text".
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

// ZapLevel converts the textual level into a zapcore.Level. Unknown levels
// default to zapcore.InfoLevel.
func (c Logger) ZapLevel() zapcore.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error", "err":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ZapEncoding validates and normalises the requested log format. "json"
// selects the JSON encoder, anything else the console encoder.
func (c Logger) ZapEncoding() string {
	switch strings.ToLower(c.Format) {
	case "json":
		return "json"
	default:
		return "console"
	}
}
