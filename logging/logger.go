package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	pfconstants "github.com/turbot/pipe-fittings/constants"
	"github.com/turbot/pipe-fittings/sanitize"
)

// EnvLogLevel is the environment variable controlling the log level.
// Unset (or any unrecognised value) turns logging off.
const EnvLogLevel = "OBSERVE_LOG_LEVEL"

func Initialize(appName string) {
	slog.SetDefault(observeLogger(appName))
}

// observeLogger returns a logger that writes to stderr and sanitizes log entries
func observeLogger(appName string) *slog.Logger {
	level := getLogLevel()
	if level == pfconstants.LogLevelOff {
		return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	}

	handlerOptions := &slog.HandlerOptions{
		Level: level,

		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			sanitized := sanitize.Instance.SanitizeKeyValue(a.Key, a.Value.Any())

			return slog.Attr{
				Key:   a.Key,
				Value: slog.AnyValue(sanitized),
			}
		},
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, handlerOptions)).With("source", appName)
}

func getLogLevel() slog.Leveler {
	levelEnv := os.Getenv(EnvLogLevel)

	switch strings.ToLower(levelEnv) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return pfconstants.LogLevelOff
	}
}
