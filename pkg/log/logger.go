// Package log provides structured logging for the segmentation pipeline.
//
// It configures a JSON slog handler and defines the standard attribute keys
// used by the pipeline stages, so that runs can be filtered and compared by
// stage, data shape, and model.
package log

import (
	"log/slog"
	"os"
)

// SetupLogger installs a JSON slog handler as the process default.
// Unknown level strings fall back to info.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		Level: ToLogLevel(loglevel),
	}
	handler := slog.NewJSONHandler(os.Stderr, &ops)
	errFmtHandler := WrapByErrFmtHandler(handler)
	slog.SetDefault(slog.New(errFmtHandler))
}

// ToLogLevel maps a level name to a slog.Level.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
