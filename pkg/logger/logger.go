package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It defaults to a no-op logger so packages
// can log safely before Init runs (mainly in tests).
var Log = zap.NewNop()

// Init builds the shared logger at the given level and installs it as Log.
func Init(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		// zap only fails on an invalid output path; the default config has none
		l = zap.NewNop()
	}
	Log = l
	return l
}

// Sync flushes buffered log entries. Errors are ignored; stdout syncing
// fails on some platforms and there is nothing useful to do about it.
func Sync() {
	_ = Log.Sync()
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
