package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is shared by every package. It discards everything until Initialize runs.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// New builds a JSON logger for level. Entries carry an ISO8601 "ts" and the
// service name.
func New(level string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.InitialFields = map[string]any{"service": "vidly"}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

// Initialize replaces Log. On error Log is left as it was.
func Initialize(level string) error {
	l, err := New(level)
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// Sync flushes Log, ignoring the error stdout returns on some platforms.
func Sync() {
	_ = Log.Sync()
}
