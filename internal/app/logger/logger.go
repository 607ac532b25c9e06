package logger

import (
	"go.uber.org/zap"
)

// Log is the application-wide logger. It is a no-op until InitLogger runs.
var Log = zap.NewNop()

func InitLogger(level string) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		panic(err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	Log = logger
}
