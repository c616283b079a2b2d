package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the library logger from CQLBRIDGE_LOG_LEVEL. An unset or
// invalid level disables logging.
func newLogger(level string) *zap.Logger {
	if level == "" {
		return zap.NewNop()
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zap.NewNop()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger.Named("cqlbridge")
}

func loggerFromEnv() *zap.Logger {
	return newLogger(os.Getenv("CQLBRIDGE_LOG_LEVEL"))
}
