package logger

import "go.uber.org/zap"

// New builds a zap logger for the given environment: human-readable
// development output everywhere except production.
func New(environment string, debug bool) (*zap.Logger, error) {
	if environment == "production" {
		cfg := zap.NewProductionConfig()
		if debug {
			cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		}
		return cfg.Build()
	}

	cfg := zap.NewDevelopmentConfig()
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}
