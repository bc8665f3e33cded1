package cli

import "go.uber.org/zap"

// newLogger builds the CLI's structured logger. The core packages never
// log; only this parsing/orchestration layer does.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
