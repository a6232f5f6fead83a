package logging

import "go.uber.org/zap"

// Logger is the process-wide logger. It defaults to a nop logger so packages
// can log unconditionally in tests; main replaces it via Init.
var Logger = zap.NewNop()

func Init() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	Logger = logger
	return nil
}
