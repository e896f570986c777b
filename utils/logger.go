package utils

import (
	"os"
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// InitializeLogger builds the process logger. Production config when
// APP_ENV=production, development config otherwise.
func InitializeLogger() {
	loggerOnce.Do(func() {
		var err error
		if os.Getenv("APP_ENV") == "production" {
			logger, err = zap.NewProduction()
		} else {
			logger, err = zap.NewDevelopment()
		}
		if err != nil {
			logger = zap.NewNop()
		}
	})
}

// GetLogger returns the process logger, initializing it on first use.
func GetLogger() *zap.Logger {
	if logger == nil {
		InitializeLogger()
	}
	return logger
}
