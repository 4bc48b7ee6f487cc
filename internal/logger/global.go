package logger

import (
	"os"
	"sync"
)

var (
	globalLogger *Logger
	once         sync.Once
)

// GetLogger returns the global logger, initialising it from LOG_LEVEL and
// LOG_FORMAT when nothing was set explicitly.
func GetLogger() *Logger {
	once.Do(func() {
		if globalLogger == nil {
			level := "info"
			if os.Getenv("LOG_LEVEL") != "" {
				level = os.Getenv("LOG_LEVEL")
			}
			globalLogger = New(Config{
				Level:  level,
				Format: os.Getenv("LOG_FORMAT"),
			})
		}
	})
	return globalLogger
}

// SetLogger replaces the global logger instance.
func SetLogger(logger *Logger) {
	globalLogger = logger
}
