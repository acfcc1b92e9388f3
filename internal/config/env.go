// Package config holds the compiled-in show definition and shared
// environment helpers.
package config

import (
	"os"

	"github.com/charmbracelet/log"
)

// LogLevelEnv names the variable that sets the log level.
const LogLevelEnv = "FIREWORKS_LOG_LEVEL"

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// LogLevel returns the level named by FIREWORKS_LOG_LEVEL. Logs share the
// terminal with the animation, so anything unparseable falls back to warn.
func LogLevel() log.Level {
	level, err := log.ParseLevel(GetEnv(LogLevelEnv, "warn"))
	if err != nil {
		return log.WarnLevel
	}
	return level
}
