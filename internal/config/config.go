// Package config provides functionality for loading and accessing environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	once sync.Once
	// Logger is the bootstrap logger used before the configuration is loaded
	Logger = newBootstrapLogger()
)

func newBootstrapLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	return l
}

// ConfigureLogging sets up the bootstrap logger from the CHART_LOG_LEVEL and
// CHART_LOG_FORMAT environment variables and returns it
func ConfigureLogging() *logrus.Logger {
	logLevelStr := GetEnv(EnvPrefix+"_LOG_LEVEL", "info")

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		Logger.Warnf("Invalid log level '%s', using 'info'", logLevelStr)
		logLevel = logrus.InfoLevel
	}
	Logger.SetLevel(logLevel)

	if strings.ToLower(GetEnv(EnvPrefix+"_LOG_FORMAT", "text")) == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return Logger
}

// LoadEnv loads environment variables from a .env file if it exists. Only
// the first call has an effect.
func LoadEnv() {
	once.Do(func() {
		envFile := findEnvFile()
		if envFile == "" {
			Logger.Debug("No .env file found, using environment variables")
			return
		}

		if err := godotenv.Load(envFile); err != nil {
			Logger.Warnf("Error loading .env file: %v", err)
			return
		}
		Logger.Debugf("Loaded environment variables from %s", envFile)

		ConfigureLogging()
	})
}

// findEnvFile returns the .env of the current or parent directory, or "".
func findEnvFile() string {
	for _, candidate := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
