package config

import (
	"os"
	"strings"

	"interfaces-generator/internal/domain/constants"
	"interfaces-generator/internal/domain/errors"
)

// Config is a struct that holds application configuration
type Config struct {
	Log       LogConfig
	Server    ServerConfig
	Generator GeneratorConfig
}

// LogConfig is a struct that holds logging configuration
type LogConfig struct {
	Level  string
	Format string
}

// ServerConfig is a struct that holds HTTP editing API configuration
type ServerConfig struct {
	ListenAddr string
}

// GeneratorConfig is a struct that holds config generation settings
type GeneratorConfig struct {
	// TargetPath is only printed in the generated header, nothing is written there
	TargetPath string
}

// supported values for LOG_LEVEL and LOG_FORMAT
var (
	logLevels  = []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic"}
	logFormats = []string{"json", "text", "simple", "compact"}
)

// ConfigLoader is an interface for loading configuration
type ConfigLoader interface {
	Load() (*Config, error)
}

// EnvironmentConfigLoader is an implementation that loads configuration from environment variables
type EnvironmentConfigLoader struct{}

// NewEnvironmentConfigLoader creates a new EnvironmentConfigLoader
func NewEnvironmentConfigLoader() ConfigLoader {
	return &EnvironmentConfigLoader{}
}

// Load loads configuration from environment variables
func (l *EnvironmentConfigLoader) Load() (*Config, error) {
	config := &Config{
		Log: LogConfig{
			Level:  strings.ToLower(getEnvOrDefault("LOG_LEVEL", constants.DefaultLogLevel)),
			Format: strings.ToLower(getEnvOrDefault("LOG_FORMAT", constants.DefaultLogFormat)),
		},
		Server: ServerConfig{
			ListenAddr: getEnvOrDefault("LISTEN_ADDR", constants.DefaultListenAddr),
		},
		Generator: GeneratorConfig{
			TargetPath: getEnvOrDefault("TARGET_PATH", constants.InterfacesFilePath),
		},
	}

	// Validate configuration
	if err := l.validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// validate validates the configuration
func (l *EnvironmentConfigLoader) validate(config *Config) error {
	if !contains(logLevels, config.Log.Level) {
		return errors.NewValidationError("unsupported log level: "+config.Log.Level, nil)
	}
	if !contains(logFormats, config.Log.Format) {
		return errors.NewValidationError("unsupported log format: "+config.Log.Format, nil)
	}

	if !strings.Contains(config.Server.ListenAddr, ":") {
		return errors.NewValidationError("listen address must be host:port or :port", nil)
	}

	if !strings.HasPrefix(config.Generator.TargetPath, "/") {
		return errors.NewValidationError("target path must be absolute", nil)
	}

	return nil
}

// Environment variable helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
