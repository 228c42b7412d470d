package dfarpc

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

// Config carries the server settings. Values are resolved in order:
// defaults, then an optional YAML file, then environment variables.
type Config struct {
	// ListenAddr is the host:port the HTTP server binds to.
	ListenAddr string `yaml:"listen_addr"`
	// GinMode selects the gin mode (release, debug, test).
	GinMode string `yaml:"gin_mode"`
	// Tracing enables the stdout trace exporter.
	Tracing bool `yaml:"tracing"`
	// ShutdownGraceSeconds bounds how long in-flight requests may
	// drain after a shutdown signal.
	ShutdownGraceSeconds int `yaml:"shutdown_grace_seconds"`
}

func DefaultConfig() Config {
	return Config{
		ListenAddr:           "127.0.0.1:3030",
		GinMode:              gin.ReleaseMode,
		Tracing:              false,
		ShutdownGraceSeconds: 5,
	}
}

// LoadConfig builds the effective configuration. path may be empty, in
// which case only defaults and environment variables apply.
//
// Environment variables: DFAD_LISTEN_ADDR, DFAD_GIN_MODE,
// DFAD_TRACING, DFAD_SHUTDOWN_GRACE_SECONDS.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.ListenAddr = getEnvString("DFAD_LISTEN_ADDR", cfg.ListenAddr)
	cfg.GinMode = getEnvString("DFAD_GIN_MODE", cfg.GinMode)
	cfg.Tracing = getEnvBool("DFAD_TRACING", cfg.Tracing)
	cfg.ShutdownGraceSeconds = getEnvInt("DFAD_SHUTDOWN_GRACE_SECONDS", cfg.ShutdownGraceSeconds)
	return cfg, nil
}

// getEnvString returns the environment variable value or a default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the environment variable as int or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvBool returns the environment variable as bool or a default.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
