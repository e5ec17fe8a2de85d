package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wealthpath/networth-projector/internal/domain"
)

// ServerConfig holds the HTTP server settings
type ServerConfig struct {
	Port            string
	LogLevel        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	Concurrency     int // scenarios projected at once; 0 means GOMAXPROCS
}

// NewServerConfig loads server configuration from environment variables
func NewServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.ReadTimeout, err = getEnvDuration("READ_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.WriteTimeout, err = getEnvDuration("WRITE_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.Concurrency, err = strconv.Atoi(getEnv("CONCURRENCY", "0")); err != nil || cfg.Concurrency < 0 {
		return nil, domain.InvalidInputf("CONCURRENCY must be a non-negative integer")
	}

	if cfg.Port == "" {
		return nil, domain.InvalidInputf("PORT is required")
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", domain.InvalidInputf("%v", err))
	}

	return cfg, nil
}

// Addr returns the listen address
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}

// NewLogger builds a logrus logger at level; unknown levels fall back to info
func NewLogger(level string, json bool) *logrus.Logger {
	logger := logrus.New()
	if json {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return 0, domain.InvalidInputf("%s must be a positive duration, got %q", key, value)
	}
	return d, nil
}
