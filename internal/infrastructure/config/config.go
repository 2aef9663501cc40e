package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the risk engine service.
type Config struct {
	HTTPPort     string
	AIServiceURL string
	AITimeout    time.Duration
	KafkaBroker  string
	AlertTopic   string
	Environment  string
	LogLevel     string
	RateLimitRPS int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		HTTPPort:     getEnv("HTTP_PORT", "8090"),
		AIServiceURL: getEnv("AI_SERVICE_URL", "http://localhost:8001"),
		AITimeout:    getDuration("AI_TIMEOUT", 5*time.Second),
		KafkaBroker:  getEnv("KAFKA_BROKER", ""),
		AlertTopic:   getEnv("ALERT_TOPIC", "risk.alerts"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		RateLimitRPS: getInt("RATE_LIMIT_RPS", 50),
	}
}

// HTTPAddress returns the full HTTP listen address.
func (c *Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.HTTPPort)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
