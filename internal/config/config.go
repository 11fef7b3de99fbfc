// Package config содержит загрузку и валидацию конфигурации.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config представляет конфигурацию приложения
type Config struct {
	// Database
	DatabaseURL string

	// Health
	HealthPort         string
	HealthCheckEnabled bool

	// Logging
	LogLevel string

	// App Data Directory
	AppDataDir string

	// Hosting
	HostingConfig HostingConfig

	// Scraper
	ScraperConfig ScraperConfig

	// Maintenance
	MaintenanceConfig MaintenanceConfig
}

// HostingConfig представляет конфигурацию симуляции хостинга
type HostingConfig struct {
	DeployDelay time.Duration
	LiveDomain  string
}

// ScraperConfig представляет конфигурацию скрейпера изображений
type ScraperConfig struct {
	RequestTimeout time.Duration
	RequestDelay   time.Duration
	MaxImages      int
	RetryConfig    RetryConfig
}

// RetryConfig представляет конфигурацию retry механизма
type RetryConfig struct {
	MaxRetries        int
	InitialDelay      time.Duration
	MaxDelay          time.Duration
	BackoffMultiplier float64
}

// MaintenanceConfig представляет конфигурацию фоновых задач
type MaintenanceConfig struct {
	LogTrimSchedule string
	MaxSystemLogs   int
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	// Загружаем .env файл если он существует
	if err := godotenv.Load(); err != nil {
		// Игнорируем ошибку если файл не найден
	}

	config := &Config{
		DatabaseURL:        getEnv("DB_DSN", ""),
		HealthPort:         getEnv("HEALTH_PORT", "8080"),
		HealthCheckEnabled: getEnvBool("HEALTH_CHECK_ENABLED", true),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		AppDataDir:         getEnv("APP_DATA_DIR", "./data"),
		HostingConfig: HostingConfig{
			DeployDelay: getEnvDuration("HOSTING_DEPLOY_DELAY", 3*time.Second),
			LiveDomain:  getEnv("HOSTING_LIVE_DOMAIN", "nexusforge.app"),
		},
		ScraperConfig: ScraperConfig{
			RequestTimeout: getEnvDuration("SCRAPER_REQUEST_TIMEOUT", 10*time.Second),
			RequestDelay:   getEnvDuration("SCRAPER_REQUEST_DELAY", 1*time.Second),
			MaxImages:      getEnvInt("SCRAPER_MAX_IMAGES", 8),
			RetryConfig: RetryConfig{
				MaxRetries:        getEnvInt("SCRAPER_MAX_RETRIES", 3),
				InitialDelay:      getEnvDuration("SCRAPER_INITIAL_DELAY", 1*time.Second),
				MaxDelay:          getEnvDuration("SCRAPER_MAX_DELAY", 30*time.Second),
				BackoffMultiplier: getEnvFloat("SCRAPER_BACKOFF_MULTIPLIER", 2.0),
			},
		},
		MaintenanceConfig: MaintenanceConfig{
			LogTrimSchedule: getEnv("MAINTENANCE_LOG_TRIM_SCHEDULE", "@every 10m"),
			MaxSystemLogs:   getEnvInt("MAINTENANCE_MAX_SYSTEM_LOGS", 100),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// GetAppDataDir возвращает директорию данных приложения
func (c *Config) GetAppDataDir() string {
	return c.AppDataDir
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DB_DSN is required")
	}

	if c.HealthCheckEnabled {
		port, err := strconv.Atoi(c.HealthPort)
		if err != nil || port <= 0 || port > 65535 {
			return fmt.Errorf("HEALTH_PORT must be a valid port, got %q", c.HealthPort)
		}
	}

	if c.HostingConfig.DeployDelay <= 0 {
		return fmt.Errorf("HOSTING_DEPLOY_DELAY must be positive")
	}

	if c.MaintenanceConfig.MaxSystemLogs <= 0 {
		return fmt.Errorf("MAINTENANCE_MAX_SYSTEM_LOGS must be positive")
	}

	return nil
}

// getEnv получает переменную окружения с значением по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает переменную окружения как int
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration получает переменную окружения как time.Duration
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvBool получает переменную окружения как bool
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvFloat получает переменную окружения как float64
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
