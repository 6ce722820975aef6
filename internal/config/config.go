package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App   AppConfig
	Redis RedisConfig
	PDF   PDFConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

// PDFConfig cấu hình cho PDF generation và artifact storage
type PDFConfig struct {
	StorageDir     string // thư mục chứa các artifact PDF
	RetentionHours int    // artifact tồn tại tối đa bao nhiêu giờ trước khi bị purge
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Ebook Student API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		PDF: PDFConfig{
			StorageDir:     getEnv("PDF_STORAGE_DIR", "/tmp/pdfs"),
			RetentionHours: getEnvInt("PDF_RETENTION_HOURS", 24),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	if c.PDF.StorageDir == "" {
		return fmt.Errorf("PDF_STORAGE_DIR must not be empty")
	}
	if c.PDF.RetentionHours <= 0 {
		return fmt.Errorf("PDF_RETENTION_HOURS must be positive, got %d", c.PDF.RetentionHours)
	}

	if c.App.Environment == "production" {
		if os.Getenv("DB_PASSWORD") == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
