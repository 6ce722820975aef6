package main

import (
	"log"

	"ebook-backend/internal/shared/utils"
)

// Config holds all configuration for the worker
type Config struct {
	RedisAddr      string
	RetentionHours int
}

// loadConfig loads configuration from environment variables
func loadConfig() *Config {
	cfg := &Config{
		RedisAddr:      utils.GetEnvVariable("REDIS_HOST", "localhost:6379"),
		RetentionHours: utils.GetEnvInt("PDF_RETENTION_HOURS", 24),
	}

	log.Printf("[Config] Redis: %s, PDF retention: %dh",
		cfg.RedisAddr, cfg.RetentionHours)

	return cfg
}
