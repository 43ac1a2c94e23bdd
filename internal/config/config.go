package config

import (
	"os"
	"strconv"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App       AppConfig
	Redis     RedisConfig
	Generator GeneratorConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	// Enabled turns on the redis-backed registry and callback dispatch.
	// With redis off the API runs standalone with an in-memory registry.
	Enabled  bool
	Host     string
	Password string
	DB       int
}

type GeneratorConfig struct {
	// PortfoliosDir is where generated sites are emitted, one
	// subdirectory per portfolio.
	PortfoliosDir string
	// TemplatesDir overrides the embedded template bundle when set.
	TemplatesDir string
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	return &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Portfolio Generator API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Generator: GeneratorConfig{
			PortfoliosDir: getEnv("PORTFOLIOS_DIR", "generated_portfolios"),
			TemplatesDir:  getEnv("TEMPLATES_DIR", ""),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
