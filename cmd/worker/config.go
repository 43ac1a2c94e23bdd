package main

import (
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/shared/utils"
)

// Config holds all configuration for the worker.
type Config struct {
	RedisAddr     string
	RedisPassword string
	Concurrency   int
}

func loadConfig() *Config {
	cfg := &Config{
		RedisAddr:     utils.GetEnvVariable("REDIS_HOST", "localhost:6379"),
		RedisPassword: utils.GetEnvVariable("REDIS_PASSWORD", ""),
		Concurrency:   10,
	}
	log.Info().Str("redis", cfg.RedisAddr).Msg("Worker config loaded")
	return cfg
}
