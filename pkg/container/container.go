package container

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/domains/portfolio"
	portfolioHandler "portfolio-backend/internal/domains/portfolio/handler"
	portfolioRepo "portfolio-backend/internal/domains/portfolio/repository"
	portfolioService "portfolio-backend/internal/domains/portfolio/service"
	"portfolio-backend/internal/infrastructure/cache"
)

// Container holds the application dependency graph: config, then
// infrastructure, then registry, then service, then handler.
type Container struct {
	Config *config.Config

	Cache       *cache.RedisClient // nil when redis is disabled
	AsynqClient *asynq.Client      // nil when redis is disabled

	Generator *portfolio.Generator
	Registry  portfolio.Registry

	PortfolioService portfolio.Service
	PortfolioHandler *portfolioHandler.Handler
}

func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	c := &Container{Config: cfg}
	c.Generator = &portfolio.Generator{TemplatesDir: cfg.Generator.TemplatesDir}

	if cfg.Redis.Enabled {
		c.Cache = cache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
		if err := c.Cache.Connect(context.Background()); err != nil {
			return nil, err
		}
		c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Redis.Host,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		c.Registry = portfolioRepo.NewRedisRegistry(c.Cache.Client)
		log.Info().Msg("Using redis-backed portfolio registry")
	} else {
		c.Registry = portfolioRepo.NewMemoryRegistry()
		log.Info().Msg("Using in-memory portfolio registry")
	}

	var queue portfolioService.Enqueuer
	if c.AsynqClient != nil {
		queue = c.AsynqClient
	}
	c.PortfolioService = portfolioService.NewService(c.Generator, c.Registry, queue, cfg.Generator.PortfoliosDir)
	c.PortfolioHandler = portfolioHandler.NewHandler(c.PortfolioService)

	return c, nil
}

// Cleanup closes the connections the container owns.
func (c *Container) Cleanup() {
	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			log.Warn().Err(err).Msg("Asynq client close failed")
		}
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			log.Warn().Err(err).Msg("Redis close failed")
		}
	}
}
