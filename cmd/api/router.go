package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/", indexHandler(c))
	router.GET("/health", healthHandler(c))

	api := router.Group("/api")
	{
		api.POST("/generate", c.PortfolioHandler.Generate)
		api.GET("/portfolio/:id", c.PortfolioHandler.Get)
		api.PUT("/portfolio/:id", c.PortfolioHandler.Update)
		api.POST("/portfolio/:id/validate", c.PortfolioHandler.Validate)
	}

	// Generated sites are served straight from the output directory.
	router.Static("/portfolios", c.Config.Generator.PortfoliosDir)

	return router
}

func healthHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := gin.H{
			"status":  "healthy",
			"service": "portfolio-generator-api",
			"version": c.Config.App.Version,
		}
		if c.Cache != nil {
			if err := c.Cache.HealthCheck(ctx.Request.Context()); err != nil {
				status["status"] = "degraded"
				status["redis"] = err.Error()
				ctx.JSON(http.StatusServiceUnavailable, status)
				return
			}
			status["redis"] = "ok"
		}
		ctx.JSON(http.StatusOK, status)
	}
}

func indexHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"service": c.Config.App.Name,
			"version": c.Config.App.Version,
			"endpoints": gin.H{
				"POST /api/generate":               "Generate a new portfolio",
				"GET /api/portfolio/:id":           "Get portfolio data",
				"PUT /api/portfolio/:id":           "Update portfolio",
				"POST /api/portfolio/:id/validate": "Validate portfolio",
				"GET /portfolios/*":                "Serve generated portfolio files",
				"GET /health":                      "Health check",
			},
		})
	}
}
