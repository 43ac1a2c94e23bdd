package main

import (
	"github.com/hibiken/asynq"

	"portfolio-backend/internal/domains/portfolio/job"
	"portfolio-backend/internal/shared"
)

// HandlerRegistry holds all job handlers.
type HandlerRegistry struct {
	callback *job.CallbackHandler
}

func initializeHandlers() *HandlerRegistry {
	return &HandlerRegistry{
		callback: job.NewCallbackHandler(),
	}
}

// RegisterHandlers registers all handlers with the mux.
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypePortfolioCallback, h.callback.ProcessTask)
}
