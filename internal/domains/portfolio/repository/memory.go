package repository

import (
	"context"
	"sync"

	"portfolio-backend/internal/domains/portfolio"
)

// MemoryRegistry keeps registry entries in process memory. Good enough for
// a single instance; use the redis registry when running more than one.
type MemoryRegistry struct {
	mu      sync.RWMutex
	entries map[string]portfolio.RegistryEntry
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{entries: make(map[string]portfolio.RegistryEntry)}
}

func (r *MemoryRegistry) Put(_ context.Context, entry *portfolio.RegistryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.PortfolioID] = *entry
	return nil
}

func (r *MemoryRegistry) Get(_ context.Context, portfolioID string) (*portfolio.RegistryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[portfolioID]
	if !ok {
		return nil, portfolio.ErrPortfolioNotFound
	}
	return &entry, nil
}
