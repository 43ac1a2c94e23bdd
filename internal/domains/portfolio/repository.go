package portfolio

import "context"

// Registry maps portfolio identifiers to their target directory and the
// configuration they were generated with. The core never touches the store
// directly; implementations live in the repository subpackage (in-memory
// for a single process, redis-backed for multi-process deployments).
type Registry interface {
	Put(ctx context.Context, entry *RegistryEntry) error
	// Get returns ErrPortfolioNotFound when the id was never registered.
	Get(ctx context.Context, portfolioID string) (*RegistryEntry, error)
}
