package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/portfolio"
)

func TestMemoryRegistry(t *testing.T) {
	ctx := context.Background()
	registry := NewMemoryRegistry()

	entry := &portfolio.RegistryEntry{
		PortfolioID:  "p-1",
		UserID:       "alice",
		Path:         "/tmp/site",
		SiteTemplate: portfolio.TemplateHybrid,
		DesignTheme:  portfolio.ThemeClassic,
	}
	require.NoError(t, registry.Put(ctx, entry))

	got, err := registry.Get(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, entry, got)

	// The registry stores a copy, not the caller's pointer.
	entry.Path = "/tmp/elsewhere"
	got, err = registry.Get(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/site", got.Path)
}

func TestMemoryRegistry_Missing(t *testing.T) {
	registry := NewMemoryRegistry()
	_, err := registry.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, portfolio.ErrPortfolioNotFound)
}

func TestMemoryRegistry_Overwrite(t *testing.T) {
	ctx := context.Background()
	registry := NewMemoryRegistry()

	require.NoError(t, registry.Put(ctx, &portfolio.RegistryEntry{PortfolioID: "p-1", UserID: "alice"}))
	require.NoError(t, registry.Put(ctx, &portfolio.RegistryEntry{PortfolioID: "p-1", UserID: "bob"}))

	got, err := registry.Get(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "bob", got.UserID)
}
