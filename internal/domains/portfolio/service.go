package portfolio

import "context"

// Service is the application surface over the generation core: what the
// HTTP handlers and the worker see.
type Service interface {
	// Generate builds a new portfolio from a raw profile payload and
	// registers it. payload is the request body as received; config fields
	// it may carry are ignored by shape detection.
	Generate(ctx context.Context, payload []byte, req *GenerateRequest) (*GenerateResponse, error)

	// Get returns the stored flat snapshot plus registry metadata.
	Get(ctx context.Context, portfolioID string) (*PortfolioDetail, error)

	// Update merges new fields into the stored snapshot and, unless the
	// request opts out, regenerates the site in place with the registered
	// template mode and design theme.
	Update(ctx context.Context, portfolioID string, req *UpdateRequest) (*UpdateResponse, error)

	// Validate marks the generated draft as validated.
	Validate(ctx context.Context, portfolioID string) (*ValidateResponse, error)
}
