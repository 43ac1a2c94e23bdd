package service

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/domains/portfolio"
	"portfolio-backend/internal/shared"
)

// Enqueuer is the slice of asynq.Client the service needs; nil disables
// callback dispatch (the CLI runs without redis).
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type portfolioService struct {
	gen           *portfolio.Generator
	registry      portfolio.Registry
	queue         Enqueuer
	portfoliosDir string
}

func NewService(gen *portfolio.Generator, registry portfolio.Registry, queue Enqueuer, portfoliosDir string) portfolio.Service {
	return &portfolioService{
		gen:           gen,
		registry:      registry,
		queue:         queue,
		portfoliosDir: portfoliosDir,
	}
}

func (s *portfolioService) Generate(ctx context.Context, payload []byte, req *portfolio.GenerateRequest) (*portfolio.GenerateResponse, error) {
	in, err := portfolio.ParseInput(payload)
	if err != nil {
		return nil, err
	}

	dirName := req.UserID
	if dirName == "" {
		dirName = "portfolio-" + time.Now().UTC().Format("20060102-150405")
	}

	result, err := s.gen.Generate(in, filepath.Join(s.portfoliosDir, dirName), req.Mode(), req.Theme())
	if err != nil {
		return nil, err
	}

	entry := &portfolio.RegistryEntry{
		PortfolioID:  result.PortfolioID,
		UserID:       req.UserID,
		Path:         result.Path,
		SiteTemplate: result.SiteTemplate,
		DesignTheme:  result.DesignTheme,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		CallbackURL:  req.CallbackURL,
	}
	if err := s.registry.Put(ctx, entry); err != nil {
		return nil, fmt.Errorf("register portfolio: %w", err)
	}

	portfolioURL := "/portfolios/" + dirName + "/index.html"
	s.enqueueCallback(entry, portfolioURL)

	log.Info().
		Str("portfolio_id", result.PortfolioID).
		Str("path", result.Path).
		Str("site_template", string(result.SiteTemplate)).
		Str("design_theme", string(result.DesignTheme)).
		Msg("Portfolio generated")

	return &portfolio.GenerateResponse{
		PortfolioID:  result.PortfolioID,
		PortfolioURL: portfolioURL,
		AdminURL:     "/portfolios/" + dirName + "/admin/",
		DataURL:      "/api/portfolio/" + result.PortfolioID,
		SiteTemplate: result.SiteTemplate,
		DesignTheme:  result.DesignTheme,
		Status:       result.Status,
	}, nil
}

// enqueueCallback hands the created-portfolio notification to the worker.
// Dispatch failures are logged, never surfaced: the site is already on disk.
func (s *portfolioService) enqueueCallback(entry *portfolio.RegistryEntry, portfolioURL string) {
	if s.queue == nil || entry.CallbackURL == "" {
		return
	}
	payload, err := json.Marshal(shared.PortfolioCreatedPayload{
		PortfolioID:  entry.PortfolioID,
		UserID:       entry.UserID,
		PortfolioURL: portfolioURL,
		Status:       portfolio.StatusDraft,
		CreatedAt:    entry.CreatedAt,
		CallbackURL:  entry.CallbackURL,
	})
	if err != nil {
		log.Warn().Err(err).Str("portfolio_id", entry.PortfolioID).Msg("Callback payload marshal failed")
		return
	}
	if _, err := s.queue.Enqueue(asynq.NewTask(shared.TypePortfolioCallback, payload)); err != nil {
		log.Warn().Err(err).Str("portfolio_id", entry.PortfolioID).Msg("Callback enqueue failed")
	}
}

func (s *portfolioService) Get(ctx context.Context, portfolioID string) (*portfolio.PortfolioDetail, error) {
	entry, err := s.registry.Get(ctx, portfolioID)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(entry.Path, "data", "portfolio.json"))
	if err != nil {
		return nil, fmt.Errorf("portfolio data file: %w", portfolio.ErrPortfolioNotFound)
	}
	var snapshot portfolio.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("decode portfolio data file: %w", err)
	}

	return &portfolio.PortfolioDetail{
		PortfolioID: portfolioID,
		Data:        &snapshot,
		Metadata: portfolio.Metadata{
			UserID:       entry.UserID,
			SiteTemplate: entry.SiteTemplate,
			DesignTheme:  entry.DesignTheme,
			CreatedAt:    entry.CreatedAt,
			PortfolioURL: "/portfolios/" + filepath.Base(entry.Path) + "/index.html",
		},
	}, nil
}

func (s *portfolioService) Update(ctx context.Context, portfolioID string, req *portfolio.UpdateRequest) (*portfolio.UpdateResponse, error) {
	entry, err := s.registry.Get(ctx, portfolioID)
	if err != nil {
		return nil, err
	}

	dataFile := filepath.Join(entry.Path, "data", "portfolio.json")
	data, err := os.ReadFile(dataFile)
	if err != nil {
		return nil, fmt.Errorf("portfolio data file: %w", portfolio.ErrPortfolioNotFound)
	}
	merged := map[string]any{}
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, fmt.Errorf("decode portfolio data file: %w", err)
	}
	for key, value := range req.Fields {
		if key == "regenerate" {
			continue
		}
		merged[key] = value
	}
	if err := portfolio.WriteJSONFile(dataFile, merged); err != nil {
		return nil, err
	}

	if req.Regenerate() {
		payload, err := json.Marshal(flatPayloadFromSnapshot(entry.UserID, merged))
		if err != nil {
			return nil, fmt.Errorf("rebuild payload: %w", err)
		}
		in, err := portfolio.ParseInput(payload)
		if err != nil {
			return nil, err
		}
		if _, err := s.gen.Generate(in, entry.Path, entry.SiteTemplate, entry.DesignTheme); err != nil {
			return nil, err
		}
	}

	log.Info().Str("portfolio_id", portfolioID).Bool("regenerated", req.Regenerate()).Msg("Portfolio updated")

	return &portfolio.UpdateResponse{
		PortfolioID: portfolioID,
		UpdatedAt:   time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// flatPayloadFromSnapshot rebuilds a flat generation payload from the
// merged snapshot. Snapshot text is stored HTML-escaped, so every string is
// unescaped first and generation re-escapes it once. The contact line is
// split back into email and phone; everything else carries over under its
// snapshot key.
func flatPayloadFromSnapshot(userID string, merged map[string]any) map[string]any {
	clean, _ := unescapeValue(merged).(map[string]any)
	email, phone := "", ""
	if contact, ok := clean["contact_line"].(string); ok && strings.Contains(contact, "|") {
		parts := strings.SplitN(contact, "|", 2)
		email = strings.TrimSpace(parts[0])
		phone = strings.TrimSpace(parts[1])
	}
	return map[string]any{
		"user_id":      userID,
		"name":         clean["name"],
		"bio":          clean["bio"],
		"headline":     clean["headline"],
		"photo_url":    clean["photo_url"],
		"email":        email,
		"phone":        phone,
		"address_line": clean["address_line"],
		"profiles":     clean["profiles"],
		"skills":       clean["skills"],
		"education":    clean["education"],
		"projects":     clean["projects"],
	}
}

func unescapeValue(v any) any {
	switch t := v.(type) {
	case string:
		return html.UnescapeString(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = unescapeValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for key, item := range t {
			out[key] = unescapeValue(item)
		}
		return out
	default:
		return v
	}
}

func (s *portfolioService) Validate(ctx context.Context, portfolioID string) (*portfolio.ValidateResponse, error) {
	entry, err := s.registry.Get(ctx, portfolioID)
	if err != nil {
		return nil, err
	}
	result, err := portfolio.MarkValidated(entry.Path)
	if err != nil {
		return nil, err
	}

	log.Info().Str("portfolio_id", portfolioID).Str("path", result.Path).Msg("Portfolio validated")

	return &portfolio.ValidateResponse{
		PortfolioID: portfolioID,
		Status:      result.Status,
	}, nil
}
