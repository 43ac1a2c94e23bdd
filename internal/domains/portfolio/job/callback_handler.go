package job

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/shared"
)

// CallbackHandler notifies an external system that its portfolio was
// generated. A malformed payload is skipped; an unreachable or failing
// callback endpoint is left to asynq's retry policy.
type CallbackHandler struct {
	client *http.Client
}

func NewCallbackHandler() *CallbackHandler {
	return &CallbackHandler{
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (h *CallbackHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var p shared.PortfolioCreatedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return asynq.SkipRetry
	}

	body, err := json.Marshal(p)
	if err != nil {
		return asynq.SkipRetry
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.CallbackURL, bytes.NewReader(body))
	if err != nil {
		return asynq.SkipRetry
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("callback request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("callback %s returned status %d", p.CallbackURL, resp.StatusCode)
	}

	log.Info().
		Str("portfolio_id", p.PortfolioID).
		Str("callback_url", p.CallbackURL).
		Msg("Callback delivered")
	return nil
}
