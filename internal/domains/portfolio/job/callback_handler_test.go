package job

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/shared"
)

func callbackTask(t *testing.T, url string) *asynq.Task {
	t.Helper()
	payload, err := json.Marshal(shared.PortfolioCreatedPayload{
		PortfolioID:  "p-1",
		UserID:       "alice",
		PortfolioURL: "/portfolios/alice/index.html",
		Status:       "draft",
		CallbackURL:  url,
	})
	require.NoError(t, err)
	return asynq.NewTask(shared.TypePortfolioCallback, payload)
}

func TestProcessTask_DeliversPayload(t *testing.T) {
	var received shared.PortfolioCreatedPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	h := NewCallbackHandler()
	err := h.ProcessTask(context.Background(), callbackTask(t, srv.URL))
	require.NoError(t, err)
	assert.Equal(t, "p-1", received.PortfolioID)
	assert.Equal(t, "/portfolios/alice/index.html", received.PortfolioURL)
}

func TestProcessTask_RetriesOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	h := NewCallbackHandler()
	err := h.ProcessTask(context.Background(), callbackTask(t, srv.URL))
	require.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}

func TestProcessTask_SkipsMalformedPayload(t *testing.T) {
	h := NewCallbackHandler()
	err := h.ProcessTask(context.Background(), asynq.NewTask(shared.TypePortfolioCallback, []byte("not json")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}
