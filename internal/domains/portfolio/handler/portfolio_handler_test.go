package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/portfolio"
	"portfolio-backend/internal/domains/portfolio/repository"
	"portfolio-backend/internal/domains/portfolio/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := service.NewService(&portfolio.Generator{}, repository.NewMemoryRegistry(), nil, t.TempDir())
	h := NewHandler(svc)

	router := gin.New()
	router.POST("/api/generate", h.Generate)
	router.GET("/api/portfolio/:id", h.Get)
	router.PUT("/api/portfolio/:id", h.Update)
	router.POST("/api/portfolio/:id/validate", h.Validate)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const handlerPayload = `{
	"user_id": "alice",
	"name": "Alice Martin",
	"email": "alice@example.com",
	"site_template": "portfolio",
	"design_theme": "modern",
	"projects": [{"title": "Atlas", "description": "Carto interne"}]
}`

func TestHandlerGenerate(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/generate", handlerPayload)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"portfolio_url":"/portfolios/alice/index.html"`)
	assert.Contains(t, w.Body.String(), `"status":"draft"`)
}

func TestHandlerGenerate_BadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"invalid json", `{"name": `},
		{"unknown template", `{"name": "x", "site_template": "brochure"}`},
		{"unknown theme", `{"name": "x", "design_theme": "neon"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t)
			w := doRequest(router, http.MethodPost, "/api/generate", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}

func TestHandlerGetUpdateValidateFlow(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/generate", handlerPayload)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			PortfolioID string `json:"portfolio_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created.Data.PortfolioID
	require.NotEmpty(t, id)

	w = doRequest(router, http.MethodGet, "/api/portfolio/"+id, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Alice Martin")

	w = doRequest(router, http.MethodPut, "/api/portfolio/"+id, `{"name": "Alice Durand"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/portfolio/"+id, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Alice Durand")

	w = doRequest(router, http.MethodPost, "/api/portfolio/"+id+"/validate", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"validated"`)
}

func TestHandlerNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/portfolio/unknown-id", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")

	w = doRequest(router, http.MethodPost, "/api/portfolio/unknown-id/validate", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlerUpdate_EmptyBody(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(router, http.MethodPut, "/api/portfolio/some-id", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
