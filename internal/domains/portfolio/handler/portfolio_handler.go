package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/portfolio"
	"portfolio-backend/internal/shared/response"
)

type Handler struct {
	svc portfolio.Service
}

func NewHandler(svc portfolio.Service) *Handler {
	return &Handler{svc: svc}
}

// Generate creates a new portfolio from the request body. The body is both
// the profile payload (flat or resume shaped) and the carrier of the
// configuration fields.
// POST /api/generate
func (h *Handler) Generate(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 {
		response.BadRequest(c, "No JSON data provided")
		return
	}

	var req portfolio.GenerateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		response.BadRequest(c, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.svc.Generate(c.Request.Context(), body, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

// Get returns the stored snapshot and metadata.
// GET /api/portfolio/:id
func (h *Handler) Get(c *gin.Context) {
	detail, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, detail)
}

// Update merges fields into the stored snapshot and regenerates the site.
// PUT /api/portfolio/:id
func (h *Handler) Update(c *gin.Context) {
	var req portfolio.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "No JSON data provided")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// Validate marks a generated draft as validated.
// POST /api/portfolio/:id/validate
func (h *Handler) Validate(c *gin.Context) {
	resp, err := h.svc.Validate(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// writeError maps domain errors onto the response envelope.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, portfolio.ErrPortfolioNotFound):
		response.NotFound(c, "Portfolio not found")
	case errors.Is(err, portfolio.ErrUnsupportedTemplateMode),
		errors.Is(err, portfolio.ErrUnsupportedDesignTheme):
		response.BadRequest(c, err.Error())
	case errors.Is(err, portfolio.ErrNoDraft):
		response.Conflict(c, err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}
