package portfolio

import (
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// GenerateRequest carries the configuration fields of a generate call. The
// profile data itself travels as the raw body; these fields may sit next to
// it and are simply not part of the profile shapes.
type GenerateRequest struct {
	UserID       string `json:"user_id"`
	SiteTemplate string `json:"site_template"`
	DesignTheme  string `json:"design_theme"`
	CallbackURL  string `json:"callback_url"`
}

func (r GenerateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SiteTemplate,
			validation.In(string(TemplatePortfolio), string(TemplateCV), string(TemplateHybrid)).
				Error("site_template must be one of: portfolio, cv, hybrid"),
		),
		validation.Field(&r.DesignTheme,
			validation.In(string(ThemeClassic), string(ThemeModern), string(ThemeContrast), string(ThemeArtistic)).
				Error("design_theme must be one of: classic, modern, contrast, artistic"),
		),
		validation.Field(&r.CallbackURL,
			validation.When(r.CallbackURL != "", is.URL.Error("callback_url must be a valid URL")),
		),
	)
}

// Mode returns the requested template mode, defaulted when absent.
func (r GenerateRequest) Mode() TemplateMode {
	if r.SiteTemplate == "" {
		return DefaultTemplateMode
	}
	return TemplateMode(r.SiteTemplate)
}

// Theme returns the requested design theme, defaulted when absent.
func (r GenerateRequest) Theme() DesignTheme {
	if r.DesignTheme == "" {
		return DefaultDesignTheme
	}
	return DesignTheme(r.DesignTheme)
}

type GenerateResponse struct {
	PortfolioID  string       `json:"portfolio_id"`
	PortfolioURL string       `json:"portfolio_url"`
	AdminURL     string       `json:"admin_url"`
	DataURL      string       `json:"data_url"`
	SiteTemplate TemplateMode `json:"site_template"`
	DesignTheme  DesignTheme  `json:"design_theme"`
	Status       string       `json:"status"`
}

// UpdateRequest is a free-form field merge against the stored snapshot.
// The optional "regenerate" key controls whether the site is re-rendered
// after the merge (default true).
type UpdateRequest struct {
	Fields map[string]any
}

func (r *UpdateRequest) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.Fields)
}

func (r *UpdateRequest) Validate() error {
	if len(r.Fields) == 0 {
		return validation.NewError("validation_empty_update", "no fields to update")
	}
	return nil
}

func (r *UpdateRequest) Regenerate() bool {
	if v, ok := r.Fields["regenerate"].(bool); ok {
		return v
	}
	return true
}

type UpdateResponse struct {
	PortfolioID string `json:"portfolio_id"`
	UpdatedAt   string `json:"updated_at"`
}

type ValidateResponse struct {
	PortfolioID string `json:"portfolio_id"`
	Status      string `json:"status"`
}

// PortfolioDetail is the GET payload: the editable snapshot plus registry
// metadata.
type PortfolioDetail struct {
	PortfolioID string    `json:"portfolio_id"`
	Data        *Snapshot `json:"data"`
	Metadata    Metadata  `json:"metadata"`
}

type Metadata struct {
	UserID       string       `json:"user_id"`
	SiteTemplate TemplateMode `json:"site_template"`
	DesignTheme  DesignTheme  `json:"design_theme"`
	CreatedAt    string       `json:"created_at"`
	PortfolioURL string       `json:"portfolio_url"`
}
