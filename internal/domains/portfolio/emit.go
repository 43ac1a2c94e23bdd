package portfolio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"portfolio-backend/templates"
)

// Generator turns a profile payload into a deployable static site tree.
type Generator struct {
	// TemplatesDir overrides the embedded template bundle when set, so
	// deployments can edit the page template without rebuilding.
	TemplatesDir string
}

// GenerateResult is what a caller needs to register and expose a site.
type GenerateResult struct {
	Path         string       `json:"path"`
	AdminURL     string       `json:"admin_url"`
	PortfolioID  string       `json:"portfolio_id"`
	UserID       string       `json:"user_id"`
	SiteTemplate TemplateMode `json:"site_template"`
	DesignTheme  DesignTheme  `json:"design_theme"`
	Status       string       `json:"status"`
}

// Generate builds the canonical record, renders the page and emits the full
// artifact set under outputDir. Configuration is validated and the page
// rendered before anything touches the filesystem; a later write error
// aborts without rollback and the caller recovers by re-running generation.
// Re-running against an existing directory fully overwrites prior content.
func (g *Generator) Generate(in *Input, outputDir string, mode TemplateMode, theme DesignTheme) (*GenerateResult, error) {
	stylesheet, ok := designThemeFiles[theme]
	if !ok {
		return nil, fmt.Errorf("%w %q, expected one of: artistic, classic, contrast, modern", ErrUnsupportedDesignTheme, theme)
	}

	record, err := BuildRecord(in, mode)
	if err != nil {
		return nil, err
	}

	templateText, err := g.readTemplateAsset("index.html")
	if err != nil {
		return nil, fmt.Errorf("read page template: %w", err)
	}
	css, err := g.readTemplateAsset(path.Join("styles", stylesheet))
	if err != nil {
		return nil, fmt.Errorf("read theme stylesheet: %w", err)
	}

	rendered, err := RenderPage(string(templateText), record)
	if err != nil {
		return nil, err
	}

	outputPath, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, fmt.Errorf("resolve output dir: %w", err)
	}
	for _, dir := range []string{outputPath,
		filepath.Join(outputPath, "styles"),
		filepath.Join(outputPath, "admin"),
		filepath.Join(outputPath, "data"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dirs: %w", err)
		}
	}

	snapshotProjects := make([]SnapshotProject, 0, len(record.Projects))
	for _, p := range record.Projects {
		snapshotProjects = append(snapshotProjects, SnapshotProject{
			Title:       p.Title,
			Description: p.Description,
			Image:       p.Image,
		})
	}
	snapshot := &Snapshot{
		Name:        record.Name,
		Bio:         record.Bio,
		Headline:    record.Headline,
		PhotoURL:    record.PhotoURL,
		ContactLine: record.ContactLine,
		AddressLine: record.AddressLine,
		Profiles:    record.Profiles,
		Skills:      record.Skills,
		Education:   record.Education,
		Projects:    snapshotProjects,
	}
	state := &WorkflowState{
		Status:           StatusDraft,
		SiteTemplate:     mode,
		PortfolioID:      record.PortfolioID,
		EditableAdminURL: "/admin/",
		DesignTheme:      theme,
	}

	writes := []struct {
		rel  string
		data []byte
	}{
		{"index.html", []byte(rendered)},
		{filepath.Join("styles", "main.css"), css},
		{filepath.Join("admin", "index.html"), []byte(decapAdminIndex)},
		{filepath.Join("admin", "config.yml"), []byte(decapConfigYML)},
		{"netlify.toml", []byte(netlifyTOML)},
	}
	for _, w := range writes {
		if err := os.WriteFile(filepath.Join(outputPath, w.rel), w.data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", w.rel, err)
		}
	}
	for rel, artifact := range map[string]any{
		"portfolio.json":                snapshot,
		"portfolio_document.json":       record,
		"portfolio_sql_projection.json": BuildSQLProjection(record),
		"workflow_state.json":           state,
	} {
		if err := WriteJSONFile(filepath.Join(outputPath, "data", rel), artifact); err != nil {
			return nil, err
		}
	}

	return &GenerateResult{
		Path:         outputPath,
		AdminURL:     "/admin/",
		PortfolioID:  record.PortfolioID,
		UserID:       record.UserID,
		SiteTemplate: mode,
		DesignTheme:  theme,
		Status:       StatusDraft,
	}, nil
}

func (g *Generator) readTemplateAsset(rel string) ([]byte, error) {
	if g.TemplatesDir != "" {
		return os.ReadFile(filepath.Join(g.TemplatesDir, filepath.FromSlash(rel)))
	}
	return templates.FS.ReadFile(rel)
}

// WriteJSONFile persists an artifact with two-space indentation and without
// HTML escaping, so sanitized entities like &lt; stay readable in the file.
func WriteJSONFile(filename string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(filename), err)
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(filename), err)
	}
	return nil
}
