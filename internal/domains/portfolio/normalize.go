package portfolio

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Input is the tagged union of the two accepted payload shapes. Exactly one
// of the fields is set, decided by a single structural check at the boundary.
type Input struct {
	Flat   *FlatProfile
	Resume *ResumeDocument
}

// ParseInput detects the payload shape (a résumé document carries a nested
// "basics" object, the legacy shape does not) and decodes it accordingly.
func ParseInput(data []byte) (*Input, error) {
	var probe struct {
		Basics json.RawMessage `json:"basics"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	if probe.Basics != nil {
		var doc ResumeDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode resume payload: %w", err)
		}
		return &Input{Resume: &doc}, nil
	}

	var flat FlatProfile
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, fmt.Errorf("decode flat payload: %w", err)
	}
	return &Input{Flat: &flat}, nil
}

// Normalize maps any accepted input into the canonical flat shape. A flat
// payload passes through unchanged; a résumé document is mapped, with the
// project list sourced according to the template mode.
func Normalize(in *Input, mode TemplateMode) (*FlatProfile, error) {
	if in.Resume != nil {
		return resumeToFlat(in.Resume, mode)
	}
	return in.Flat, nil
}

func resumeToFlat(doc *ResumeDocument, mode TemplateMode) (*FlatProfile, error) {
	basics := doc.Basics
	loc := basics.Location

	mapped := make([]ProjectInput, 0, len(doc.Projects))
	for _, p := range doc.Projects {
		mapped = append(mapped, ProjectInput{
			Title:       p.Name,
			Description: p.Description,
			Image:       p.Image,
		})
	}

	workProjects := make([]ProjectInput, 0, len(doc.Work))
	for _, w := range doc.Work {
		workProjects = append(workProjects, ProjectInput{
			Title:       joinNonEmpty(" - ", w.Position, w.Name),
			Description: strings.TrimSpace(w.Summary + " " + joinHighlights(w.Highlights)),
		})
	}

	var selected []ProjectInput
	switch mode {
	case TemplatePortfolio:
		selected = mapped
	case TemplateCV:
		selected = workProjects
	case TemplateHybrid:
		selected = append(mapped, workProjects...)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedTemplateMode, mode)
	}

	userID := doc.UserID
	if userID == "" {
		userID = basics.Email
	}
	bio := basics.Summary
	if bio == "" {
		bio = basics.Label
	}

	return &FlatProfile{
		UserID:   userID,
		Name:     basics.Name,
		Bio:      bio,
		Headline: basics.Label,
		PhotoURL: basics.Image,
		Email:    basics.Email,
		Phone:    basics.Phone,
		AddressLine: joinNonEmpty(" | ",
			loc.Address,
			joinNonEmpty(" ", loc.PostalCode, loc.City),
			loc.Region,
			loc.CountryCode,
		),
		Profiles:  basics.Profiles,
		Skills:    doc.Skills,
		Education: doc.Education,
		Projects:  selected,
	}, nil
}

// joinHighlights flattens a work entry's highlights into a comma-joined
// string. Anything that is not a list is ignored, not an error.
func joinHighlights(highlights any) string {
	list, ok := highlights.([]any)
	if !ok {
		return ""
	}
	parts := make([]string, 0, len(list))
	for _, item := range list {
		parts = append(parts, fmt.Sprint(item))
	}
	return strings.Join(parts, ", ")
}

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
