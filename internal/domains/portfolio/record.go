package portfolio

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	headlineFallback = "Profil professionnel"
	contactFallback  = "Contact non renseigné"
	addressFallback  = "Adresse non renseignée"
	networkFallback  = "Profil"
)

// BuildRecord validates the template mode, normalizes the input and
// assembles the canonical record: fresh portfolio and project identifiers,
// sanitized text everywhere, defaults for every missing optional field,
// UTC timestamps.
func BuildRecord(in *Input, mode TemplateMode) (*CanonicalRecord, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w %q, expected one of: cv, hybrid, portfolio", ErrUnsupportedTemplateMode, mode)
	}
	flat, err := Normalize(in, mode)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)

	userID := Sanitize(flat.UserID)
	if userID == "" {
		userID = uuid.NewString()
	}

	projects := make([]Project, 0, len(flat.Projects))
	for _, p := range flat.Projects {
		image := Sanitize(p.Image)
		if image == "" {
			image = defaultProjectImage
		}
		projects = append(projects, Project{
			ProjectID:   uuid.NewString(),
			Title:       Sanitize(p.Title),
			Description: Sanitize(p.Description),
			Image:       image,
		})
	}

	headline := Sanitize(flat.Headline)
	if headline == "" {
		headline = headlineFallback
	}
	photoURL := Sanitize(flat.PhotoURL)
	if photoURL == "" {
		photoURL = defaultProfilePhoto
	}
	contactLine := joinNonEmpty(" | ", Sanitize(flat.Email), Sanitize(flat.Phone))
	if contactLine == "" {
		contactLine = contactFallback
	}
	addressLine := Sanitize(flat.AddressLine)
	if addressLine == "" {
		addressLine = addressFallback
	}

	return &CanonicalRecord{
		PortfolioID:  uuid.NewString(),
		UserID:       userID,
		Name:         Sanitize(flat.Name),
		Bio:          Sanitize(flat.Bio),
		Headline:     headline,
		PhotoURL:     photoURL,
		ContactLine:  contactLine,
		AddressLine:  addressLine,
		Profiles:     normalizeProfiles(flat.Profiles),
		Skills:       normalizeSkills(flat.Skills),
		Education:    normalizeEducation(flat.Education),
		Projects:     projects,
		CreatedAt:    now,
		UpdatedAt:    now,
		SiteTemplate: mode,
	}, nil
}

// normalizeProfiles drops entries with neither network nor url. An entry
// with a url but no network label gets the generic label.
func normalizeProfiles(profiles []ProfileInput) []SocialProfile {
	normalized := make([]SocialProfile, 0, len(profiles))
	for _, p := range profiles {
		network := Sanitize(p.Network)
		url := p.URL
		if url == "" {
			url = p.Username
		}
		url = Sanitize(url)
		if network == "" && url == "" {
			continue
		}
		if network == "" {
			network = networkFallback
		}
		normalized = append(normalized, SocialProfile{Network: network, URL: url})
	}
	return normalized
}

// normalizeSkills flattens each skill into its name followed by its
// keywords, dropping empties.
func normalizeSkills(skills []SkillInput) []string {
	normalized := make([]string, 0, len(skills))
	for _, s := range skills {
		if name := Sanitize(s.Name); name != "" {
			normalized = append(normalized, name)
		}
		for _, kw := range s.Keywords {
			if keyword := Sanitize(kw); keyword != "" {
				normalized = append(normalized, keyword)
			}
		}
	}
	return normalized
}

func normalizeEducation(education []EducationInput) []EducationEntry {
	normalized := make([]EducationEntry, 0, len(education))
	for _, item := range education {
		title := Sanitize(item.Title)
		if title == "" {
			title = joinNonEmpty(" - ", Sanitize(item.StudyType), Sanitize(item.Area))
		}
		period := Sanitize(item.Period)
		if period == "" {
			period = joinNonEmpty(" → ", Sanitize(item.StartDate), Sanitize(item.EndDate))
		}
		normalized = append(normalized, EducationEntry{
			Institution: Sanitize(item.Institution),
			Title:       title,
			Period:      period,
			Score:       Sanitize(item.Score),
		})
	}
	return normalized
}
