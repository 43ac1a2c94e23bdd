package portfolio

import "encoding/json"

// TemplateMode selects which project source populates the generated site:
// explicit portfolio projects, work-history entries, or both.
type TemplateMode string

const (
	TemplatePortfolio TemplateMode = "portfolio"
	TemplateCV        TemplateMode = "cv"
	TemplateHybrid    TemplateMode = "hybrid"

	DefaultTemplateMode = TemplateHybrid
)

func (m TemplateMode) Valid() bool {
	switch m {
	case TemplatePortfolio, TemplateCV, TemplateHybrid:
		return true
	}
	return false
}

// DesignTheme selects the stylesheet shipped with the rendered page.
type DesignTheme string

const (
	ThemeClassic  DesignTheme = "classic"
	ThemeModern   DesignTheme = "modern"
	ThemeContrast DesignTheme = "contrast"
	ThemeArtistic DesignTheme = "artistic"

	DefaultDesignTheme = ThemeClassic
)

// designThemeFiles maps each theme to its stylesheet asset.
var designThemeFiles = map[DesignTheme]string{
	ThemeClassic:  "main.css",
	ThemeModern:   "modern.css",
	ThemeContrast: "contrast.css",
	ThemeArtistic: "artistic.css",
}

func (t DesignTheme) Valid() bool {
	_, ok := designThemeFiles[t]
	return ok
}

const (
	defaultProjectImage = "https://via.placeholder.com/400x250/0077b6/FFFFFF?text=Project"
	defaultProfilePhoto = "https://via.placeholder.com/240x240/2c3e50/FFFFFF?text=Profile"
)

// ==================== INPUT SHAPES ====================

// FlatProfile is the canonical input shape every payload is normalized into.
// Downstream code never branches on optional-ness again: missing fields are
// empty strings and get their defaults in BuildRecord.
type FlatProfile struct {
	UserID      string           `json:"user_id"`
	Name        string           `json:"name"`
	Bio         string           `json:"bio"`
	Headline    string           `json:"headline"`
	PhotoURL    string           `json:"photo_url"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone"`
	AddressLine string           `json:"address_line"`
	Profiles    []ProfileInput   `json:"profiles"`
	Skills      []SkillInput     `json:"skills"`
	Education   []EducationInput `json:"education"`
	Projects    []ProjectInput   `json:"projects"`
}

// ResumeDocument is the JSON-Resume-like input shape, detected by the
// presence of a "basics" object.
type ResumeDocument struct {
	UserID    string           `json:"user_id"`
	Basics    ResumeBasics     `json:"basics"`
	Work      []WorkEntry      `json:"work"`
	Projects  []ResumeProject  `json:"projects"`
	Skills    []SkillInput     `json:"skills"`
	Education []EducationInput `json:"education"`
}

type ResumeBasics struct {
	Name     string         `json:"name"`
	Label    string         `json:"label"`
	Summary  string         `json:"summary"`
	Image    string         `json:"image"`
	Email    string         `json:"email"`
	Phone    string         `json:"phone"`
	Location ResumeLocation `json:"location"`
	Profiles []ProfileInput `json:"profiles"`
}

type ResumeLocation struct {
	Address     string `json:"address"`
	PostalCode  string `json:"postalCode"`
	City        string `json:"city"`
	Region      string `json:"region"`
	CountryCode string `json:"countryCode"`
}

type ResumeProject struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// WorkEntry maps to a synthetic project. Highlights stays untyped because
// upstream systems send anything there; non-list values are ignored.
type WorkEntry struct {
	Name       string `json:"name"`
	Position   string `json:"position"`
	Summary    string `json:"summary"`
	Highlights any    `json:"highlights"`
}

type ProfileInput struct {
	Network  string `json:"network"`
	URL      string `json:"url"`
	Username string `json:"username"`
}

// SkillInput accepts either a {name, keywords} object or a bare string
// (snapshots store skills flattened, and the update flow feeds them back in).
type SkillInput struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

func (s *SkillInput) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		s.Name = name
		s.Keywords = nil
		return nil
	}
	type alias SkillInput
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = SkillInput(a)
	return nil
}

// EducationInput accepts both the resume shape (studyType/area and the date
// pair) and the snapshot shape, where title and period are already composed.
// The composed forms win when present so snapshot education survives the
// update flow intact.
type EducationInput struct {
	Institution string `json:"institution"`
	StudyType   string `json:"studyType"`
	Area        string `json:"area"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Score       string `json:"score"`
	Title       string `json:"title"`
	Period      string `json:"period"`
}

type ProjectInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ==================== CANONICAL RECORD ====================

// CanonicalRecord is the single source of truth for one generated portfolio.
// Identifiers are assigned once per generation call and never reassigned.
type CanonicalRecord struct {
	PortfolioID  string           `json:"portfolio_id"`
	UserID       string           `json:"user_id"`
	Name         string           `json:"name"`
	Bio          string           `json:"bio"`
	Headline     string           `json:"headline"`
	PhotoURL     string           `json:"photo_url"`
	ContactLine  string           `json:"contact_line"`
	AddressLine  string           `json:"address_line"`
	Profiles     []SocialProfile  `json:"profiles"`
	Skills       []string         `json:"skills"`
	Education    []EducationEntry `json:"education"`
	Projects     []Project        `json:"projects"`
	CreatedAt    string           `json:"created_at"`
	UpdatedAt    string           `json:"updated_at"`
	SiteTemplate TemplateMode     `json:"site_template"`
}

type SocialProfile struct {
	Network string `json:"network"`
	URL     string `json:"url"`
}

type EducationEntry struct {
	Institution string `json:"institution"`
	Title       string `json:"title"`
	Period      string `json:"period"`
	Score       string `json:"score"`
}

type Project struct {
	ProjectID   string `json:"project_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Snapshot is the flat data file written next to the rendered page
// (data/portfolio.json). It is what the admin UI and the update flow edit.
// Per-generation identifiers stay out of it so re-rendering the same input
// reproduces the file byte for byte.
type Snapshot struct {
	Name        string            `json:"name"`
	Bio         string            `json:"bio"`
	Headline    string            `json:"headline"`
	PhotoURL    string            `json:"photo_url"`
	ContactLine string            `json:"contact_line"`
	AddressLine string            `json:"address_line"`
	Profiles    []SocialProfile   `json:"profiles"`
	Skills      []string          `json:"skills"`
	Education   []EducationEntry  `json:"education"`
	Projects    []SnapshotProject `json:"projects"`
}

// SnapshotProject carries only the fields the admin UI edits and the
// renderer consumes.
type SnapshotProject struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ==================== RELATIONAL PROJECTION ====================

// SQLProjection is a derived parent/child row view of a record, for
// ingestion by a row-oriented store. Always regenerable, never edited.
type SQLProjection struct {
	Portfolios []PortfolioRow `json:"portfolios"`
	Projects   []ProjectRow   `json:"projects"`
}

type PortfolioRow struct {
	PortfolioID string `json:"portfolio_id"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type ProjectRow struct {
	ProjectID   string `json:"project_id"`
	PortfolioID string `json:"portfolio_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ==================== WORKFLOW STATE ====================

const (
	StatusDraft     = "draft"
	StatusValidated = "validated"
)

// WorkflowState lives at data/workflow_state.json inside a generated site.
type WorkflowState struct {
	Status           string       `json:"status"`
	SiteTemplate     TemplateMode `json:"site_template"`
	PortfolioID      string       `json:"portfolio_id"`
	EditableAdminURL string       `json:"editable_admin_url"`
	DesignTheme      DesignTheme  `json:"design_theme"`
	ValidatedAt      string       `json:"validated_at,omitempty"`
}

// ==================== REGISTRY ====================

// RegistryEntry maps a portfolio id to its target directory and the
// configuration it was generated with.
type RegistryEntry struct {
	PortfolioID  string       `json:"portfolio_id"`
	UserID       string       `json:"user_id"`
	Path         string       `json:"path"`
	SiteTemplate TemplateMode `json:"site_template"`
	DesignTheme  DesignTheme  `json:"design_theme"`
	CreatedAt    string       `json:"created_at"`
	CallbackURL  string       `json:"callback_url,omitempty"`
}
