package portfolio

import (
	"fmt"
	"regexp"
	"strings"
)

// projectLoopPattern matches the single repeatable block of the page
// template, non-greedily, including the whitespace in front of it.
var projectLoopPattern = regexp.MustCompile(`(?s)\s*\{%\s*for project in projects\s*%\}.*?\{%\s*endfor\s*%\}`)

const projectCardTemplate = `                <div class="project-card">
                    <img src="{image}" alt="{title}">
                    <h3>{title}</h3>
                    <p>{description}</p>
                </div>`

var sectionTitleByTemplate = map[TemplateMode]string{
	TemplatePortfolio: "Réalisations",
	TemplateCV:        "Expériences",
	TemplateHybrid:    "Réalisations & Expériences",
}

// RenderPage substitutes the record into the page template. Two passes:
// scalar {{token}} placeholders first (unmatched tokens are left as-is),
// then the single {% for project in projects %} block is expanded into one
// card per project. Zero or multiple blocks means the template asset is
// broken and rendering fails.
func RenderPage(templateText string, record *CanonicalRecord) (string, error) {
	replacements := []struct {
		token string
		value string
	}{
		{"{{name}}", record.Name},
		{"{{bio}}", record.Bio},
		{"{{section_title}}", sectionTitleByTemplate[record.SiteTemplate]},
		{"{{photo_url}}", record.PhotoURL},
		{"{{headline}}", record.Headline},
		{"{{contact_line}}", record.ContactLine},
		{"{{address_line}}", record.AddressLine},
		{"{{profiles_html}}", profilesHTML(record.Profiles)},
		{"{{skills_html}}", skillsHTML(record.Skills)},
		{"{{education_html}}", educationHTML(record.Education)},
	}
	rendered := templateText
	for _, r := range replacements {
		rendered = strings.ReplaceAll(rendered, r.token, r.value)
	}

	blocks := projectLoopPattern.FindAllStringIndex(rendered, -1)
	if len(blocks) != 1 {
		return "", ErrBrokenTemplate
	}
	start, end := blocks[0][0], blocks[0][1]
	return rendered[:start] + "\n" + BuildProjectCards(record.Projects) + rendered[end:], nil
}

// BuildProjectCards expands the card fragment once per project, in order.
func BuildProjectCards(projects []Project) string {
	cards := make([]string, 0, len(projects))
	for _, p := range projects {
		card := strings.ReplaceAll(projectCardTemplate, "{image}", p.Image)
		card = strings.ReplaceAll(card, "{title}", p.Title)
		card = strings.ReplaceAll(card, "{description}", p.Description)
		cards = append(cards, card)
	}
	return strings.Join(cards, "\n")
}

func profilesHTML(profiles []SocialProfile) string {
	if len(profiles) == 0 {
		return "<li>Non renseigné</li>"
	}
	items := make([]string, 0, len(profiles))
	for _, p := range profiles {
		items = append(items, fmt.Sprintf(`<li><strong>%s</strong> : <a href="%s">%s</a></li>`, p.Network, p.URL, p.URL))
	}
	return strings.Join(items, "\n")
}

func skillsHTML(skills []string) string {
	if len(skills) == 0 {
		return "<span>Aucune</span>"
	}
	tags := make([]string, 0, len(skills))
	for _, skill := range skills {
		tags = append(tags, fmt.Sprintf(`<span class="skill-tag">%s</span>`, skill))
	}
	return strings.Join(tags, "\n")
}

func educationHTML(education []EducationEntry) string {
	if len(education) == 0 {
		return `<div class="education-item"><h3>Formation non renseignée</h3></div>`
	}
	items := make([]string, 0, len(education))
	for _, item := range education {
		items = append(items, fmt.Sprintf(
			`<div class="education-item"><h3>%s</h3><p>%s</p><p>%s</p><p>%s</p></div>`,
			item.Institution, item.Title, item.Period, item.Score,
		))
	}
	return strings.Join(items, "\n")
}
