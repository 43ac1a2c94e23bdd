package portfolio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const renderFixture = `<h1>{{name}}</h1>
<p>{{headline}}</p>
<h2>{{section_title}}</h2>
<ul>{{profiles_html}}</ul>
<div>{{skills_html}}</div>
<div>{{education_html}}</div>
<div class="grid">
    {% for project in projects %}
    <div>{{ project.title }}</div>
    {% endfor %}
</div>`

func renderRecord() *CanonicalRecord {
	return &CanonicalRecord{
		Name:         "Alice",
		Headline:     "Développeuse",
		SiteTemplate: TemplatePortfolio,
		Projects: []Project{
			{Title: "Atlas", Description: "Carto", Image: "https://example.com/a.png"},
		},
	}
}

func TestRenderPage_TokenSubstitution(t *testing.T) {
	out, err := RenderPage(renderFixture, renderRecord())
	require.NoError(t, err)

	assert.Contains(t, out, "<h1>Alice</h1>")
	assert.Contains(t, out, "<p>Développeuse</p>")
	assert.Contains(t, out, "<h2>Réalisations</h2>")
	assert.NotContains(t, out, "{% for")
	assert.NotContains(t, out, "{% endfor")
	assert.Contains(t, out, `<img src="https://example.com/a.png" alt="Atlas">`)
	assert.Contains(t, out, "<h3>Atlas</h3>")
	assert.Contains(t, out, "<p>Carto</p>")
}

func TestRenderPage_SectionTitlePerMode(t *testing.T) {
	tests := []struct {
		mode TemplateMode
		want string
	}{
		{TemplatePortfolio, "Réalisations"},
		{TemplateCV, "Expériences"},
		{TemplateHybrid, "Réalisations & Expériences"},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			record := renderRecord()
			record.SiteTemplate = tt.mode
			out, err := RenderPage(renderFixture, record)
			require.NoError(t, err)
			assert.Contains(t, out, "<h2>"+tt.want+"</h2>")
		})
	}
}

func TestRenderPage_UnknownTokensLeftInPlace(t *testing.T) {
	out, err := RenderPage("{{name}} {{mystery_token}} {% for project in projects %}{% endfor %}", renderRecord())
	require.NoError(t, err)
	assert.Contains(t, out, "{{mystery_token}}")
}

func TestRenderPage_BrokenTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
	}{
		{"no project block", "<h1>{{name}}</h1>"},
		{"two project blocks", renderFixture + "\n{% for project in projects %}{% endfor %}"},
		{"unclosed block", "{% for project in projects %} no end"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RenderPage(tt.template, renderRecord())
			assert.ErrorIs(t, err, ErrBrokenTemplate)
		})
	}
}

func TestBuildProjectCards_OrderAndCount(t *testing.T) {
	cards := BuildProjectCards([]Project{
		{Title: "First", Description: "d1", Image: "i1"},
		{Title: "Second", Description: "d2", Image: "i2"},
	})
	assert.Equal(t, 2, strings.Count(cards, `class="project-card"`))
	assert.Less(t, strings.Index(cards, "First"), strings.Index(cards, "Second"))
}

func TestBuildProjectCards_Empty(t *testing.T) {
	assert.Empty(t, BuildProjectCards(nil))
}

func TestFallbackFragments(t *testing.T) {
	record := &CanonicalRecord{SiteTemplate: TemplateHybrid, Projects: []Project{{Title: "x"}}}
	out, err := RenderPage(renderFixture, record)
	require.NoError(t, err)

	assert.Contains(t, out, "<li>Non renseigné</li>")
	assert.Contains(t, out, "<span>Aucune</span>")
	assert.Contains(t, out, `<div class="education-item"><h3>Formation non renseignée</h3></div>`)
}

func TestProfilesHTML(t *testing.T) {
	html := profilesHTML([]SocialProfile{{Network: "GitHub", URL: "https://github.com/alice"}})
	assert.Equal(t, `<li><strong>GitHub</strong> : <a href="https://github.com/alice">https://github.com/alice</a></li>`, html)
}

func TestSkillsHTML(t *testing.T) {
	html := skillsHTML([]string{"Go", "SQL"})
	assert.Equal(t, "<span class=\"skill-tag\">Go</span>\n<span class=\"skill-tag\">SQL</span>", html)
}

func TestEducationHTML(t *testing.T) {
	html := educationHTML([]EducationEntry{
		{Institution: "Fac", Title: "Master - Info", Period: "2014 → 2016", Score: "Bien"},
	})
	assert.Equal(t, `<div class="education-item"><h3>Fac</h3><p>Master - Info</p><p>2014 → 2016</p><p>Bien</p></div>`, html)
}
