package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumecraft/go-services/internal/resume"
)

// janeDoe is a fully-populated document exercised against every layout.
func janeDoe() *resume.Document {
	d := resume.DefaultDocument()
	d.Personal = resume.Personal{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+1 555 123 4567",
		Location: "Berlin",
		Summary:  "Backend engineer with a focus on reliability.",
	}
	d.Experience = []resume.Experience{
		{Company: "Acme", Position: "Senior Engineer", StartDate: "2021-03", Current: true, Description: "Led the billing rewrite."},
		{Company: "Initech", Position: "Engineer", StartDate: "2018-06", EndDate: "2021-02"},
	}
	d.Education = []resume.Education{
		{Institution: "TU Berlin", Degree: "BSc", Field: "Computer Science", StartDate: "2014-10", EndDate: "2018-03"},
	}
	d.Projects = []resume.Project{
		{Name: "chronod", Stack: "Go, Redis", Description: "Distributed cron."},
	}
	d.Certifications = []resume.Certification{
		{Name: "CKA", Issuer: "CNCF", StartDate: "2022-05"},
	}
	d.Skills = resume.Skills{
		Technical: []string{"Go", "PostgreSQL"},
		Soft:      []string{"Mentoring"},
		Languages: []string{"English", "German"},
	}
	return d
}

func allTemplates() []Template {
	return []Template{Modern{}, Minimal{}, Professional{}}
}

func TestForID(t *testing.T) {
	for _, id := range []string{resume.TemplateModern, resume.TemplateMinimal, resume.TemplateProfessional} {
		tmpl, err := ForID(id)
		require.NoError(t, err)
		assert.Equal(t, id, tmpl.Name())
	}
	_, err := ForID("fancy")
	assert.Error(t, err)
}

func TestForDocumentDefaultsToModern(t *testing.T) {
	d := resume.DefaultDocument()
	d.SelectedTemplate = ""
	assert.Equal(t, resume.TemplateModern, ForDocument(d).Name())
	d.SelectedTemplate = "bogus"
	assert.Equal(t, resume.TemplateModern, ForDocument(d).Name())
	d.SelectedTemplate = resume.TemplateProfessional
	assert.Equal(t, resume.TemplateProfessional, ForDocument(d).Name())
}

func TestRenderJaneDoe(t *testing.T) {
	doc := janeDoe()
	for _, tmpl := range allTemplates() {
		t.Run(tmpl.Name(), func(t *testing.T) {
			html, err := tmpl.Render(doc)
			require.NoError(t, err)

			assert.Contains(t, html, "Jane Doe")
			assert.Contains(t, html, "jane@example.com")
			assert.Contains(t, html, "Backend engineer with a focus on reliability.")
			// current role ends with the literal Present
			assert.Contains(t, html, "Mar 2021 - Present")
			// closed range formats both ends
			assert.Contains(t, html, "Jun 2018 - Feb 2021")
			assert.Contains(t, html, "TU Berlin")
			assert.Contains(t, html, "chronod")
			assert.Contains(t, html, "CKA")
			assert.Contains(t, html, "PostgreSQL")
			assert.Contains(t, html, "Mentoring")
		})
	}
}

func TestPresenceRuleHidesBlankEntries(t *testing.T) {
	doc := janeDoe()
	// a blank trailing editor row must not render
	doc.Experience = append(doc.Experience, resume.Experience{Description: "half-typed, no company yet"})
	doc.Education = append(doc.Education, resume.Education{})

	for _, tmpl := range allTemplates() {
		t.Run(tmpl.Name(), func(t *testing.T) {
			html, err := tmpl.Render(doc)
			require.NoError(t, err)
			assert.NotContains(t, html, "half-typed, no company yet")
		})
	}
}

func TestEmptySectionsHidden(t *testing.T) {
	doc := resume.DefaultDocument()
	doc.Personal = resume.Personal{Name: "Jane Doe", Email: "jane@example.com"}

	for _, tmpl := range allTemplates() {
		t.Run(tmpl.Name(), func(t *testing.T) {
			html, err := tmpl.Render(doc)
			require.NoError(t, err)
			assert.NotContains(t, html, "Experience")
			assert.NotContains(t, html, "Education")
			assert.NotContains(t, html, "Projects")
			assert.NotContains(t, html, "Certifications")
			assert.NotContains(t, html, "Summary")
			// the skills container always renders, its empty groups do not
			assert.Contains(t, html, "Skills")
			assert.NotContains(t, html, "Technical")
		})
	}
}

func TestSectionOrderRespected(t *testing.T) {
	doc := janeDoe()
	doc.SectionOrder = []string{"education", "experience", "summary", "skills", "projects", "certifications"}

	html, err := (Modern{}).Render(doc)
	require.NoError(t, err)
	eduIdx := strings.Index(html, "TU Berlin")
	expIdx := strings.Index(html, "Acme")
	require.GreaterOrEqual(t, eduIdx, 0)
	require.GreaterOrEqual(t, expIdx, 0)
	assert.Less(t, eduIdx, expIdx, "education must render before experience")
}

func TestRenderEscapesUserInput(t *testing.T) {
	doc := janeDoe()
	doc.Personal.Name = `<script>alert("x")</script>`
	for _, tmpl := range allTemplates() {
		html, err := tmpl.Render(doc)
		require.NoError(t, err)
		assert.NotContains(t, html, `<script>alert`)
	}
}

func TestFormatMonth(t *testing.T) {
	assert.Equal(t, "", FormatMonth(""))
	assert.Equal(t, "Jan 2006", FormatMonth("2006-01"))
	assert.Equal(t, "Dec 2023", FormatMonth("2023-12"))
	// free-form input passes through
	assert.Equal(t, "Summer 2020", FormatMonth("Summer 2020"))
}

func TestFormatRange(t *testing.T) {
	cases := []struct {
		start, end string
		current    bool
		want       string
	}{
		{"2020-01", "2023-06", false, "Jan 2020 - Jun 2023"},
		{"2020-01", "", true, "Jan 2020 - Present"},
		{"", "", true, "Present"},
		{"2020-01", "", false, "Jan 2020"},
		{"", "2023-06", false, "Jun 2023"},
		{"", "", false, ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatRange(tc.start, tc.end, tc.current))
	}
}
