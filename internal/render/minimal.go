package render

import (
	"html/template"

	"github.com/resumecraft/go-services/internal/resume"
)

// Minimal: single column, thin rules, no color blocks; the palette only
// tints headings.
type Minimal struct{}

func (Minimal) Name() string { return resume.TemplateMinimal }

func (Minimal) Render(doc *resume.Document) (string, error) {
	return execute(resume.TemplateMinimal, minimalTmpl, doc)
}

var minimalTmpl = template.Must(template.New("minimal").Funcs(funcs).Parse(minimalHTML))

const minimalHTML = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Doc.Personal.Name}}</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { font-family: {{.FontStack}}; line-height: {{.LineHeight}}; color: {{.TextColor}}; background: #fff; }
  .page { width: 210mm; margin: 0 auto; padding: 16mm 18mm; }
  h1 { font-size: 22pt; font-weight: 400; letter-spacing: 2px; color: {{.Palette.Heading}}; }
  .contact { margin: 4px 0 14px 0; font-size: 9pt; }
  .contact span + span:before { content: "\00b7"; margin: 0 6px; }
  hr { border: none; border-top: 1px solid {{.Palette.Border}}; margin-bottom: {{.SectionGap}}; }
  section { margin-bottom: {{.SectionGap}}; }
  h2 { font-size: 10.5pt; font-weight: 600; letter-spacing: 2px; text-transform: uppercase;
       color: {{.Palette.Heading}}; margin-bottom: 7px; }
  .entry { margin-bottom: 9px; }
  .row { display: flex; justify-content: space-between; align-items: baseline; }
  .what { font-weight: 600; font-size: 10pt; }
  .where { font-size: 9.5pt; font-style: italic; }
  .dates { font-size: 8.5pt; }
  .desc { font-size: 9.5pt; margin-top: 2px; }
  .skills p { font-size: 9.5pt; margin-bottom: 3px; }
</style>
</head>
<body>
<div class="page">
  <h1>{{.Doc.Personal.Name}}</h1>
  <div class="contact">
    {{with .Doc.Personal.Email}}<span>{{.}}</span>{{end}}
    {{with .Doc.Personal.Phone}}<span>{{.}}</span>{{end}}
    {{with .Doc.Personal.Location}}<span>{{.}}</span>{{end}}
    {{with .Doc.Personal.Website}}<span>{{.}}</span>{{end}}
    {{with .Doc.Personal.LinkedIn}}<span>{{.}}</span>{{end}}
    {{with .Doc.Personal.GitHub}}<span>{{.}}</span>{{end}}
  </div>
  <hr>
{{range .Sections}}
  {{if eq . "summary"}}
  <section>
    <p class="desc">{{$.Doc.Personal.Summary}}</p>
  </section>
  {{else if eq . "experience"}}
  <section>
    <h2>Experience</h2>
    {{range $.Doc.Experience}}{{if .Present}}
    <div class="entry">
      <div class="row">
        <span class="what">{{.Position}}</span>
        <span class="dates">{{formatRange .StartDate .EndDate .Current}}</span>
      </div>
      <div class="where">{{.Company}}{{with .Location}}, {{.}}{{end}}</div>
      {{with .Description}}<div class="desc">{{.}}</div>{{end}}
    </div>
    {{end}}{{end}}
  </section>
  {{else if eq . "education"}}
  <section>
    <h2>Education</h2>
    {{range $.Doc.Education}}{{if .Present}}
    <div class="entry">
      <div class="row">
        <span class="what">{{.Degree}}{{with .Field}}, {{.}}{{end}}</span>
        <span class="dates">{{formatRange .StartDate .EndDate false}}</span>
      </div>
      <div class="where">{{.Institution}}</div>
      {{with .Description}}<div class="desc">{{.}}</div>{{end}}
    </div>
    {{end}}{{end}}
  </section>
  {{else if eq . "skills"}}
  <section class="skills">
    <h2>Skills</h2>
    {{with $.Doc.Skills.Technical}}<p>{{join . " · "}}</p>{{end}}
    {{with $.Doc.Skills.Soft}}<p>{{join . " · "}}</p>{{end}}
    {{with $.Doc.Skills.Languages}}<p>{{join . " · "}}</p>{{end}}
  </section>
  {{else if eq . "projects"}}
  <section>
    <h2>Projects</h2>
    {{range $.Doc.Projects}}{{if .Present}}
    <div class="entry">
      <div class="row">
        <span class="what">{{.Name}}</span>
        <span class="dates">{{formatRange .StartDate .EndDate false}}</span>
      </div>
      {{with .Stack}}<div class="where">{{.}}</div>{{end}}
      {{with .Description}}<div class="desc">{{.}}</div>{{end}}
    </div>
    {{end}}{{end}}
  </section>
  {{else if eq . "certifications"}}
  <section>
    <h2>Certifications</h2>
    {{range $.Doc.Certifications}}{{if .Present}}
    <div class="entry">
      <div class="row">
        <span class="what">{{.Name}}</span>
        <span class="dates">{{formatRange .StartDate .EndDate false}}</span>
      </div>
      {{with .Issuer}}<div class="where">{{.}}</div>{{end}}
    </div>
    {{end}}{{end}}
  </section>
  {{end}}
{{end}}
</div>
</body>
</html>`
