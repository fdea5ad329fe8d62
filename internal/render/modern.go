package render

import (
	"html/template"

	"github.com/resumecraft/go-services/internal/resume"
)

// Modern: full-width colored header band, accent bars on section titles.
type Modern struct{}

func (Modern) Name() string { return resume.TemplateModern }

func (Modern) Render(doc *resume.Document) (string, error) {
	return execute(resume.TemplateModern, modernTmpl, doc)
}

var modernTmpl = template.Must(template.New("modern").Funcs(funcs).Parse(modernHTML))

const modernHTML = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Doc.Personal.Name}}</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { font-family: {{.FontStack}}; line-height: {{.LineHeight}}; color: {{.TextColor}}; background: #fff; }
  .page { width: 210mm; margin: 0 auto; padding: 0 0 14mm 0; }
  header { background: {{.Palette.Heading}}; color: #fff; padding: 12mm 14mm 10mm 14mm; }
  header h1 { font-size: 26pt; font-weight: 700; }
  .contact { margin-top: 6px; font-size: 9pt; }
  .contact span { margin-right: 14px; }
  main { padding: 8mm 14mm 0 14mm; }
  section { margin-bottom: {{.SectionGap}}; }
  h2 { color: {{.Palette.Heading}}; font-size: 12pt; text-transform: uppercase; letter-spacing: 1px;
       border-left: 4px solid {{.Palette.Accent}}; padding-left: 8px; margin-bottom: 8px; }
  .entry { margin-bottom: 10px; }
  .entry-head { display: flex; justify-content: space-between; }
  .entry-title { font-weight: 600; font-size: 10.5pt; }
  .entry-sub { font-size: 10pt; color: {{.Palette.Accent}}; }
  .dates { font-size: 9pt; white-space: nowrap; }
  .desc { font-size: 9.5pt; margin-top: 3px; }
  .skill-group { margin-bottom: 5px; font-size: 9.5pt; }
  .skill-group b { color: {{.Palette.Heading}}; }
</style>
</head>
<body>
<div class="page">
<header>
  <h1>{{.Doc.Personal.Name}}</h1>
  <div class="contact">
    {{with .Doc.Personal.Email}}<span>{{.}}</span>{{end}}
    {{with .Doc.Personal.Phone}}<span>{{.}}</span>{{end}}
    {{with .Doc.Personal.Location}}<span>{{.}}</span>{{end}}
    {{with .Doc.Personal.Website}}<span>{{.}}</span>{{end}}
    {{with .Doc.Personal.LinkedIn}}<span>{{.}}</span>{{end}}
    {{with .Doc.Personal.GitHub}}<span>{{.}}</span>{{end}}
  </div>
</header>
<main>
{{range .Sections}}
  {{if eq . "summary"}}
  <section>
    <h2>Summary</h2>
    <p class="desc">{{$.Doc.Personal.Summary}}</p>
  </section>
  {{else if eq . "experience"}}
  <section>
    <h2>Experience</h2>
    {{range $.Doc.Experience}}{{if .Present}}
    <div class="entry">
      <div class="entry-head">
        <div><span class="entry-title">{{.Position}}</span> <span class="entry-sub">{{.Company}}</span></div>
        <div class="dates">{{formatRange .StartDate .EndDate .Current}}</div>
      </div>
      {{with .Location}}<div class="entry-sub">{{.}}</div>{{end}}
      {{with .Description}}<div class="desc">{{.}}</div>{{end}}
    </div>
    {{end}}{{end}}
  </section>
  {{else if eq . "education"}}
  <section>
    <h2>Education</h2>
    {{range $.Doc.Education}}{{if .Present}}
    <div class="entry">
      <div class="entry-head">
        <div><span class="entry-title">{{.Degree}}{{with .Field}}, {{.}}{{end}}</span> <span class="entry-sub">{{.Institution}}</span></div>
        <div class="dates">{{formatRange .StartDate .EndDate false}}</div>
      </div>
      {{with .Description}}<div class="desc">{{.}}</div>{{end}}
    </div>
    {{end}}{{end}}
  </section>
  {{else if eq . "skills"}}
  <section>
    <h2>Skills</h2>
    {{with $.Doc.Skills.Technical}}<div class="skill-group"><b>Technical:</b> {{join . ", "}}</div>{{end}}
    {{with $.Doc.Skills.Soft}}<div class="skill-group"><b>Soft:</b> {{join . ", "}}</div>{{end}}
    {{with $.Doc.Skills.Languages}}<div class="skill-group"><b>Languages:</b> {{join . ", "}}</div>{{end}}
  </section>
  {{else if eq . "projects"}}
  <section>
    <h2>Projects</h2>
    {{range $.Doc.Projects}}{{if .Present}}
    <div class="entry">
      <div class="entry-head">
        <div><span class="entry-title">{{.Name}}</span>{{with .Stack}} <span class="entry-sub">{{.}}</span>{{end}}</div>
        <div class="dates">{{formatRange .StartDate .EndDate false}}</div>
      </div>
      {{with .URL}}<div class="entry-sub">{{.}}</div>{{end}}
      {{with .Description}}<div class="desc">{{.}}</div>{{end}}
    </div>
    {{end}}{{end}}
  </section>
  {{else if eq . "certifications"}}
  <section>
    <h2>Certifications</h2>
    {{range $.Doc.Certifications}}{{if .Present}}
    <div class="entry">
      <div class="entry-head">
        <div><span class="entry-title">{{.Name}}</span>{{with .Issuer}} <span class="entry-sub">{{.}}</span>{{end}}</div>
        <div class="dates">{{formatRange .StartDate .EndDate false}}</div>
      </div>
      {{with .Description}}<div class="desc">{{.}}</div>{{end}}
    </div>
    {{end}}{{end}}
  </section>
  {{end}}
{{end}}
</main>
</div>
</body>
</html>`
