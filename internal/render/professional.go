package render

import (
	"html/template"

	"github.com/resumecraft/go-services/internal/resume"
)

// Professional: centered header, double rule, small-caps section titles
// with bordered underlines.
type Professional struct{}

func (Professional) Name() string { return resume.TemplateProfessional }

func (Professional) Render(doc *resume.Document) (string, error) {
	return execute(resume.TemplateProfessional, professionalTmpl, doc)
}

var professionalTmpl = template.Must(template.New("professional").Funcs(funcs).Parse(professionalHTML))

const professionalHTML = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Doc.Personal.Name}}</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { font-family: {{.FontStack}}; line-height: {{.LineHeight}}; color: {{.TextColor}}; background: #fff; }
  .page { width: 210mm; margin: 0 auto; padding: 14mm 16mm; }
  .head { text-align: center; border-bottom: 3px double {{.Palette.Heading}}; padding-bottom: 8px; }
  .head h1 { font-size: 24pt; letter-spacing: 1px; color: {{.Palette.Heading}}; }
  .contact { font-size: 9pt; margin-top: 4px; }
  .contact span { margin: 0 7px; }
  section { margin-top: {{.SectionGap}}; }
  h2 { font-size: 11pt; font-variant: small-caps; letter-spacing: 3px; color: {{.Palette.Heading}};
       border-bottom: 1px solid {{.Palette.Border}}; padding-bottom: 3px; margin-bottom: 8px; }
  .entry { margin-bottom: 9px; }
  .line { display: flex; justify-content: space-between; }
  .org { font-weight: 700; font-size: 10.5pt; }
  .role { font-style: italic; font-size: 10pt; }
  .dates { font-size: 9pt; }
  .desc { font-size: 9.5pt; margin-top: 2px; text-align: justify; }
  table.skills { width: 100%; font-size: 9.5pt; border-collapse: collapse; }
  table.skills td { padding: 2px 0; vertical-align: top; }
  table.skills td.k { width: 26mm; font-weight: 700; color: {{.Palette.Heading}}; }
</style>
</head>
<body>
<div class="page">
  <div class="head">
    <h1>{{.Doc.Personal.Name}}</h1>
    <div class="contact">
      {{with .Doc.Personal.Email}}<span>{{.}}</span>{{end}}
      {{with .Doc.Personal.Phone}}<span>{{.}}</span>{{end}}
      {{with .Doc.Personal.Location}}<span>{{.}}</span>{{end}}
      {{with .Doc.Personal.Website}}<span>{{.}}</span>{{end}}
      {{with .Doc.Personal.LinkedIn}}<span>{{.}}</span>{{end}}
      {{with .Doc.Personal.GitHub}}<span>{{.}}</span>{{end}}
    </div>
  </div>
{{range .Sections}}
  {{if eq . "summary"}}
  <section>
    <h2>Professional Summary</h2>
    <p class="desc">{{$.Doc.Personal.Summary}}</p>
  </section>
  {{else if eq . "experience"}}
  <section>
    <h2>Experience</h2>
    {{range $.Doc.Experience}}{{if .Present}}
    <div class="entry">
      <div class="line">
        <span class="org">{{.Company}}</span>
        <span class="dates">{{formatRange .StartDate .EndDate .Current}}</span>
      </div>
      <div class="line">
        <span class="role">{{.Position}}</span>
        {{with .Location}}<span class="dates">{{.}}</span>{{end}}
      </div>
      {{with .Description}}<div class="desc">{{.}}</div>{{end}}
    </div>
    {{end}}{{end}}
  </section>
  {{else if eq . "education"}}
  <section>
    <h2>Education</h2>
    {{range $.Doc.Education}}{{if .Present}}
    <div class="entry">
      <div class="line">
        <span class="org">{{.Institution}}</span>
        <span class="dates">{{formatRange .StartDate .EndDate false}}</span>
      </div>
      <div class="role">{{.Degree}}{{with .Field}}, {{.}}{{end}}</div>
      {{with .Description}}<div class="desc">{{.}}</div>{{end}}
    </div>
    {{end}}{{end}}
  </section>
  {{else if eq . "skills"}}
  <section>
    <h2>Skills</h2>
    <table class="skills">
      {{with $.Doc.Skills.Technical}}<tr><td class="k">Technical</td><td>{{join . ", "}}</td></tr>{{end}}
      {{with $.Doc.Skills.Soft}}<tr><td class="k">Soft</td><td>{{join . ", "}}</td></tr>{{end}}
      {{with $.Doc.Skills.Languages}}<tr><td class="k">Languages</td><td>{{join . ", "}}</td></tr>{{end}}
    </table>
  </section>
  {{else if eq . "projects"}}
  <section>
    <h2>Projects</h2>
    {{range $.Doc.Projects}}{{if .Present}}
    <div class="entry">
      <div class="line">
        <span class="org">{{.Name}}</span>
        <span class="dates">{{formatRange .StartDate .EndDate false}}</span>
      </div>
      {{with .Stack}}<div class="role">{{.}}</div>{{end}}
      {{with .Description}}<div class="desc">{{.}}</div>{{end}}
    </div>
    {{end}}{{end}}
  </section>
  {{else if eq . "certifications"}}
  <section>
    <h2>Certifications</h2>
    {{range $.Doc.Certifications}}{{if .Present}}
    <div class="entry">
      <div class="line">
        <span class="org">{{.Name}}</span>
        <span class="dates">{{formatRange .StartDate .EndDate false}}</span>
      </div>
      {{with .Issuer}}<div class="role">{{.}}</div>{{end}}
    </div>
    {{end}}{{end}}
  </section>
  {{end}}
{{end}}
</div>
</body>
</html>`
