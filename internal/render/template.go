// Package render maps a resume document plus theme onto a standalone HTML
// page. Three interchangeable layouts implement the Template interface;
// the set is closed, so adding a layout means adding a type, not a table
// entry.
package render

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/resumecraft/go-services/internal/resume"
	"github.com/resumecraft/go-services/pkg/metrics"
)

// Template renders a document to a complete HTML page. Implementations are
// pure: same document in, same markup out.
type Template interface {
	Name() string
	Render(doc *resume.Document) (string, error)
}

// ForID resolves a template identifier to its implementation.
func ForID(id string) (Template, error) {
	switch id {
	case resume.TemplateModern:
		return Modern{}, nil
	case resume.TemplateMinimal:
		return Minimal{}, nil
	case resume.TemplateProfessional:
		return Professional{}, nil
	}
	return nil, fmt.Errorf("unknown template %q", id)
}

// ForDocument picks the document's selected template, defaulting to Modern
// when the field is empty or unknown.
func ForDocument(doc *resume.Document) Template {
	if t, err := ForID(doc.SelectedTemplate); err == nil {
		return t
	}
	return Modern{}
}

// Palette holds the CSS colors one theme color selects.
type Palette struct {
	Heading string
	Accent  string
	Border  string
}

var palettes = map[string]Palette{
	"blue":    {Heading: "#1d4ed8", Accent: "#3b82f6", Border: "#bfdbfe"},
	"emerald": {Heading: "#047857", Accent: "#10b981", Border: "#a7f3d0"},
	"violet":  {Heading: "#6d28d9", Accent: "#8b5cf6", Border: "#ddd6fe"},
	"rose":    {Heading: "#be123c", Accent: "#f43f5e", Border: "#fecdd3"},
	"amber":   {Heading: "#b45309", Accent: "#f59e0b", Border: "#fde68a"},
	"teal":    {Heading: "#0f766e", Accent: "#14b8a6", Border: "#99f6e4"},
	"slate":   {Heading: "#334155", Accent: "#64748b", Border: "#cbd5e1"},
	"crimson": {Heading: "#9f1239", Accent: "#e11d48", Border: "#fda4af"},
}

var fontStacks = map[string]string{
	resume.FontSans:  "-apple-system, Segoe UI, Helvetica, Arial, sans-serif",
	resume.FontSerif: "Georgia, Cambria, Times New Roman, serif",
	resume.FontMono:  "ui-monospace, SFMono-Regular, Menlo, Consolas, monospace",
}

// spacing 1..3 scales line height and section gaps; contrast 1..3 darkens
// body text. Applied uniformly across all three templates.
var (
	lineHeights = map[int]string{1: "1.3", 2: "1.5", 3: "1.7"}
	sectionGaps = map[int]string{1: "12px", 2: "18px", 3: "26px"}
	textColors  = map[int]string{1: "#6b7280", 2: "#374151", 3: "#111827"}
)

// view is the data handed to the layout templates.
type view struct {
	Doc        *resume.Document
	Sections   []string
	Palette    Palette
	FontStack  template.CSS
	LineHeight template.CSS
	SectionGap template.CSS
	TextColor  template.CSS
}

func newView(doc *resume.Document) view {
	pal, ok := palettes[doc.Theme.Color]
	if !ok {
		pal = palettes["blue"]
	}
	font, ok := fontStacks[doc.Theme.Font]
	if !ok {
		font = fontStacks[resume.FontSans]
	}
	lh, ok := lineHeights[doc.Theme.Spacing]
	if !ok {
		lh = lineHeights[2]
	}
	gap, ok := sectionGaps[doc.Theme.Spacing]
	if !ok {
		gap = sectionGaps[2]
	}
	tc, ok := textColors[doc.Theme.Contrast]
	if !ok {
		tc = textColors[2]
	}
	return view{
		Doc:        doc,
		Sections:   visibleSections(doc),
		Palette:    pal,
		FontStack:  template.CSS(font),
		LineHeight: template.CSS(lh),
		SectionGap: template.CSS(gap),
		TextColor:  template.CSS(tc),
	}
}

// visibleSections applies the section order (explicit or canonical) and the
// presence rule. Skills always renders its container; the templates hide
// the empty groups individually.
func visibleSections(doc *resume.Document) []string {
	order := doc.SectionOrder
	if len(order) == 0 {
		order = resume.CanonicalSectionOrder
	}
	out := make([]string, 0, len(order))
	for _, s := range order {
		if sectionVisible(doc, s) {
			out = append(out, s)
		}
	}
	return out
}

func sectionVisible(doc *resume.Document, section string) bool {
	switch section {
	case resume.SectionSummary:
		return strings.TrimSpace(doc.Personal.Summary) != ""
	case resume.SectionExperience:
		for _, e := range doc.Experience {
			if e.Present() {
				return true
			}
		}
	case resume.SectionEducation:
		for _, e := range doc.Education {
			if e.Present() {
				return true
			}
		}
	case resume.SectionSkills:
		return true
	case resume.SectionProjects:
		for _, p := range doc.Projects {
			if p.Present() {
				return true
			}
		}
	case resume.SectionCertifications:
		for _, c := range doc.Certifications {
			if c.Present() {
				return true
			}
		}
	}
	return false
}

// FormatMonth turns a "YYYY-MM" date into "Jan 2006". Free-form input that
// does not parse is passed through unchanged.
func FormatMonth(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2006")
}

// FormatRange renders a start/end date pair. current=true ends with the
// literal "Present"; an empty end with current=false renders blank.
func FormatRange(start, end string, current bool) string {
	s := FormatMonth(start)
	switch {
	case current:
		if s == "" {
			return "Present"
		}
		return s + " - Present"
	case end == "":
		return s
	}
	e := FormatMonth(end)
	if s == "" {
		return e
	}
	return s + " - " + e
}

var funcs = template.FuncMap{
	"formatMonth": FormatMonth,
	"formatRange": FormatRange,
	"join":        strings.Join,
}

// execute runs a parsed layout against the view for doc and records the
// render duration.
func execute(name string, t *template.Template, doc *resume.Document) (string, error) {
	start := time.Now()
	var b strings.Builder
	if err := t.Execute(&b, newView(doc)); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	metrics.RenderDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	return b.String(), nil
}
