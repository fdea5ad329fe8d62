// Package export turns a validated document into a downloadable multi-page
// A4 PDF. Validation gates the pipeline: an invalid document never reaches
// rendering, and any later failure yields an error with no partial file.
package export

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/resumecraft/go-services/internal/render"
	"github.com/resumecraft/go-services/internal/resume"
	"github.com/resumecraft/go-services/internal/validation"
	"github.com/resumecraft/go-services/pkg/metrics"
)

// A4 geometry. Content is laid out at the fixed physical page width; the
// page count is the laid-out height divided by the page height.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
)

var ErrRendererUnavailable = errors.New("pdf renderer unavailable")

// ValidationError blocks an export. It carries the full per-section error
// map so callers can surface the first failing section.
type ValidationError struct {
	Sections map[string][]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("document failed validation (first failing section: %s)", e.First())
}

// First returns the first failing section in canonical order.
func (e *ValidationError) First() string { return validation.FirstFailing(e.Sections) }

// PDFRenderer rasterizes a rendered HTML page into PDF bytes and reports
// the total laid-out content height in millimetres.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, html string) (pdf []byte, heightMM float64, err error)
}

// Result is one finished export.
type Result struct {
	Filename string `json:"filename"`
	Pages    int    `json:"pages"`
	PDF      []byte `json:"-"`
}

// Exporter runs the export pipeline against an injected renderer.
type Exporter struct {
	renderer PDFRenderer
}

func NewExporter(r PDFRenderer) *Exporter {
	return &Exporter{renderer: r}
}

// Export validates, renders and rasterizes doc. The returned error is a
// *ValidationError when the document is invalid.
func (e *Exporter) Export(ctx context.Context, doc *resume.Document) (*Result, error) {
	if errs := validation.Validate(doc); len(errs) > 0 {
		metrics.ExportsTotal.WithLabelValues("blocked").Inc()
		return nil, &ValidationError{Sections: errs}
	}
	if e.renderer == nil {
		metrics.ExportsTotal.WithLabelValues("failed").Inc()
		return nil, ErrRendererUnavailable
	}

	tmpl := render.ForDocument(doc)
	html, err := tmpl.Render(doc)
	if err != nil {
		metrics.ExportsTotal.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("render template: %w", err)
	}

	pdf, heightMM, err := e.renderer.RenderPDF(ctx, html)
	if err != nil {
		metrics.ExportsTotal.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("rasterize: %w", err)
	}

	pages := PageCount(heightMM)
	metrics.ExportsTotal.WithLabelValues("ok").Inc()
	metrics.ExportPages.Observe(float64(pages))

	return &Result{
		Filename: Filename(doc.Personal.Name),
		Pages:    pages,
		PDF:      pdf,
	}, nil
}

// PageCount divides the laid-out height by the A4 page height, rounding
// up. Any content yields at least one page.
func PageCount(heightMM float64) int {
	if heightMM <= 0 {
		return 1
	}
	n := int(math.Ceil(heightMM / PageHeightMM))
	if n < 1 {
		n = 1
	}
	return n
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Filename derives the download name from the person's name, slugified,
// falling back to "resume" when nothing usable remains.
func Filename(name string) string {
	slug := slugRe.ReplaceAllString(strings.ToLower(name), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "resume"
	}
	return slug + ".pdf"
}
