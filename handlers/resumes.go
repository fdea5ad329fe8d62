package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/resumecraft/go-services/internal/export"
	"github.com/resumecraft/go-services/internal/render"
	"github.com/resumecraft/go-services/internal/resume"
	"github.com/resumecraft/go-services/internal/resumes"
	"github.com/resumecraft/go-services/internal/resumes/service"
	"github.com/resumecraft/go-services/internal/validation"
	"github.com/resumecraft/go-services/pkg/logger"
	"github.com/resumecraft/go-services/pkg/middleware"
)

// ResumeHandler holds dependencies
type ResumeHandler struct {
	svc      service.Service
	exporter *export.Exporter

	// optional export-side extras; either may be nil
	uploadPDF    func(c *gin.Context, key string, pdf []byte) (url string, err error)
	saveMetadata func(c *gin.Context, pe *export.PersistedExport)
}

func NewResumeHandler(svc service.Service, exporter *export.Exporter) *ResumeHandler {
	return &ResumeHandler{svc: svc, exporter: exporter}
}

// WithArtifactUpload makes successful exports respond with a download URL
// instead of the raw PDF body.
func (h *ResumeHandler) WithArtifactUpload(fn func(c *gin.Context, key string, pdf []byte) (string, error)) *ResumeHandler {
	h.uploadPDF = fn
	return h
}

// WithExportMetadata records export outcomes (pages, artifact key, status).
func (h *ResumeHandler) WithExportMetadata(fn func(c *gin.Context, pe *export.PersistedExport)) *ResumeHandler {
	h.saveMetadata = fn
	return h
}

// Register routes under /api/resumes
func (h *ResumeHandler) Register(rg *gin.RouterGroup) {
	r := rg.Group("/resumes")
	r.GET("", h.List)
	r.POST("", h.Create)
	r.GET("/:id", h.Get)
	r.PUT("/:id", h.Update)
	r.DELETE("/:id", h.Delete)
	r.PATCH("/:id/sections/:section", h.UpdateSection)
	r.GET("/:id/preview", h.Preview)
	r.POST("/:id/export", h.Export)
	r.POST("/:id/validate", h.Validate)
}

type createResumeRequest struct {
	Title    string           `json:"title"`
	Document *resume.Document `json:"document"`
}

// List returns the caller's resume summaries (id, title, template, updatedAt).
func (h *ResumeHandler) List(c *gin.Context) {
	out, err := h.svc.ListByUser(middleware.Subject(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if out == nil {
		out = []resumes.Summary{}
	}
	c.JSON(http.StatusOK, out)
}

// Create accepts { title, document } and returns the saved resume. A nil
// document starts from the default document.
func (h *ResumeHandler) Create(c *gin.Context) {
	var req createResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Document == nil {
		req.Document = resume.DefaultDocument()
	}
	saved, err := h.svc.Create(middleware.Subject(c), req.Title, req.Document)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// Get returns one saved resume including its full document.
func (h *ResumeHandler) Get(c *gin.Context) {
	saved, _ := h.load(c)
	if saved == nil {
		return
	}
	c.JSON(http.StatusOK, saved)
}

// Update replaces the document (and optionally the title) of a saved resume.
func (h *ResumeHandler) Update(c *gin.Context) {
	saved, _ := h.load(c)
	if saved == nil {
		return
	}
	var req createResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc := req.Document
	if doc == nil {
		doc = saved.Document
	}
	if err := h.svc.Update(saved.ID, req.Title, doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.svc.Get(saved.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes a saved resume.
func (h *ResumeHandler) Delete(c *gin.Context) {
	saved, _ := h.load(c)
	if saved == nil {
		return
	}
	if err := h.svc.Delete(saved.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateSection applies a section-scoped update. The body is the raw JSON
// value for that section (object for personal/skills/theme, array for the
// repeated sections, string for selectedTemplate/sectionOrder entries).
// Responds with { changed } so clients can skip no-op refreshes.
func (h *ResumeHandler) UpdateSection(c *gin.Context) {
	saved, _ := h.load(c)
	if saved == nil {
		return
	}
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	store := resume.NewStore(saved.Document)
	changed, err := store.ApplySection(c.Param("section"), json.RawMessage(raw))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if changed {
		if err := h.svc.Update(saved.ID, saved.Title, store.Document()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"id": saved.ID, "changed": changed})
}

// Preview renders the resume as a full HTML page. ?template= overrides the
// document's selected template for this render only.
func (h *ResumeHandler) Preview(c *gin.Context) {
	saved, _ := h.load(c)
	if saved == nil {
		return
	}
	doc := saved.Document.Clone()
	if t := c.Query("template"); t != "" {
		if _, err := render.ForID(t); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		doc.SelectedTemplate = t
	}
	html, err := render.ForDocument(doc).Render(doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, html)
}

// Validate runs the validation engine over the saved document and returns
// the per-section message lists (empty object when the document is clean).
func (h *ResumeHandler) Validate(c *gin.Context) {
	saved, _ := h.load(c)
	if saved == nil {
		return
	}
	errs := validation.Validate(saved.Document)
	c.JSON(http.StatusOK, gin.H{"valid": len(errs) == 0, "errors": errs})
}

// Export validates, renders and prints the resume to PDF. Validation
// failures come back as 422 with the per-section messages; the renderer is
// never invoked for an invalid document.
func (h *ResumeHandler) Export(c *gin.Context) {
	saved, _ := h.load(c)
	if saved == nil {
		return
	}
	res, err := h.exporter.Export(c.Request.Context(), saved.Document)
	if err != nil {
		var verr *export.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":        "resume has validation errors",
				"errors":       verr.Sections,
				"firstSection": verr.First(),
			})
			return
		}
		logger.Errorf("export failed for resume %s: %v", saved.ID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "export failed", "details": err.Error()})
		return
	}

	pe := &export.PersistedExport{
		ExportID:  uuid.NewString(),
		ResumeID:  saved.ID,
		UserID:    middleware.Subject(c),
		Filename:  res.Filename,
		Pages:     res.Pages,
		Status:    "ready",
		CreatedAt: time.Now().UTC(),
	}

	if h.uploadPDF != nil {
		key := fmt.Sprintf("%s/%s", pe.ExportID, res.Filename)
		url, err := h.uploadPDF(c, key, res.PDF)
		if err != nil {
			logger.Errorf("artifact upload failed for resume %s: %v", saved.ID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "artifact upload failed", "details": err.Error()})
			return
		}
		pe.PDFKey = key
		if h.saveMetadata != nil {
			h.saveMetadata(c, pe)
		}
		c.JSON(http.StatusOK, gin.H{"exportId": pe.ExportID, "filename": res.Filename, "pages": res.Pages, "url": url})
		return
	}

	if h.saveMetadata != nil {
		h.saveMetadata(c, pe)
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Filename))
	c.Header("X-Export-Pages", fmt.Sprintf("%d", res.Pages))
	c.Data(http.StatusOK, "application/pdf", res.PDF)
}

// load resolves :id for the authenticated caller, writing the error
// response itself when the resume is missing or owned by someone else.
func (h *ResumeHandler) load(c *gin.Context) (*resumes.Saved, error) {
	saved, err := h.svc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return nil, err
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, err
	}
	if sub := middleware.Subject(c); saved.UserID != "" && sub != "" && saved.UserID != sub {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return nil, service.ErrNotFound
	}
	return saved, nil
}
