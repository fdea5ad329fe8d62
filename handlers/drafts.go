package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumecraft/go-services/internal/drafts"
	"github.com/resumecraft/go-services/internal/resume"
	"github.com/resumecraft/go-services/pkg/middleware"
)

// DraftHandler exposes the session-scoped working document. The draft is a
// whole-document blob: reads always succeed (a missing or corrupted draft
// yields the default document) and writes replace the blob wholesale.
type DraftHandler struct {
	svc *drafts.Service
}

func NewDraftHandler(svc *drafts.Service) *DraftHandler {
	return &DraftHandler{svc: svc}
}

// Register routes under /api/draft
func (h *DraftHandler) Register(rg *gin.RouterGroup) {
	d := rg.Group("/draft")
	d.GET("", h.Get)
	d.PUT("", h.Put)
	d.DELETE("", h.Delete)
}

// sessionID prefers an explicit X-Session-ID header (anonymous editing)
// over the authenticated subject.
func sessionID(c *gin.Context) string {
	if sid := c.GetHeader("X-Session-ID"); sid != "" {
		return sid
	}
	return middleware.Subject(c)
}

// Get returns the current draft document, falling back to the default
// document when no draft exists for the session.
func (h *DraftHandler) Get(c *gin.Context) {
	sid := sessionID(c)
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing session"})
		return
	}
	c.JSON(http.StatusOK, h.svc.Load(c.Request.Context(), sid))
}

// Put replaces the draft with the posted document.
func (h *DraftHandler) Put(c *gin.Context) {
	sid := sessionID(c)
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing session"})
		return
	}
	var doc resume.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.Save(c.Request.Context(), sid, &doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

// Delete discards the draft; the next Get starts from the default document.
func (h *DraftHandler) Delete(c *gin.Context) {
	sid := sessionID(c)
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing session"})
		return
	}
	if err := h.svc.Clear(c.Request.Context(), sid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
