package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumecraft/go-services/internal/enhance"
)

// EnhanceHandler proxies text through the enhancement service. Remote
// failures never surface as errors here: the response carries the fallback
// rewrite with `fallback: true` instead.
type EnhanceHandler struct {
	svc *enhance.Service
}

func NewEnhanceHandler(svc *enhance.Service) *EnhanceHandler {
	return &EnhanceHandler{svc: svc}
}

// Register routes under /api/enhance
func (h *EnhanceHandler) Register(rg *gin.RouterGroup, mw ...gin.HandlerFunc) {
	handlers := append(mw, h.Enhance)
	rg.POST("/enhance", handlers...)
}

// Enhance accepts { text } and returns { result, fallback }.
func (h *EnhanceHandler) Enhance(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.svc.Enhance(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, enhance.ErrTextTooShort) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
