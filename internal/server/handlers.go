package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nbscribe/nbscribe"
	"github.com/nbscribe/nbscribe/internal/fileutil"
	"github.com/nbscribe/nbscribe/internal/logger"
)

// DocumentGenerator is the slice of the pipeline the handlers need.
type DocumentGenerator interface {
	Generate(ctx context.Context, input nbscribe.Input) (nbscribe.Result, error)
	OutputPath() string
}

// Handler serves the upload and download endpoints.
type Handler struct {
	svc DocumentGenerator
	log *logger.Logger
}

// NewHandler creates a Handler backed by the given pipeline.
func NewHandler(svc DocumentGenerator, log *logger.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

type uploadRequest struct {
	Notebooks []string `json:"notebooks"`
	Language  string   `json:"language"`
}

// Upload accepts notebook payloads, runs the full generation pipeline, and
// returns the styled documentation. Pipeline failures are collapsed into
// one generic 500 payload; the cause is only logged server-side.
func (h *Handler) Upload(c *gin.Context) {
	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Notebooks) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No notebook files provided"})
		return
	}

	res, err := h.svc.Generate(c.Request.Context(), nbscribe.Input{
		Notebooks: req.Notebooks,
		Language:  req.Language,
	})
	if err != nil {
		if errors.Is(err, nbscribe.ErrNoNotebooks) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No notebook files provided"})
			return
		}
		if h.log != nil {
			h.log.Error("documentation generation failed", "error", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing notebooks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"documentation": res.Documentation})
}

// Download streams the most recently generated PDF, or 404 when no
// generation has succeeded yet (or the file was removed externally).
func (h *Handler) Download(c *gin.Context) {
	path := h.svc.OutputPath()
	if !fileutil.FileExists(path) {
		c.JSON(http.StatusNotFound, gin.H{"error": "PDF not found. Please generate it first."})
		return
	}
	c.FileAttachment(path, "documentation.pdf")
}

// HealthCheck reports process liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
