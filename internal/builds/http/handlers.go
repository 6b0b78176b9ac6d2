package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/forgeapk/apk-builder-backend/internal/builds/domain"
)

// create accepts a description and schedules a background build. The
// response returns immediately with the new project id and the
// classification; callers poll the status endpoint for the outcome.
func (h *Handler) create(c *gin.Context) {
	var req buildReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Description) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing description"})
		return
	}

	record, cls, err := h.orch.CreateBuild(c.Request.Context(), req.Description)
	if err != nil {
		if errors.Is(err, domain.ErrDescriptionRequired) || errors.Is(err, domain.ErrDescriptionTooShort) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create build"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       record.Status,
		"project_id":   record.ID,
		"analysis":     cls,
		"message":      "Your APK is being built in the background",
		"check_status": "/api/v1/project/" + record.ID,
		"download":     "/api/v1/download/" + record.ID,
	})
}

// status returns the project record plus artifact availability.
func (h *Handler) status(c *gin.Context) {
	id := c.Param("id")

	view, err := h.orch.GetStatus(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get project"})
		return
	}

	c.JSON(http.StatusOK, statusResp{
		ProjectRecord: view.Record,
		ArtifactReady: view.ArtifactReady,
		ArtifactSize:  view.ArtifactSize,
	})
}

// download streams the built APK as an attachment.
func (h *Handler) download(c *gin.Context) {
	id := c.Param("id")

	path, err := h.orch.ResolveArtifact(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) || errors.Is(err, domain.ErrArtifactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "apk not found or not built yet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve apk"})
		return
	}

	c.Header("Content-Type", "application/vnd.android.package-archive")
	c.FileAttachment(path, "forge_"+id+".apk")
}

// list returns every known project record in listing form.
func (h *Handler) list(c *gin.Context) {
	projects, err := h.orch.ListProjects(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects, "count": len(projects)})
}

// analyze runs the classifier without creating a build job.
func (h *Handler) analyze(c *gin.Context) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Description) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing description"})
		return
	}

	cls, err := h.orch.Analyze(req.Description)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var suggested []any
	if def, ok := h.cat.Lookup(cls.Archetype); ok {
		suggested = append(suggested, def)
	}

	c.JSON(http.StatusOK, gin.H{
		"analysis":            cls,
		"description":         strings.TrimSpace(req.Description),
		"suggested_templates": suggested,
	})
}

// templates lists the archetype catalog.
func (h *Handler) templates(c *gin.Context) {
	defs := h.cat.Archetypes()
	c.JSON(http.StatusOK, gin.H{"templates": defs, "count": len(defs)})
}
