package http

import (
	"github.com/forgeapk/apk-builder-backend/internal/builds/domain"
	"github.com/forgeapk/apk-builder-backend/internal/builds/service"
	"github.com/forgeapk/apk-builder-backend/internal/catalog"
)

// Handler bundles the dependencies for the build endpoints.
type Handler struct {
	orch *service.Orchestrator
	cat  *catalog.Catalog
}

func New(orch *service.Orchestrator, cat *catalog.Catalog) *Handler {
	return &Handler{orch: orch, cat: cat}
}

type buildReq struct {
	Description string `json:"description"`
}

type analyzeReq struct {
	Description string `json:"description"`
}

// statusResp is the polling response: the record plus derived artifact
// availability.
type statusResp struct {
	*domain.ProjectRecord
	ArtifactReady bool  `json:"apk_ready"`
	ArtifactSize  int64 `json:"apk_size,omitempty"`
}
