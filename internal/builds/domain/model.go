package domain

import (
	"time"

	"github.com/forgeapk/apk-builder-backend/internal/catalog"
	"github.com/forgeapk/apk-builder-backend/internal/classify"
)

// ProjectRecord is the persisted lifecycle record for one build request.
// It is created when a build request is accepted and mutated only by the
// orchestrator; the record store copy is the source of truth for polling.
type ProjectRecord struct {
	ID          string            `json:"id"`
	Archetype   catalog.Archetype `json:"app_type"`
	PackageName string            `json:"package_name"`
	Features    []catalog.Feature `json:"features"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
	Progress    int               `json:"progress"`
	ArtifactPath string           `json:"apk_path,omitempty"`
	Error       string            `json:"error,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
}

// Lifecycle status constants. A record only moves forward:
// received -> scaffolding -> generated -> completed, with error reachable
// from any in-progress state. completed and error are terminal.
const (
	StatusReceived    = "received"
	StatusScaffolding = "scaffolding"
	StatusGenerated   = "generated"
	StatusCompleted   = "completed"
	StatusError       = "error"
)

// Terminal reports whether the record can no longer change.
func (r *ProjectRecord) Terminal() bool {
	return r.Status == StatusCompleted || r.Status == StatusError
}

// Clone returns an independent copy. The build job mutates its own copy,
// so a record handed to a caller never changes underneath it.
func (r *ProjectRecord) Clone() *ProjectRecord {
	out := *r
	out.Features = append([]catalog.Feature(nil), r.Features...)
	if r.CompletedAt != nil {
		ts := *r.CompletedAt
		out.CompletedAt = &ts
	}
	return &out
}

// NewProjectRecord assembles the initial record for an accepted request.
func NewProjectRecord(id, description string, cls classify.Classification) *ProjectRecord {
	now := time.Now().UTC()
	return &ProjectRecord{
		ID:          id,
		Archetype:   cls.Archetype,
		PackageName: cls.PackageName,
		Features:    cls.Features,
		Description: description,
		Status:      StatusReceived,
		Progress:    0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ProjectSummary is the listing view of a record.
type ProjectSummary struct {
	ID        string            `json:"id"`
	Archetype catalog.Archetype `json:"app_type"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

// Summary projects the record onto its listing view.
func (r *ProjectRecord) Summary() ProjectSummary {
	return ProjectSummary{
		ID:        r.ID,
		Archetype: r.Archetype,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
}
