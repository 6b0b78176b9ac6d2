// Package repository persists project records. The default backend writes
// one metadata file per project directory; a redis backend is available for
// deployments that already run one. Both sit behind Store so the
// orchestrator never sees the difference.
package repository

import (
	"context"

	"github.com/forgeapk/apk-builder-backend/internal/builds/domain"
)

// Store is the project record store. Get returns
// domain.ErrProjectNotFound for unknown ids; Put replaces the stored
// record atomically so concurrent readers never observe a partial write.
type Store interface {
	Get(ctx context.Context, id string) (*domain.ProjectRecord, error)
	Put(ctx context.Context, record *domain.ProjectRecord) error
	List(ctx context.Context) ([]domain.ProjectSummary, error)
}
