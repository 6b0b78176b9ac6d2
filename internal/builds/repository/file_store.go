package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/forgeapk/apk-builder-backend/internal/builds/domain"
)

const metadataFile = "metadata.json"

// FileStore keeps one directory per project under the projects root, with
// metadata.json as the single source of truth for status. Writes go to a
// temp file in the same directory and are renamed into place, so a crash
// leaves the last committed record readable.
type FileStore struct {
	root string
}

func NewFileStore(root string) *FileStore {
	return &FileStore{root: root}
}

// ProjectDir returns the directory owned by one project id.
func (s *FileStore) ProjectDir(id string) string {
	return filepath.Join(s.root, id)
}

func (s *FileStore) Get(ctx context.Context, id string) (*domain.ProjectRecord, error) {
	data, err := os.ReadFile(filepath.Join(s.ProjectDir(id), metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("read record %s: %w", id, err)
	}

	var record domain.ProjectRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("unmarshal record %s: %w", id, err)
	}
	return &record, nil
}

func (s *FileStore) Put(ctx context.Context, record *domain.ProjectRecord) error {
	dir := s.ProjectDir(record.ID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create project dir %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record %s: %w", record.ID, err)
	}

	tmp, err := os.CreateTemp(dir, metadataFile+".*")
	if err != nil {
		return fmt.Errorf("create temp record %s: %w", record.ID, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write record %s: %w", record.ID, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close record %s: %w", record.ID, err)
	}

	if err := os.Rename(tmpName, filepath.Join(dir, metadataFile)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("commit record %s: %w", record.ID, err)
	}
	return nil
}

func (s *FileStore) List(ctx context.Context) ([]domain.ProjectSummary, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.ProjectSummary{}, nil
		}
		return nil, fmt.Errorf("read projects root: %w", err)
	}

	out := make([]domain.ProjectSummary, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		record, err := s.Get(ctx, entry.Name())
		if err != nil {
			// directories without a readable record are skipped
			continue
		}
		out = append(out, record.Summary())
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
