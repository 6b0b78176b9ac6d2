package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/forgeapk/apk-builder-backend/internal/builds/domain"
)

const (
	recordKeyPrefix = "apk:project:" // record JSON: apk:project:{id}
	recordIndexKey  = "apk:projects" // set of known project ids
	recordTTL       = 7 * 24 * time.Hour
)

// RedisStore is the redis-backed record store. Records are stored as JSON
// values with an id-set index for listing; each Put is a single SET, so
// readers see either the previous or the new record, never a partial one.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, id string) (*domain.ProjectRecord, error) {
	data, err := s.client.Get(ctx, recordKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get record %s: %w", id, err)
	}

	var record domain.ProjectRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("unmarshal record %s: %w", id, err)
	}
	return &record, nil
}

func (s *RedisStore) Put(ctx context.Context, record *domain.ProjectRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record %s: %w", record.ID, err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, recordKeyPrefix+record.ID, data, recordTTL)
	pipe.SAdd(ctx, recordIndexKey, record.ID)
	pipe.Expire(ctx, recordIndexKey, recordTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("put record %s: %w", record.ID, err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context) ([]domain.ProjectSummary, error) {
	ids, err := s.client.SMembers(ctx, recordIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	out := make([]domain.ProjectSummary, 0, len(ids))
	for _, id := range ids {
		record, err := s.Get(ctx, id)
		if err != nil {
			// expired records linger in the index until their id is re-listed
			continue
		}
		out = append(out, record.Summary())
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
