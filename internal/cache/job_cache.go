package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jobboard/jobboard-api/internal/models"
	"github.com/jobboard/jobboard-api/internal/services"
)

const (
	listKey   = "jobboard:jobs:visible"
	jobPrefix = "jobboard:job:"
)

// JobCache is a read-through Redis cache in front of a job catalog. Redis
// errors are logged and the request falls through to the catalog.
type JobCache struct {
	rdb  *redis.Client
	next services.JobCatalog
	ttl  time.Duration
}

func NewJobCache(rdb *redis.Client, next services.JobCatalog, ttl time.Duration) *JobCache {
	return &JobCache{rdb: rdb, next: next, ttl: ttl}
}

func (c *JobCache) ListJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if c.get(ctx, listKey, &jobs) {
		return jobs, nil
	}

	jobs, err := c.next.ListJobs(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, listKey, jobs)
	return jobs, nil
}

func (c *JobCache) FindJob(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	key := jobPrefix + id.String()

	var job models.Job
	if c.get(ctx, key, &job) {
		return &job, nil
	}

	found, err := c.next.FindJob(ctx, id)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, found)
	return found, nil
}

// JobsByIDs is not cached; application history must show current data.
func (c *JobCache) JobsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Job, error) {
	return c.next.JobsByIDs(ctx, ids)
}

func (c *JobCache) CompaniesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Company, error) {
	return c.next.CompaniesByIDs(ctx, ids)
}

func (c *JobCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *JobCache) get(ctx context.Context, key string, dst interface{}) bool {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("job cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		slog.Warn("job cache entry corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (c *JobCache) set(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.Warn("job cache write failed", "key", key, "error", err)
	}
}
