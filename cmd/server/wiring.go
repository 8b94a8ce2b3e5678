package main

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jobboard/jobboard-api/internal/cache"
	"github.com/jobboard/jobboard-api/internal/handlers"
	"github.com/jobboard/jobboard-api/internal/services"
	"github.com/jobboard/jobboard-api/internal/storage"
)

// wireServices builds the registry and the listing service. Only the
// listing reads through Redis; the registry snapshots jobs from jobs
// directly so an application records the job as it is when submitted.
// rdb may be nil, in which case the returned Pinger is nil too.
func wireServices(
	jobs services.JobCatalog,
	rdb *redis.Client,
	ttl time.Duration,
	users services.UserStore,
	apps services.ApplicationStore,
	files storage.Storage,
) (*services.Registry, *services.CatalogService, handlers.Pinger) {
	registry := services.NewRegistry(users, apps, jobs, files)

	if rdb == nil {
		return registry, services.NewCatalogService(jobs), nil
	}

	jobCache := cache.NewJobCache(rdb, jobs, ttl)
	return registry, services.NewCatalogService(jobCache), jobCache
}
