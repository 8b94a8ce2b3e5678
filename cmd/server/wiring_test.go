package main

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobboard/jobboard-api/internal/identity"
	"github.com/jobboard/jobboard-api/internal/models"
	"github.com/jobboard/jobboard-api/internal/services"
	"github.com/jobboard/jobboard-api/internal/services/servicetest"
)

func TestApplicationSnapshotIgnoresCachedJob(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	catalog := servicetest.NewCatalog()
	before := catalog.AddCompany(models.Company{Name: "Before"})
	after := catalog.AddCompany(models.Company{Name: "After"})
	job := catalog.AddJob(models.Job{CompanyID: before.ID, Title: "Data Engineer"})

	registry, browse, pinger := wireServices(catalog, rdb, time.Minute,
		servicetest.NewUsers(), servicetest.NewApplications(), servicetest.NewFiles())
	require.NotNil(t, pinger)
	ctx := context.Background()

	warmed, err := browse.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, before.ID, warmed.CompanyID)

	catalog.MoveJob(job.ID, after.ID)

	// The listing still serves the cached copy.
	cached, err := browse.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, before.ID, cached.CompanyID)

	_, err = registry.EnsureUser(ctx, "idp_1", identity.Claims{})
	require.NoError(t, err)
	app, err := registry.SubmitApplication(ctx, "idp_1", job.ID)
	require.NoError(t, err)
	assert.Equal(t, after.ID, app.CompanyID)
}

func TestApplicationForMissingJobIgnoresCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	catalog := servicetest.NewCatalog()
	job := catalog.AddJob(models.Job{Title: "Gone Soon"})
	only := servicetest.NewCatalog()

	registry, browse, _ := wireServices(only, rdb, time.Minute,
		servicetest.NewUsers(), servicetest.NewApplications(), servicetest.NewFiles())
	ctx := context.Background()

	// Warm the cache key for a job the backing catalog does not hold.
	_, warm, _ := wireServices(catalog, rdb, time.Minute,
		servicetest.NewUsers(), servicetest.NewApplications(), servicetest.NewFiles())
	_, err := warm.GetJob(ctx, job.ID)
	require.NoError(t, err)
	_, err = browse.GetJob(ctx, job.ID)
	require.NoError(t, err, "listing serves the cached job")

	_, err = registry.EnsureUser(ctx, "idp_2", identity.Claims{})
	require.NoError(t, err)
	_, err = registry.SubmitApplication(ctx, "idp_2", job.ID)
	assert.ErrorIs(t, err, services.ErrJobNotFound)
}

func TestWireServicesWithoutRedis(t *testing.T) {
	catalog := servicetest.NewCatalog()
	job := catalog.AddJob(models.Job{Title: "Plain"})

	_, browse, pinger := wireServices(catalog, nil, time.Minute,
		servicetest.NewUsers(), servicetest.NewApplications(), servicetest.NewFiles())

	assert.Nil(t, pinger)
	found, err := browse.GetJob(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, found.ID)
}
