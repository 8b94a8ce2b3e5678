package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobboard/jobboard-api/internal/models"
	"github.com/jobboard/jobboard-api/internal/services/servicetest"
)

// unreachable returns a client whose every command fails fast.
func unreachable() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestJobCacheFallsThroughWhenRedisIsDown(t *testing.T) {
	catalog := servicetest.NewCatalog()
	job := catalog.AddJob(models.Job{Title: "SRE"})

	rdb := unreachable()
	defer rdb.Close()
	c := NewJobCache(rdb, catalog, time.Minute)

	jobs, err := c.ListJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "SRE", jobs[0].Title)

	found, err := c.FindJob(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, found.ID)

	assert.Error(t, c.Ping(context.Background()))
}

func TestNewRedisClientRejectsBadURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "not a url")
	assert.Error(t, err)
}
