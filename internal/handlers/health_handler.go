package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jobboard/jobboard-api/internal/dto"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type JobCounter interface {
	CountJobs(ctx context.Context) (int64, error)
}

type HealthHandler struct {
	dbPing func() error
	cache  Pinger
	jobs   JobCounter
}

// NewHealthHandler builds the health check. cache may be nil when Redis is
// not configured.
func NewHealthHandler(dbPing func() error, cache Pinger, jobs JobCounter) *HealthHandler {
	return &HealthHandler{dbPing: dbPing, cache: cache, jobs: jobs}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := "ok"
	dbStatus := "ok"
	if err := h.dbPing(); err != nil {
		status = "degraded"
		dbStatus = "unhealthy: " + err.Error()
	}

	cacheStatus := "disabled"
	if h.cache != nil {
		cacheStatus = "ok"
		if err := h.cache.Ping(ctx); err != nil {
			cacheStatus = "unhealthy: " + err.Error()
		}
	}

	var count int64
	if dbStatus == "ok" {
		if n, err := h.jobs.CountJobs(ctx); err == nil {
			count = n
		}
	}

	return c.JSON(dto.HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
		Cache:     cacheStatus,
		JobCount:  count,
	})
}
