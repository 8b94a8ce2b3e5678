package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/jobboard/jobboard-api/internal/config"
	"github.com/jobboard/jobboard-api/internal/handlers"
	"github.com/jobboard/jobboard-api/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	jobHandler *handlers.JobHandler,
	userHandler *handlers.UserHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Job listing (public)
	jobs := api.Group("/jobs")
	jobs.Get("/", jobHandler.List)
	jobs.Get("/filters", jobHandler.Filters)
	jobs.Get("/:id", jobHandler.Get)

	// Caller's profile and applications (JWT required)
	users := api.Group("/users", middleware.JWTProtected(cfg))
	users.Get("/user", userHandler.GetUser)
	users.Post("/apply", userHandler.Apply)
	users.Get("/applications", userHandler.Applications)
	users.Post("/update-resume", userHandler.UpdateResume)
}
