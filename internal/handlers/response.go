package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/jobboard/jobboard-api/internal/dto"
	"github.com/jobboard/jobboard-api/internal/services"
	"github.com/jobboard/jobboard-api/internal/validator"
)

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Response{Success: false, Message: message})
}

// respondError maps a service error to its status and message. Unexpected
// errors are logged and reported as a generic failure.
func respondError(c *fiber.Ctx, action string, err error) error {
	var verr *validator.ValidationError
	switch {
	case errors.As(err, &verr):
		return fail(c, fiber.StatusBadRequest, verr.Error())
	case errors.Is(err, services.ErrValidation):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		return fail(c, fiber.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrJobNotFound):
		return fail(c, fiber.StatusNotFound, "Job Not Found")
	case errors.Is(err, services.ErrAlreadyApplied):
		return fail(c, fiber.StatusConflict, "Already Applied")
	}

	slog.Error("request failed",
		"action", action,
		"method", c.Method(),
		"path", c.Path(),
		"request_id", requestID(c),
		"error", err.Error(),
	)
	return fail(c, fiber.StatusInternalServerError, "Internal server error")
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}

// ErrorHandler is the fiber fallback for errors no handler answered.
// Only client errors expose their message.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	if code >= 500 {
		slog.Error("unhandled server error",
			"method", c.Method(), "path", c.Path(), "request_id", requestID(c), "error", err.Error())
		message = "Internal server error"
	}

	return fail(c, code, message)
}
