package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jobboard/jobboard-api/internal/dto"
	"github.com/jobboard/jobboard-api/internal/identity"
	"github.com/jobboard/jobboard-api/internal/services"
	"github.com/jobboard/jobboard-api/internal/validator"
)

type UserHandler struct {
	registry *services.Registry
	validate *validator.Validator
}

func NewUserHandler(registry *services.Registry, validate *validator.Validator) *UserHandler {
	return &UserHandler{registry: registry, validate: validate}
}

// GetUser returns the caller, creating the user on first sight.
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := identity.FromContext(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Not Authorized. Login Again")
	}

	user, err := h.registry.EnsureUser(c.UserContext(), id.ExternalID, id.Claims)
	if err != nil {
		return respondError(c, "ensure_user", err)
	}

	return c.JSON(dto.UserResponse{Success: true, User: user})
}

func (h *UserHandler) Apply(c *fiber.Ctx) error {
	externalID, err := identity.GetExternalID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Not Authorized. Login Again")
	}

	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return respondError(c, "submit_application", err)
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "jobId must be a valid id")
	}

	app, err := h.registry.SubmitApplication(c.UserContext(), externalID, jobID)
	if err != nil {
		return respondError(c, "submit_application", err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ApplyResponse{
		Success:     true,
		Message:     "Applied Successfully",
		Application: app,
	})
}

func (h *UserHandler) Applications(c *fiber.Ctx) error {
	externalID, err := identity.GetExternalID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Not Authorized. Login Again")
	}

	views, err := h.registry.ListApplications(c.UserContext(), externalID)
	if err != nil {
		return respondError(c, "list_applications", err)
	}

	return c.JSON(dto.ApplicationsResponse{Success: true, Applications: views})
}

// UpdateResume stores the "resume" multipart file. A request without the
// file succeeds and leaves the resume unchanged.
func (h *UserHandler) UpdateResume(c *fiber.Ctx) error {
	externalID, err := identity.GetExternalID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Not Authorized. Login Again")
	}

	var upload *services.Upload
	if fh, err := c.FormFile("resume"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid resume file")
		}
		defer f.Close()
		upload = &services.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(fiber.HeaderContentType),
			Body:        f,
		}
	}

	user, uploaded, err := h.registry.AttachResume(c.UserContext(), externalID, upload)
	if err != nil {
		return respondError(c, "attach_resume", err)
	}

	return c.JSON(dto.ResumeResponse{
		Success:  true,
		Message:  "Resume Updated",
		Resume:   user.Resume,
		Uploaded: uploaded,
	})
}
