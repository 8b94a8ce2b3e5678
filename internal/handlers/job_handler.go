package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jobboard/jobboard-api/internal/dto"
	"github.com/jobboard/jobboard-api/internal/listing"
	"github.com/jobboard/jobboard-api/internal/services"
	"github.com/jobboard/jobboard-api/internal/validator"
)

type JobHandler struct {
	catalog  *services.CatalogService
	validate *validator.Validator
}

func NewJobHandler(catalog *services.CatalogService, validate *validator.Validator) *JobHandler {
	return &JobHandler{catalog: catalog, validate: validate}
}

// List answers one page of the filtered listing. Repeated "category" and
// "loc" parameters select checkbox filters; a missing page means page 1.
func (h *JobHandler) List(c *fiber.Ctx) error {
	var q dto.JobQuery
	if err := c.QueryParser(&q); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	args := c.Context().QueryArgs()
	for _, v := range args.PeekMulti("category") {
		q.Categories = append(q.Categories, string(v))
	}
	for _, v := range args.PeekMulti("loc") {
		q.Locations = append(q.Locations, string(v))
	}
	if err := h.validate.Struct(&q); err != nil {
		return respondError(c, "list_jobs", err)
	}
	if q.Page == 0 {
		q.Page = 1
	}

	page, err := h.catalog.Browse(c.UserContext(), services.JobQuery{
		Search:    listing.SearchFilter{Title: q.Title, Location: q.Location},
		Selection: listing.NewFilterSelection(q.Categories, q.Locations),
		Page:      q.Page,
	})
	if err != nil {
		return respondError(c, "list_jobs", err)
	}

	return c.JSON(dto.JobListResponse{Success: true, Page: page})
}

func (h *JobHandler) Filters(c *fiber.Ctx) error {
	return c.JSON(dto.FilterOptionsResponse{
		Success:    true,
		Categories: listing.Categories,
		Locations:  listing.Locations,
	})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid job id")
	}

	job, err := h.catalog.GetJob(c.UserContext(), id)
	if err != nil {
		return respondError(c, "get_job", err)
	}

	return c.JSON(dto.JobResponse{Success: true, Job: job})
}
