package jobapi

import (
	"github.com/careerlane/careerlane/consultancy/job"
	"github.com/careerlane/careerlane/consultancy/job/jobsrv"
	"github.com/careerlane/careerlane/pkg/auth"
	"github.com/careerlane/careerlane/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for job operations
type Handlers struct {
	service *jobsrv.JobService
}

// NewHandlers creates a new job handlers instance
func NewHandlers(service *jobsrv.JobService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateJob posts a new job
// POST /api/jobs
func (h *Handlers) CreateJob(c *fiber.Ctx) error {
	var req job.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	newJob, err := h.service.CreateJob(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newJob)
}

// GetJob retrieves a job by ID
// GET /api/jobs/:id
func (h *Handlers) GetJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	found, err := h.service.GetJob(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(found)
}

// ListJobs retrieves all jobs with pagination
// GET /api/jobs
func (h *Handlers) ListJobs(c *fiber.Ctx) error {
	pagination := parsePaginationOptions(c)

	jobs, err := h.service.ListJobs(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// ListJobsForUser retrieves all jobs annotated with the caller's own
// application state
// GET /api/jobs/feed
func (h *Handlers) ListJobsForUser(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	pagination := parsePaginationOptions(c)

	jobs, err := h.service.ListJobsForUser(c.Context(), userID, pagination)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// UpdateJob edits an existing job
// PUT /api/jobs/:id
func (h *Handlers) UpdateJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	var req job.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdateJob(c.Context(), jobID, req)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// DeleteJob removes a job posting
// DELETE /api/jobs/:id
func (h *Handlers) DeleteJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteJob(c.Context(), jobID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// ============================================================================
// Helper Functions
// ============================================================================

// parsePaginationOptions extracts pagination options from query parameters
func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	return kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("limit", kernel.DefaultPageSize),
	}.Normalize()
}

// RegisterRoutes registers all job routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	api := app.Group("/api/jobs")

	// Authenticated read routes
	api.Get("/feed",
		authMiddleware.RequireAuth(),
		handlers.ListJobsForUser,
	)

	api.Get("/",
		authMiddleware.RequireAuth(),
		handlers.ListJobs,
	)

	api.Get("/:id",
		authMiddleware.RequireAuth(),
		handlers.GetJob,
	)

	// Admin write routes
	api.Post("/",
		authMiddleware.RequireAuth(),
		authMiddleware.RequireAdmin(),
		handlers.CreateJob,
	)

	api.Put("/:id",
		authMiddleware.RequireAuth(),
		authMiddleware.RequireAdmin(),
		handlers.UpdateJob,
	)

	api.Delete("/:id",
		authMiddleware.RequireAuth(),
		authMiddleware.RequireAdmin(),
		handlers.DeleteJob,
	)
}
