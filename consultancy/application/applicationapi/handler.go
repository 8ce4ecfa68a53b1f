package applicationapi

import (
	"github.com/careerlane/careerlane/consultancy/application"
	"github.com/careerlane/careerlane/consultancy/application/applicationsrv"
	"github.com/careerlane/careerlane/pkg/auth"
	"github.com/careerlane/careerlane/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for application lifecycle operations
type Handlers struct {
	service *applicationsrv.ApplicationService
}

// NewHandlers creates a new application handlers instance
func NewHandlers(service *applicationsrv.ApplicationService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Apply submits an application for a job
// POST /api/applications
func (h *Handlers) Apply(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var body struct {
		JobID kernel.JobID `json:"jobId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.Apply(c.Context(), application.ApplyRequest{
		UserID: userID,
		JobID:  body.JobID,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateOwnStatus changes the status of the caller's own application
// PATCH /api/applications/:id/status
func (h *Handlers) UpdateOwnStatus(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID.IsEmpty() {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	var body struct {
		Status application.Status `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdateOwnStatus(c.Context(), application.UpdateStatusRequest{
		ApplicationID: applicationID,
		UserID:        userID,
		Status:        body.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// Cancel withdraws the caller's own application
// POST /api/applications/:id/cancel
func (h *Handlers) Cancel(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID.IsEmpty() {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	updated, err := h.service.Cancel(c.Context(), applicationID, userID)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// ListOwn retrieves the caller's applications
// GET /api/applications
func (h *Handlers) ListOwn(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	pagination := parsePaginationOptions(c)

	rows, err := h.service.ListForUser(c.Context(), userID, pagination)
	if err != nil {
		return err
	}

	return c.JSON(rows)
}

// ListAll retrieves all applications for the admin console
// GET /api/admin/applications
func (h *Handlers) ListAll(c *fiber.Ctx) error {
	pagination := parsePaginationOptions(c)

	rows, err := h.service.ListForAdmin(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(rows)
}

// GetDetail retrieves one application with full job and applicant detail
// GET /api/admin/applications/:id
func (h *Handlers) GetDetail(c *fiber.Ctx) error {
	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID.IsEmpty() {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	detail, err := h.service.FetchDetail(c.Context(), applicationID)
	if err != nil {
		return err
	}

	return c.JSON(detail)
}

// OverrideStatus moves an application to any status in the vocabulary
// PATCH /api/admin/applications/:id/status
func (h *Handlers) OverrideStatus(c *fiber.Ctx) error {
	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID.IsEmpty() {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	var body struct {
		Status application.Status `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.OverrideStatus(c.Context(), application.OverrideStatusRequest{
		ApplicationID: applicationID,
		Status:        body.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(updated)
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

// RegisterRoutes registers all application routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	api := app.Group("/api/applications", authMiddleware.RequireAuth())

	api.Post("/", handlers.Apply)
	api.Get("/", handlers.ListOwn)
	api.Patch("/:id/status", handlers.UpdateOwnStatus)
	api.Post("/:id/cancel", handlers.Cancel)

	admin := app.Group("/api/admin/applications",
		authMiddleware.RequireAuth(),
		authMiddleware.RequireAdmin(),
	)

	admin.Get("/", handlers.ListAll)
	admin.Get("/:id", handlers.GetDetail)
	admin.Patch("/:id/status", handlers.OverrideStatus)
}
