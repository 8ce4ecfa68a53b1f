package profileapi

import (
	"github.com/careerlane/careerlane/consultancy/profile"
	"github.com/careerlane/careerlane/consultancy/profile/profilesrv"
	"github.com/careerlane/careerlane/pkg/auth"
	"github.com/careerlane/careerlane/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for profile operations
type Handlers struct {
	service *profilesrv.ProfileService
}

// NewHandlers creates a new profile handlers instance
func NewHandlers(service *profilesrv.ProfileService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// GetOwnProfile retrieves the caller's profile
// GET /api/profile
func (h *Handlers) GetOwnProfile(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	resp, err := h.service.GetProfile(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// UpdateOwnProfile applies a partial update to the caller's profile
// PATCH /api/profile
func (h *Handlers) UpdateOwnProfile(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req profile.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return profile.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.UpdateProfile(c.Context(), userID, req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// CreateProfile registers a new user account through the admin surface
// POST /api/admin/users
func (h *Handlers) CreateProfile(c *fiber.Ctx) error {
	var req profile.CreateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return profile.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.CreateProfile(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetProfile retrieves any profile by ID
// GET /api/admin/users/:id
func (h *Handlers) GetProfile(c *fiber.Ctx) error {
	userID := kernel.UserID(c.Params("id"))
	if userID.IsEmpty() {
		return profile.ErrProfileNotFound().WithDetail("id", "missing or empty")
	}

	resp, err := h.service.GetProfile(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ListProfiles retrieves all profiles with pagination
// GET /api/admin/users
func (h *Handlers) ListProfiles(c *fiber.Ctx) error {
	pagination := parsePaginationOptions(c)

	resp, err := h.service.ListProfiles(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// SetBlocked toggles the blocked flag on an account
// PATCH /api/admin/users/:id/blocked
func (h *Handlers) SetBlocked(c *fiber.Ctx) error {
	userID := kernel.UserID(c.Params("id"))
	if userID.IsEmpty() {
		return profile.ErrProfileNotFound().WithDetail("id", "missing or empty")
	}

	var req profile.SetBlockedRequest
	if err := c.BodyParser(&req); err != nil {
		return profile.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.SetBlocked(c.Context(), userID, req.Blocked)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// VerifyProfile marks an account as verified
// POST /api/admin/users/:id/verify
func (h *Handlers) VerifyProfile(c *fiber.Ctx) error {
	userID := kernel.UserID(c.Params("id"))
	if userID.IsEmpty() {
		return profile.ErrProfileNotFound().WithDetail("id", "missing or empty")
	}

	resp, err := h.service.VerifyProfile(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// DeleteProfile removes a user account
// DELETE /api/admin/users/:id
func (h *Handlers) DeleteProfile(c *fiber.Ctx) error {
	userID := kernel.UserID(c.Params("id"))
	if userID.IsEmpty() {
		return profile.ErrProfileNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteProfile(c.Context(), userID); err != nil {
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

// RegisterRoutes registers all profile routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	me := app.Group("/api/profile", authMiddleware.RequireAuth())

	me.Get("/", handlers.GetOwnProfile)
	me.Patch("/", handlers.UpdateOwnProfile)

	admin := app.Group("/api/admin/users",
		authMiddleware.RequireAuth(),
		authMiddleware.RequireAdmin(),
	)

	admin.Post("/", handlers.CreateProfile)
	admin.Get("/", handlers.ListProfiles)
	admin.Get("/:id", handlers.GetProfile)
	admin.Patch("/:id/blocked", handlers.SetBlocked)
	admin.Post("/:id/verify", handlers.VerifyProfile)
	admin.Delete("/:id", handlers.DeleteProfile)
}
