package reportingapi

import (
	"time"

	"github.com/careerlane/careerlane/consultancy/reporting/reportingsrv"
	"github.com/careerlane/careerlane/pkg/auth"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for the admin dashboard
type Handlers struct {
	service *reportingsrv.ReportingService
}

// NewHandlers creates a new reporting handlers instance
func NewHandlers(service *reportingsrv.ReportingService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Overview returns headline totals. placementDays limits the placement
// count to a trailing window; omitted, placements are counted all-time.
// GET /api/admin/reports/overview?placementDays=30
func (h *Handlers) Overview(c *fiber.Ctx) error {
	var placementsSince time.Time
	if days := c.QueryInt("placementDays", 0); days > 0 {
		placementsSince = time.Now().AddDate(0, 0, -days)
	}

	resp, err := h.service.Overview(c.Context(), placementsSince)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// Graphs returns per-day signup and application series
// GET /api/admin/reports/graphs
func (h *Handlers) Graphs(c *fiber.Ctx) error {
	days := c.QueryInt("days", 30)

	resp, err := h.service.Graphs(c.Context(), days)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// RegisterRoutes registers all reporting routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.Middleware) {
	admin := app.Group("/api/admin/reports",
		authMiddleware.RequireAuth(),
		authMiddleware.RequireAdmin(),
	)

	admin.Get("/overview", handlers.Overview)
	admin.Get("/graphs", handlers.Graphs)
}
