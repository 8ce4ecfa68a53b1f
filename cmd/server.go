package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/careerlane/careerlane/consultancy/application/applicationapi"
	"github.com/careerlane/careerlane/consultancy/job/jobapi"
	"github.com/careerlane/careerlane/consultancy/profile/profileapi"
	"github.com/careerlane/careerlane/consultancy/reporting/reportingapi"
	"github.com/careerlane/careerlane/pkg/errx"
	"github.com/careerlane/careerlane/pkg/logx"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Initialize Logger
	logx.SetLevel(logx.LevelInfo)
	logx.Info("Starting CareerLane HR API...")

	// 2. Initialize Dependency Container
	container := NewContainer()
	defer container.DB.Close()
	defer container.Redis.Close()

	// 3. Create Fiber App with Config
	app := fiber.New(fiber.Config{
		AppName:               "CareerLane HR API",
		DisableStartupMessage: true,
		ErrorHandler:          globalErrorHandler,
	})

	// 4. Global Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*", // Configure for production
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, PATCH, HEAD",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// 5. Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"db":     container.DB.Ping() == nil,
			"redis":  container.Redis.Ping(c.Context()).Err() == nil,
		})
	})

	// 6. Register Routes

	// Profiles: /api/profile, /api/admin/users
	profileapi.RegisterRoutes(app, container.ProfileHandlers, container.AuthMiddleware)

	// Jobs: /api/jobs
	jobapi.RegisterRoutes(app, container.JobHandlers, container.AuthMiddleware)

	// Applications: /api/applications, /api/admin/applications
	applicationapi.RegisterRoutes(app, container.ApplicationHandlers, container.AuthMiddleware)

	// Reports: /api/admin/reports
	reportingapi.RegisterRoutes(app, container.ReportingHandlers, container.AuthMiddleware)

	// 7. Start Server with Graceful Shutdown
	addr := fmt.Sprintf(":%d", container.Config.API.Port)

	go func() {
		logx.Infof("Server listening on %s", addr)
		if err := app.Listen(addr); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Wait for signal
	logx.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("Server exited")
}

// globalErrorHandler converts internal errors to standard HTTP responses
func globalErrorHandler(c *fiber.Ctx, err error) error {
	// If it's a Fiber error (e.g., 404 handler not found)
	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{
			"error": e.Message,
			"code":  e.Code,
		})
	}

	// If it's our custom errx.Error
	if e, ok := err.(*errx.Error); ok {
		return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
	}

	// Default unknown error
	logx.Errorf("Internal Server Error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"type":    "INTERNAL",
		"code":    "INTERNAL_ERROR",
		"message": "An unexpected error occurred",
	})
}
