package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"escala-equipe/internal/config"
	"escala-equipe/internal/handler"
	"escala-equipe/internal/middleware"
	"escala-equipe/internal/seed"
	"escala-equipe/internal/service"
	"escala-equipe/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	snapshot, err := seed.Snapshot(time.Month(cfg.SeedMonth), cfg.SeedYear)
	if err != nil {
		log.Fatalf("Failed to build seed data: %v", err)
	}

	stores := store.NewStores(snapshot)
	services := service.NewServices(stores, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	log.Printf("Server starting on port %s (seed window %02d/%d)", cfg.Port, cfg.SeedMonth, cfg.SeedYear)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService service.AuthService) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/login", h.Auth.Login)

	protected := v1.Group("", middleware.AuthRequired(authService))
	protected.Get("/auth/me", h.Auth.Me)

	shiftCodes := protected.Group("/shift-codes")
	shiftCodes.Get("/", h.Catalog.List)
	shiftCodes.Put("/:code", middleware.AdminOnly(), h.Catalog.Update)

	employees := protected.Group("/employees", middleware.AdminOnly())
	employees.Get("/", h.Employee.List)
	employees.Post("/", h.Employee.Create)
	employees.Put("/:id", h.Employee.Update)
	employees.Patch("/:id/active", h.Employee.SetActive)
	employees.Patch("/:id/default-shift", h.Employee.SetDefaultShift)

	schedule := protected.Group("/schedule")
	schedule.Get("/me", h.Schedule.MyRow)
	schedule.Get("/", middleware.AdminOnly(), h.Schedule.Grid)
	schedule.Put("/month", middleware.AdminOnly(), h.Schedule.ChangeMonth)
	schedule.Put("/cell", middleware.AdminOnly(), h.Schedule.SetCell)
	schedule.Put("/bulk", middleware.AdminOnly(), h.Schedule.SetCellsBulk)

	summary := protected.Group("/summary", middleware.AdminOnly())
	summary.Get("/", h.Summary.List)

	notifications := protected.Group("/notifications", middleware.AdminOnly())
	notifications.Get("/", h.Notification.List)
	notifications.Patch("/:id/resolve", h.Notification.Resolve)

	export := protected.Group("/export", middleware.AdminOnly())
	export.Get("/schedule", h.Export.Schedule)
}
