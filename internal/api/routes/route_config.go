package routes

import (
	"Food-Wastage-Management/internal/api/handlers"
	"Food-Wastage-Management/internal/middleware"
	"Food-Wastage-Management/pkg/jwt"
	"Food-Wastage-Management/pkg/snapshot"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	FoodHandler      handlers.FoodHandler
	ReportHandler    handlers.ReportHandler
	DirectoryHandler handlers.DirectoryHandler
	SessionHandler   handlers.SessionHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
	Registry         *snapshot.Registry
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Sessions()
	c.FoodListings()
	c.Directory()
	c.Reports()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Sessions() {
	c.App.Post("/api/v1/sessions", c.SessionHandler.CreateSession)
	c.App.Delete("/api/v1/sessions/:id", c.SessionHandler.DeleteSession)
	c.App.Post("/api/v1/admin/login", c.SessionHandler.Login)
}

func (c *Config) FoodListings() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	foodListings := c.App.Group("/api/v1/food-listings", c.Middleware.SessionMiddleware(c.Registry))

	foodListings.Get("", c.FoodHandler.GetFoodListings)
	foodListings.Get("/options", c.FoodHandler.GetFilterOptions)
	foodListings.Get("/:id", c.FoodHandler.GetFoodListingDetails)

	// writes invalidate every session cache
	foodListings.Post("", auth, c.FoodHandler.AddFoodListing)
	foodListings.Put("/:id", auth, c.FoodHandler.UpdateFoodListing)
	foodListings.Delete("/:id", auth, c.FoodHandler.DeleteFoodListing)
}

func (c *Config) Directory() {
	session := c.Middleware.SessionMiddleware(c.Registry)
	c.App.Get("/api/v1/providers", session, c.DirectoryHandler.GetProviders)
	c.App.Get("/api/v1/receivers", session, c.DirectoryHandler.GetReceivers)
	c.App.Get("/api/v1/claims/orphaned", c.FoodHandler.GetOrphanedClaims)
}

func (c *Config) Reports() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	reports := c.App.Group("/api/v1/reports")
	reports.Get("", c.ReportHandler.GetReports)
	reports.Delete("/published", auth, c.ReportHandler.UnpublishReport)
	reports.Get("/:name", c.ReportHandler.RunReport)
	reports.Get("/:name/export", c.ReportHandler.ExportReport)
	reports.Post("/:name/publish", auth, c.ReportHandler.PublishReport)
}
