package config

import (
	"Food-Wastage-Management/internal/api/handlers"
	"Food-Wastage-Management/internal/api/routes"
	"Food-Wastage-Management/internal/middleware"
	"Food-Wastage-Management/internal/utils"
	"Food-Wastage-Management/internal/utils/storage"
	"Food-Wastage-Management/pkg/admin"
	"Food-Wastage-Management/pkg/directory"
	"Food-Wastage-Management/pkg/food"
	"Food-Wastage-Management/pkg/jwt"
	"Food-Wastage-Management/pkg/report"
	"Food-Wastage-Management/pkg/snapshot"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	log := utils.SetupLogger()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	logDir := utils.GetConfig("LOG_DIR")
	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		filepath.Join(logDir, "app.log"),
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Kolkata",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// utils; publishing is disabled without a bucket
	var s3 storage.AwsS3
	if utils.GetConfig("AWS_S3_BUCKET") != "" {
		s3, err = storage.NewAwsS3()
		if err != nil {
			utils.LogError(log, "config", "NewApp", "init s3", nil, err)
			s3 = nil
		}
	}

	// Repository
	snapshotRepository := snapshot.NewSnapshotRepository(db)
	foodRepository := food.NewFoodRepository(db)
	reportRepository := report.NewReportRepository(db)
	registry := snapshot.NewRegistry(snapshotRepository)

	// Service
	jwtService := jwt.NewJWTService()
	adminService := admin.NewAdminService(
		utils.GetConfig("ADMIN_USERNAME"),
		utils.GetConfig("ADMIN_PASSWORD_HASH"),
		jwtService,
	)
	foodService := food.NewFoodService(foodRepository, registry)
	reportService := report.NewReportService(reportRepository, s3)
	directoryService := directory.NewDirectoryService()

	// Handler
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	reportHandler := handlers.NewReportHandler(reportService, validator)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)
	sessionHandler := handlers.NewSessionHandler(registry, adminService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		FoodHandler:      foodHandler,
		ReportHandler:    reportHandler,
		DirectoryHandler: directoryHandler,
		SessionHandler:   sessionHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
		Registry:         registry,
	}
	routesConfig.Setup()
	return app, nil
}
