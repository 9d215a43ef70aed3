package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/eyesdeal/eyesdeal-backend/config"
	"github.com/eyesdeal/eyesdeal-backend/internal/app/controller"
	"github.com/eyesdeal/eyesdeal-backend/internal/app/repository"
	"github.com/eyesdeal/eyesdeal-backend/internal/app/service"
	"github.com/eyesdeal/eyesdeal-backend/internal/db"
	"github.com/eyesdeal/eyesdeal-backend/internal/router"
	"github.com/eyesdeal/eyesdeal-backend/internal/scheduler"
	"github.com/eyesdeal/eyesdeal-backend/internal/storage"
	"github.com/eyesdeal/eyesdeal-backend/pkg/logger"
	"github.com/eyesdeal/eyesdeal-backend/pkg/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting EYESDEAL Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// The attribute cache is optional; the service falls through to the
	// database when redis is off or unreachable.
	if cfg.Redis.Enabled {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Warn("Redis unavailable, attribute cache disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer redis.Close()
		}
	}

	// Repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	masterRepo := repository.NewMasterRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	storeRepo := repository.NewStoreRepository(db.GetDB())
	saleRepo := repository.NewSaleRepository(db.GetDB())
	purchaseRepo := repository.NewPurchaseRepository(db.GetDB())
	recallRepo := repository.NewRecallRepository(db.GetDB())

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	masterService := service.NewMasterService(masterRepo, cfg.Redis.AttributeTTL)
	productService := service.NewProductService(productRepo)
	storeService := service.NewStoreService(storeRepo)
	saleService := service.NewSaleService(saleRepo, recallRepo)
	purchaseService := service.NewPurchaseService(purchaseRepo)
	recallService := service.NewRecallService(recallRepo)

	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Controllers
	authController := controller.NewAuthController(authService)
	masterController := controller.NewMasterController(masterService)
	productController := controller.NewProductController(productService)
	storeController := controller.NewStoreController(storeService)
	saleController := controller.NewSaleController(saleService)
	purchaseController := controller.NewPurchaseController(purchaseService)
	recallController := controller.NewRecallController(recallService)
	uploadController := controller.NewUploadController(s3Storage)

	recallScheduler := scheduler.NewRecallScheduler(recallService)
	if err := recallScheduler.Start(); err != nil {
		logger.Fatal("Failed to start recall scheduler", err)
	}
	defer recallScheduler.Stop()

	r := router.NewRouter(
		authController,
		masterController,
		productController,
		storeController,
		saleController,
		purchaseController,
		recallController,
		uploadController,
		cfg,
	)
	engine := r.Setup()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
