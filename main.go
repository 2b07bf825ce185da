package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"royal-palace-backend/config"
	"royal-palace-backend/controllers"
	"royal-palace-backend/routes"
	"royal-palace-backend/services"
	"royal-palace-backend/utils"
)

func newLogger() (*zap.Logger, error) {
	if utils.EnvOrDefault("LOG_FORMAT", "json") == "console" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Pick the ledger driver: MySQL (default) or plain text files.
	var ledger services.Ledger
	switch cfg.LedgerDriver {
	case "file":
		fl, err := services.NewFileLedger(cfg.LedgerDir)
		if err != nil {
			log.Fatalf("failed to open file ledger at %s: %v", cfg.LedgerDir, err)
		}
		ledger = fl
		logger.Info("using file ledger", zap.String("dir", cfg.LedgerDir))
	default:
		if err := config.ConnectDatabase(); err != nil {
			log.Fatalf("database connect failed: %v", err)
		}
		ledger = services.NewGormLedger(config.DB)
		logger.Info("using mysql ledger")
	}

	// Initialize services
	menuService, err := services.NewMenuService(cfg.Menu)
	if err != nil {
		log.Fatalf("invalid menu catalog: %v", err)
	}
	inventoryService, err := services.NewInventoryService(cfg.Rooms)
	if err != nil {
		log.Fatalf("invalid room inventory: %v", err)
	}
	roomService := services.NewRoomService(menuService, ledger, logger)
	adminService := services.NewAdminService(cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPasswordHash)

	// Initialize controllers
	roomController := controllers.NewRoomController(inventoryService, roomService)
	bookingController := controllers.NewBookingController(inventoryService, roomService)
	orderController := controllers.NewOrderController(inventoryService, roomService, menuService)
	adminController := controllers.NewAdminController(adminService, inventoryService, roomService)
	settingsController := controllers.NewSettingsController(cfg.Hotel)

	// Build router
	router := routes.SetupRouter(
		roomController,
		bookingController,
		orderController,
		adminController,
		settingsController,
		adminService,
		logger,
	)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("server starting",
			zap.String("addr", addr),
			zap.String("hotel", cfg.Hotel.Name),
			zap.Int("rooms", len(cfg.Rooms)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	logger.Info("server stopped gracefully")
}
