package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inventory-system/internal/api"
	"inventory-system/internal/database"
	"inventory-system/pkg/config"
	"inventory-system/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real env vars win
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/server.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		// Logger is not up yet
		println("Failed to load config:", err.Error())
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	log.SetFormatter(cfg.Logging.Format)
	log.WithComponent("main").Info("Starting inventory server")

	gin.SetMode(cfg.Server.Mode)

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}

	created, err := database.EnsureAdminUser(db, cfg.Admin.Username, cfg.Admin.Password, cfg.Security.BcryptCost)
	if err != nil {
		log.Fatal("Failed to seed admin user: %v", err)
	}
	if created {
		log.Info("Seeded admin user %q", cfg.Admin.Username)
	}

	services := api.NewServices(db, log, cfg)
	defer services.Stop()

	router := gin.New()
	api.SetupRoutes(router, services)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("Listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed: %v", err)
		}
	}()

	// Wait for interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown: %v", err)
	}
	log.Info("Server stopped")
}
