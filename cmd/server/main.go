package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"traveldesk-admin/internal/infrastructure/config"
	"traveldesk-admin/internal/infrastructure/identity"
	"traveldesk-admin/internal/infrastructure/persistence"
	"traveldesk-admin/internal/interface/platform"
	mongoRepo "traveldesk-admin/internal/interface/repository"
	"traveldesk-admin/internal/interface/rest"
	"traveldesk-admin/internal/usecase"
	"traveldesk-admin/pkg/logger"
	"traveldesk-admin/pkg/metrics"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting TravelDesk Admin Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Set up PostgreSQL for the audit trail
	gormDB, err := persistence.NewPostgresDB(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up repositories
	store := mongoRepo.NewMongoDocumentStore(db)
	auditRepo, err := mongoRepo.NewGormAuditRepository(gormDB)
	if err != nil {
		log.Fatal("Failed to set up audit repository", "error", err)
	}

	// Set up the platform API client
	platformAPI := platform.NewClient(
		ctx,
		cfg.PlatformBaseURL,
		cfg.PlatformTokenURL,
		cfg.PlatformClientID,
		cfg.PlatformClientSecret,
		log,
	)

	// Set up identity verification
	verifier, err := identity.NewVerifier(ctx, cfg.IdentityAudience, log)
	if err != nil {
		log.Fatal("Failed to create identity verifier", "error", err)
	}

	// Set up the admin service
	m := metrics.NewMetrics("traveldesk_admin")
	adminService := usecase.NewAdminService(store, auditRepo, platformAPI, log, m)

	// Set up HTTP server
	handler := rest.NewHandler(adminService, verifier, log)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.Routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop all goroutines

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("TravelDesk Admin Service stopped")
}
