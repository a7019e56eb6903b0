package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"emplealocal-backend/config"
	v1 "emplealocal-backend/internal/delivery/http/v1"
	"emplealocal-backend/internal/repository/localstore"
	"emplealocal-backend/internal/usecase"
	"emplealocal-backend/pkg/kvstore"
	"emplealocal-backend/pkg/logger"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting emplealocal backend", "port", cfg.Port, "store", cfg.StoreDriver)

	// 3. Setup persistent store
	store, err := openStore(cfg)
	if err != nil {
		logger.Log.Error("Failed to open store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	// 4. Seed demo data (idempotent, only fills empty collections)
	if cfg.SeedDemoData {
		if err := localstore.Seed(context.Background(), store); err != nil {
			logger.Log.Error("Failed to seed demo data", "error", err)
			os.Exit(1)
		}
	}

	// 5. Setup Repositories
	userRepo := localstore.NewUserRepository(store)
	sessionRepo := localstore.NewSessionRepository(store)
	jobRepo := localstore.NewJobRepository(store)
	applicationRepo := localstore.NewApplicationRepository(store)

	// 6. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(userRepo, sessionRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, validate)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo)
	dashboardUC := usecase.NewDashboardUsecase(jobRepo, applicationRepo)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		DashboardUC:   dashboardUC,
		SessionRepo:   sessionRepo,
		Config:        cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func openStore(cfg *config.Config) (kvstore.Store, error) {
	switch cfg.StoreDriver {
	case "file":
		return kvstore.NewFile(cfg.StorePath)
	case "memory":
		return kvstore.NewMemory(), nil
	default:
		return kvstore.NewSQLite(cfg.StorePath)
	}
}
