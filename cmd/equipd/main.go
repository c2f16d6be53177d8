package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"equipment-status-backend/config"
	"equipment-status-backend/internal/api"
	"equipment-status-backend/internal/db"
	"equipment-status-backend/internal/inventory"
	"equipment-status-backend/internal/logger"
	"equipment-status-backend/internal/store"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration from %s: %v\n", configPath, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log.Info("configuration loaded", zap.String("path", configPath), zap.String("backend", cfg.Store.Backend))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to open store", zap.Error(err))
	}

	now := func() time.Time { return time.Now().In(cfg.Location) }
	tables := inventory.Tables{
		Equipment:   cfg.Store.Tables.Equipment,
		Maintenance: cfg.Store.Tables.Maintenance,
		Damage:      cfg.Store.Tables.Damage,
	}
	inv := inventory.New(appStore, tables, now, log)

	if cfg.Store.InitHeaders {
		if err := inv.EnsureHeaders(ctx); err != nil {
			log.Fatal("failed to initialise sheet headers", zap.Error(err))
		}
	}

	router := api.NewRouter(inv, cfg.Server, now, log)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Info("HTTP server starting", zap.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server ListenAndServe", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	log.Info("shutdown signal received, stopping server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("HTTP server Shutdown", zap.Error(err))
	}

	log.Info("server gracefully stopped")
}

// openStore builds the backend selected by store.backend.
func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (store.Store, error) {
	switch cfg.Store.Backend {
	case config.BackendSheets:
		return store.NewSheetsStore(ctx, cfg.Store.Sheets)
	case config.BackendXLSX:
		if cfg.Store.XLSX.Path == "" {
			log.Warn("xlsx store has no path, data lives in memory only")
		}
		return store.NewXLSXStore(cfg.Store.XLSX.Path), nil
	case config.BackendDatabase:
		gormDB, err := db.Init(&cfg.Database, log)
		if err != nil {
			return nil, err
		}
		log.Info("database initialized", zap.String("driver", cfg.Database.Driver))
		return store.NewGormStore(gormDB), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
