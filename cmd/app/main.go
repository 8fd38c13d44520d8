package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/lootforge/internal/bootstrap"
	"github.com/osse101/lootforge/internal/config"
	"github.com/osse101/lootforge/internal/game"
	"github.com/osse101/lootforge/internal/scheduler"
	"github.com/osse101/lootforge/internal/server"
	"github.com/osse101/lootforge/internal/sse"
	"github.com/osse101/lootforge/internal/worker"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx := context.Background()

	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		return err
	}

	events, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	hub := sse.NewHub()
	hub.Start()

	if err := bootstrap.RegisterEventHandlers(events.Bus, hub); err != nil {
		return err
	}

	store, dbPool, err := bootstrap.InitializeSaveStore(ctx, cfg)
	if err != nil {
		return err
	}

	registry := game.NewRegistry(game.RegistryConfig{
		CacheSize: cfg.SessionCacheSize,
		TTL:       cfg.SessionTTL,
		Session:   game.Config{InventoryCapacity: cfg.InventoryCapacity},
	}, game.Dependencies{
		Catalog: cat,
		Events:  events.Publisher,
		Hub:     hub,
	}, store)

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(bootstrap.AutosaveJobName, cfg.AutosaveInterval, worker.NewAutosaveJob(registry))

	serverDeps := server.Dependencies{
		Sessions: registry,
		Catalog:  cat,
		Hub:      hub,
	}
	if dbPool != nil {
		serverDeps.DBPool = dbPool
	}
	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, serverDeps)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case <-stop:
	case runErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:     srv,
		Scheduler:  sched,
		WorkerPool: pool,
		Registry:   registry,
		Hub:        hub,
		Events:     events,
		DBPool:     dbPool,
	})

	return runErr
}
