// Package main is the entry point for the scadaadmin API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scadaadmin/internal/bootstrap"
	"scadaadmin/internal/config"
	v1 "scadaadmin/internal/infrastructure/http/v1"
	"scadaadmin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := logger.WithLogger(context.Background(), log)
	log.Info("starting scadaadmin server")

	// --- Configuration database ---
	cb, err := bootstrap.OpenConfigBase(ctx, cfg)
	if err != nil {
		log.Fatalw("failed to open configuration database", "error", err)
	}
	defer cb.Close()
	log.Infow("configuration database ready", "tables", cb.Base.Stats())

	// --- Column builder ---
	builder, err := bootstrap.NewColumnBuilder(cfg, cb.Base, log)
	if err != nil {
		log.Fatalw("failed to create column builder", "error", err)
	}

	// --- Router ---
	routerCfg := v1.RouterConfig{
		Logger:        log,
		ColumnBuilder: builder,
		Stats:         cb.Base,
	}
	if cb.Pool != nil {
		routerCfg.DB = cb.Pool
		routerCfg.ConfigLoader = cb.Loader
	}

	handler, err := v1.NewHandler(routerCfg)
	if err != nil {
		log.Fatalw("failed to create http handler", "error", err)
	}

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
