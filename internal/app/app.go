package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"property-portal/internal/api"
	"property-portal/internal/config"
	"property-portal/internal/handler"
	"property-portal/internal/router"
)

type App struct {
	server *http.Server
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	client := api.New(cfg.UpstreamURL, cfg.UpstreamTimeout, api.WithRateLimit(cfg.UpstreamRPM))
	slog.Info("upstream configured", "url", cfg.UpstreamURL)

	appRouter := router.New(cfg, router.Handlers{
		Auth:      handler.NewAuthHandler(client),
		Property:  handler.NewPropertyHandler(client),
		Favorites: handler.NewFavoritesHandler(client),
		Profile:   handler.NewProfileHandler(client),
		Admin:     handler.NewAdminHandler(client),
		Contact:   handler.NewContactHandler(client),
	})

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           appRouter,
		ReadHeaderTimeout: cfg.ServerReadHeaderTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	return &App{server: server}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
