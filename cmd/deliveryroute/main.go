// SPDX-License-Identifier: MIT

// Command deliveryroute serves the route API over HTTP.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/deliveryroute/gridmap"
	"github.com/katalvlaran/deliveryroute/internal/config"
	"github.com/katalvlaran/deliveryroute/internal/graphdb"
	"github.com/katalvlaran/deliveryroute/internal/logging"
	"github.com/katalvlaran/deliveryroute/internal/server"
	"github.com/katalvlaran/deliveryroute/internal/service"
	"github.com/katalvlaran/deliveryroute/route"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)
	gin.SetMode(gin.ReleaseMode)

	strategy, err := route.ParseStrategy(cfg.Route.Strategy)
	if err != nil {
		logger.Error("invalid route strategy", "error", err)
		os.Exit(1)
	}

	src, graphClient, err := service.NewSource(ctx, cfg)
	if err != nil {
		logger.Error("failed to create grid source", "source", cfg.Grid.Source, "error", err)
		os.Exit(1)
	}
	defer closeClient(logger, graphClient)

	builderOpts := []gridmap.Option{gridmap.WithLogger(logger)}
	if cfg.Grid.Symmetric {
		builderOpts = append(builderOpts, gridmap.WithSymmetric())
	}
	routes := service.NewRouteService(gridmap.NewBuilder(src, builderOpts...), logger, route.WithStrategy(strategy))

	router := server.NewRouter(logger, server.RouterDependencies{
		Readiness:      server.GridStoreReadiness{Store: graphClient},
		API:            server.NewAPIHandlers(logger, routes),
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
	})

	srv := server.New(logger, cfg.HTTP, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil {
			logger.Error("server stopped unexpectedly", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func closeClient(logger *slog.Logger, client graphdb.Client) {
	if client == nil {
		return
	}
	if err := client.Close(context.Background()); err != nil {
		logger.Warn("closing graph client failed", "error", err)
	}
}
