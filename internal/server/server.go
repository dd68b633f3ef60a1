// SPDX-License-Identifier: MIT

// Package server publishes route queries and the grid summary over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/katalvlaran/deliveryroute/internal/config"
)

// Server owns the listener for the route API.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// New binds handler to cfg's host and port with cfg's timeouts. Nothing
// listens until Start.
func New(logger *slog.Logger, cfg config.HTTPConfig, handler http.Handler) *Server {
	return &Server{
		logger: logger,
		httpServer: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
		},
	}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.httpServer.Addr }

// Start serves route requests until Shutdown; a clean shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info("route api listening", "addr", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight route
// calculations to finish or for ctx to expire.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("route api draining")
	return s.httpServer.Shutdown(ctx)
}
