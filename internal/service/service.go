// SPDX-License-Identifier: MIT

// Package service orchestrates one route request: acquire the grid, parse
// the endpoints and run the calculation.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/deliveryroute/gridmap"
	"github.com/katalvlaran/deliveryroute/position"
	"github.com/katalvlaran/deliveryroute/route"
)

// ErrGrid marks failures to produce the grid itself (malformed source
// content, cancelled acquisition) as opposed to bad request input.
var ErrGrid = errors.New("service: grid unavailable")

// GraphLoader yields a freshly built graph per call.
type GraphLoader interface {
	Load(ctx context.Context) (*gridmap.Graph, error)
}

// RouteService answers route and grid queries.
type RouteService struct {
	loader GraphLoader
	logger *slog.Logger
	opts   []route.Option
}

// NewRouteService constructs a RouteService. opts are applied to every
// calculation.
func NewRouteService(loader GraphLoader, logger *slog.Logger, opts ...route.Option) *RouteService {
	return &RouteService{loader: loader, logger: logger, opts: opts}
}

// GridSummary describes the currently available grid.
type GridSummary struct {
	Positions   []position.Position
	Connections int
}

// FindRoute parses start and destination, loads the grid and calculates the
// cheapest route between them.
//
// Errors:
//   - position.ErrFormat: malformed coordinate.
//   - route.ErrValidation / route.ErrNoRoute: from the calculation.
//   - ErrGrid: the grid could not be built.
func (s *RouteService) FindRoute(ctx context.Context, start, destination string) (route.Route[position.Position], error) {
	from, err := position.Parse(start)
	if err != nil {
		return route.Route[position.Position]{}, fmt.Errorf("start: %w", err)
	}
	to, err := position.Parse(destination)
	if err != nil {
		return route.Route[position.Position]{}, fmt.Errorf("destination: %w", err)
	}

	g, err := s.load(ctx)
	if err != nil {
		return route.Route[position.Position]{}, err
	}

	began := time.Now()
	r, err := route.Calculate(ctx, g, from, to, s.opts...)
	if err != nil {
		s.logger.InfoContext(ctx, "route not calculated", "start", from, "destination", to, "error", err)
		return route.Route[position.Position]{}, err
	}
	s.logger.DebugContext(ctx, "route calculated",
		"start", from, "destination", to,
		"hops", r.Hops(), "distance", r.Distance.String(),
		"duration", time.Since(began))

	return r, nil
}

// DescribeGrid loads the grid and summarizes it.
func (s *RouteService) DescribeGrid(ctx context.Context) (GridSummary, error) {
	g, err := s.load(ctx)
	if err != nil {
		return GridSummary{}, err
	}

	return GridSummary{Positions: g.IDs(), Connections: g.ConnectionCount()}, nil
}

func (s *RouteService) load(ctx context.Context) (*gridmap.Graph, error) {
	g, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGrid, err)
	}

	return g, nil
}
