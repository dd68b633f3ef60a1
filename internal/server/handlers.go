// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/deliveryroute/core"
	"github.com/katalvlaran/deliveryroute/internal/service"
	"github.com/katalvlaran/deliveryroute/position"
	"github.com/katalvlaran/deliveryroute/route"
)

// RouteFinder is the subset of service.RouteService used by the handlers.
type RouteFinder interface {
	FindRoute(ctx context.Context, start, destination string) (route.Route[position.Position], error)
	DescribeGrid(ctx context.Context) (service.GridSummary, error)
}

// APIHandlers exposes HTTP handlers for the REST API.
type APIHandlers struct {
	logger  *slog.Logger
	service RouteFinder
}

// NewAPIHandlers constructs an APIHandlers instance.
func NewAPIHandlers(logger *slog.Logger, svc RouteFinder) *APIHandlers {
	return &APIHandlers{
		logger:  logger,
		service: svc,
	}
}

type routeRequest struct {
	StartPoint       string `json:"startPoint" binding:"required"`
	DestinationPoint string `json:"destinationPoint" binding:"required"`
}

type routeResponse struct {
	Path          []string    `json:"path"`
	TotalDistance json.Number `json:"totalDistance"`
	Hops          int         `json:"hops"`
}

type gridResponse struct {
	Positions   []string `json:"positions"`
	Connections int      `json:"connections"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *APIHandlers) postRoute(c *gin.Context) {
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	h.respondRoute(c, req.StartPoint, req.DestinationPoint)
}

func (h *APIHandlers) getRoute(c *gin.Context) {
	start, dest := c.Query("start"), c.Query("destination")
	if start == "" || dest == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "start and destination query parameters are required"})
		return
	}
	h.respondRoute(c, start, dest)
}

func (h *APIHandlers) respondRoute(c *gin.Context, start, dest string) {
	r, err := h.service.FindRoute(c.Request.Context(), start, dest)
	if err != nil {
		h.writeError(c, err)
		return
	}

	path := make([]string, len(r.Path))
	for i, p := range r.Path {
		path[i] = p.String()
	}
	c.JSON(http.StatusOK, routeResponse{
		Path:          path,
		TotalDistance: json.Number(r.Distance.String()),
		Hops:          r.Hops(),
	})
}

func (h *APIHandlers) getGrid(c *gin.Context) {
	sum, err := h.service.DescribeGrid(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	positions := make([]string, len(sum.Positions))
	for i, p := range sum.Positions {
		positions[i] = p.String()
	}
	c.JSON(http.StatusOK, gridResponse{Positions: positions, Connections: sum.Connections})
}

func (h *APIHandlers) writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "path", c.Request.URL.Path, "error", err)
	}
	c.JSON(status, errorResponse{Error: err.Error()})
}

// statusFor maps domain errors to HTTP status codes. An empty grid means
// the source delivered nothing, so it is reported as unavailable rather than
// as a bad request.
func statusFor(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, service.ErrGrid):
		return http.StatusInternalServerError
	case errors.Is(err, route.ErrEmptyGraph):
		return http.StatusServiceUnavailable
	case errors.Is(err, position.ErrFormat),
		errors.Is(err, core.ErrValue),
		errors.Is(err, route.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, route.ErrNoRoute):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
