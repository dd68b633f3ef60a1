// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const readinessTimeout = 2 * time.Second

// RouterDependencies collects handler dependencies. A nil Readiness makes
// /healthz always report ok.
type RouterDependencies struct {
	Readiness      Readiness
	API            *APIHandlers
	AllowedOrigins []string
}

// NewRouter wires the HTTP routes.
//
//	GET  /healthz
//	GET  /api/grid
//	GET  /api/routes?start=A1&destination=G4
//	POST /api/routes {"startPoint":"A1","destinationPoint":"G4"}
func NewRouter(logger *slog.Logger, deps RouterDependencies) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), loggingMiddleware(logger))

	if len(deps.AllowedOrigins) > 0 {
		cfg := cors.DefaultConfig()
		if containsOrigin(deps.AllowedOrigins, "*") {
			cfg.AllowAllOrigins = true
		} else {
			cfg.AllowOrigins = deps.AllowedOrigins
		}
		cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
		cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
		r.Use(cors.New(cfg))
	}

	r.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
		defer cancel()

		status := http.StatusOK
		payload := gin.H{"status": "ok"}
		if deps.Readiness != nil {
			if err := deps.Readiness.Ready(ctx); err != nil {
				logger.Error("grid source not ready", "error", err)
				status = http.StatusServiceUnavailable
				payload["status"] = "degraded"
				payload["error"] = err.Error()
			}
		}
		c.JSON(status, payload)
	})

	if deps.API != nil {
		api := r.Group("/api")
		api.GET("/grid", deps.API.getGrid)
		api.GET("/routes", deps.API.getRoute)
		api.POST("/routes", deps.API.postRoute)
	}

	return r
}

func loggingMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

func containsOrigin(origins []string, origin string) bool {
	for _, o := range origins {
		if o == origin {
			return true
		}
	}
	return false
}
