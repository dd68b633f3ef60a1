// SPDX-License-Identifier: MIT

// Package config loads service settings from an optional .env file, an
// optional HCL file and the process environment, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Grid source kinds.
const (
	SourceStatic = "static" // uniform layout of Width x Height cells
	SourceHTTP   = "http"
	SourceFile   = "file"
	SourceNeo4j  = "neo4j"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP    HTTPConfig
	Logging LoggingConfig
	Grid    GridConfig
	Graph   GraphConfig
	Route   RouteConfig
}

// HTTPConfig governs HTTP server behaviour.
type HTTPConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

// GridConfig selects where the adjacency description comes from.
type GridConfig struct {
	Source    string
	BaseURI   string // http: scheme and host
	APIURI    string // http: path appended to BaseURI
	File      string // file: JSON adjacency path
	Timeout   time.Duration
	Symmetric bool
	Width     int // static: columns
	Height    int // static: rows
}

// GraphConfig describes connectivity to the graph database.
type GraphConfig struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

// RouteConfig tunes route calculation.
type RouteConfig struct {
	Strategy string
}

const (
	defaultHost             = "0.0.0.0"
	defaultPort             = 8080
	defaultReadTimeout      = 10 * time.Second
	defaultWriteTimeout     = 15 * time.Second
	defaultIdleTimeout      = 60 * time.Second
	defaultShutdownTimeout  = 10 * time.Second
	defaultLoggingLevel     = "info"
	defaultLoggingFormat    = "text"
	defaultGridAPIURI       = "/api/grid"
	defaultGridTimeout      = 10 * time.Second
	defaultGridSize         = 8
	defaultGraphMaxSessions = 10
	defaultRouteStrategy    = "heap"
)

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		HTTP: HTTPConfig{
			Host:            defaultHost,
			Port:            defaultPort,
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			IdleTimeout:     defaultIdleTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Logging: LoggingConfig{
			Level:  defaultLoggingLevel,
			Format: defaultLoggingFormat,
		},
		Grid: GridConfig{
			Source:  SourceStatic,
			APIURI:  defaultGridAPIURI,
			Timeout: defaultGridTimeout,
			Width:   defaultGridSize,
			Height:  defaultGridSize,
		},
		Graph: GraphConfig{
			MaxConnections: defaultGraphMaxSessions,
		},
		Route: RouteConfig{
			Strategy: defaultRouteStrategy,
		},
	}
}

// Load reads ".env" (if present), the HCL file named by CONFIG_FILE (if
// set) and then the environment.
func Load() (Config, error) {
	return LoadFrom(".env", os.Getenv("CONFIG_FILE"))
}

// LoadFrom is Load with explicit file locations. Empty paths are skipped; a
// missing envFile is ignored, a missing hclFile is an error.
func LoadFrom(envFile, hclFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	if hclFile == "" {
		hclFile = os.Getenv("CONFIG_FILE")
	}

	cfg := Defaults()
	if hclFile != "" {
		if err := decodeFile(hclFile, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks cross-field requirements.
func (c Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("port %d is out of range", c.HTTP.Port)
	}
	switch c.Grid.Source {
	case SourceStatic:
		if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
			return fmt.Errorf("grid size %dx%d must be positive", c.Grid.Width, c.Grid.Height)
		}
	case SourceHTTP:
		if c.Grid.BaseURI == "" {
			return errors.New("GRID_SOURCE_BASE_URI is required for http grid source")
		}
	case SourceFile:
		if c.Grid.File == "" {
			return errors.New("GRID_SOURCE_FILE is required for file grid source")
		}
	case SourceNeo4j:
		if c.Graph.URI == "" {
			return errors.New("GRAPH_URI is required for neo4j grid source")
		}
	default:
		return fmt.Errorf("unknown grid source %q", c.Grid.Source)
	}

	return nil
}

func applyEnv(cfg *Config) error {
	cfg.HTTP.Host = valueOrDefault("SERVER_HOST", cfg.HTTP.Host)
	port, err := parsePort("SERVER_PORT", cfg.HTTP.Port)
	if err != nil {
		return err
	}
	cfg.HTTP.Port = port
	for key, dst := range map[string]*time.Duration{
		"SERVER_READ_TIMEOUT":     &cfg.HTTP.ReadTimeout,
		"SERVER_WRITE_TIMEOUT":    &cfg.HTTP.WriteTimeout,
		"SERVER_IDLE_TIMEOUT":     &cfg.HTTP.IdleTimeout,
		"SERVER_SHUTDOWN_TIMEOUT": &cfg.HTTP.ShutdownTimeout,
		"GRID_SOURCE_TIMEOUT":     &cfg.Grid.Timeout,
	} {
		if err = parseDuration(key, dst); err != nil {
			return err
		}
	}
	if v := os.Getenv("SERVER_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = ParseAllowedOrigins(v)
	}

	cfg.Logging.Level = valueOrDefault("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = valueOrDefault("LOG_FORMAT", cfg.Logging.Format)
	cfg.Logging.IncludeCaller = parseBoolWithDefault("LOG_INCLUDE_CALLER", cfg.Logging.IncludeCaller)

	cfg.Grid.Source = strings.ToLower(valueOrDefault("GRID_SOURCE", cfg.Grid.Source))
	cfg.Grid.BaseURI = valueOrDefault("GRID_SOURCE_BASE_URI", cfg.Grid.BaseURI)
	cfg.Grid.APIURI = valueOrDefault("GRID_SOURCE_API_URI", cfg.Grid.APIURI)
	cfg.Grid.File = valueOrDefault("GRID_SOURCE_FILE", cfg.Grid.File)
	cfg.Grid.Symmetric = parseBoolWithDefault("GRID_SYMMETRIC", cfg.Grid.Symmetric)
	cfg.Grid.Width = parseIntWithDefault("GRID_WIDTH", cfg.Grid.Width)
	cfg.Grid.Height = parseIntWithDefault("GRID_HEIGHT", cfg.Grid.Height)

	cfg.Graph.URI = valueOrDefault("GRAPH_URI", cfg.Graph.URI)
	cfg.Graph.Database = valueOrDefault("GRAPH_DATABASE", cfg.Graph.Database)
	cfg.Graph.Username = valueOrDefault("GRAPH_USERNAME", cfg.Graph.Username)
	cfg.Graph.Password = valueOrDefault("GRAPH_PASSWORD", cfg.Graph.Password)
	cfg.Graph.MaxConnections = parseIntWithDefault("GRAPH_MAX_CONNECTIONS", cfg.Graph.MaxConnections)

	cfg.Route.Strategy = valueOrDefault("ROUTE_STRATEGY", cfg.Route.Strategy)

	return nil
}

// ParseAllowedOrigins splits a comma-separated origin list, dropping blanks.
func ParseAllowedOrigins(csv string) []string {
	if csv == "" {
		return nil
	}
	var origins []string
	for _, part := range strings.Split(csv, ",") {
		origin := strings.TrimSpace(part)
		if origin == "" {
			continue
		}
		origins = append(origins, origin)
	}

	return origins
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parseIntWithDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			return val
		}
	}
	return fallback
}

func parseDuration(key string, dst *time.Duration) error {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = d
	}
	return nil
}

func parsePort(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		if port <= 0 || port > 65535 {
			return 0, fmt.Errorf("port %d is out of range", port)
		}
		return port, nil
	}
	return fallback, nil
}
