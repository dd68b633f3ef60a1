// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// fileRoot mirrors the accepted HCL layout. Every block and attribute is
// optional; absent values keep the defaults.
//
//	server  { host = "0.0.0.0"  port = 8080  read_timeout = "10s"  allowed_origins = ["*"] }
//	logging { level = "debug"  format = "json"  include_caller = true }
//	grid    { source = "http"  base_uri = "http://grid"  api_uri = "/api/grid"  symmetric = true }
//	graph   { uri = "bolt://localhost:7687"  database = "neo4j" }
//	route   { strategy = "scan" }
type fileRoot struct {
	Server  *serverBlock  `hcl:"server,block"`
	Logging *loggingBlock `hcl:"logging,block"`
	Grid    *gridBlock    `hcl:"grid,block"`
	Graph   *graphBlock   `hcl:"graph,block"`
	Route   *routeBlock   `hcl:"route,block"`
}

type serverBlock struct {
	Host            *string  `hcl:"host,optional"`
	Port            *int     `hcl:"port,optional"`
	ReadTimeout     *string  `hcl:"read_timeout,optional"`
	WriteTimeout    *string  `hcl:"write_timeout,optional"`
	IdleTimeout     *string  `hcl:"idle_timeout,optional"`
	ShutdownTimeout *string  `hcl:"shutdown_timeout,optional"`
	AllowedOrigins  []string `hcl:"allowed_origins,optional"`
}

type loggingBlock struct {
	Level         *string `hcl:"level,optional"`
	Format        *string `hcl:"format,optional"`
	IncludeCaller *bool   `hcl:"include_caller,optional"`
}

type gridBlock struct {
	Source    *string `hcl:"source,optional"`
	BaseURI   *string `hcl:"base_uri,optional"`
	APIURI    *string `hcl:"api_uri,optional"`
	File      *string `hcl:"file,optional"`
	Timeout   *string `hcl:"timeout,optional"`
	Symmetric *bool   `hcl:"symmetric,optional"`
	Width     *int    `hcl:"width,optional"`
	Height    *int    `hcl:"height,optional"`
}

type graphBlock struct {
	URI            *string `hcl:"uri,optional"`
	Database       *string `hcl:"database,optional"`
	Username       *string `hcl:"username,optional"`
	Password       *string `hcl:"password,optional"`
	MaxConnections *int    `hcl:"max_connections,optional"`
}

type routeBlock struct {
	Strategy *string `hcl:"strategy,optional"`
}

// decodeFile overlays the HCL file at path onto cfg.
func decodeFile(path string, cfg *Config) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	var root fileRoot
	if diags = gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	return root.apply(cfg)
}

func (r fileRoot) apply(cfg *Config) error {
	if s := r.Server; s != nil {
		set(&cfg.HTTP.Host, s.Host)
		set(&cfg.HTTP.Port, s.Port)
		if s.AllowedOrigins != nil {
			cfg.HTTP.AllowedOrigins = s.AllowedOrigins
		}
		for _, d := range []struct {
			name string
			src  *string
			dst  *time.Duration
		}{
			{"server.read_timeout", s.ReadTimeout, &cfg.HTTP.ReadTimeout},
			{"server.write_timeout", s.WriteTimeout, &cfg.HTTP.WriteTimeout},
			{"server.idle_timeout", s.IdleTimeout, &cfg.HTTP.IdleTimeout},
			{"server.shutdown_timeout", s.ShutdownTimeout, &cfg.HTTP.ShutdownTimeout},
		} {
			if err := setDuration(d.name, d.dst, d.src); err != nil {
				return err
			}
		}
	}
	if l := r.Logging; l != nil {
		set(&cfg.Logging.Level, l.Level)
		set(&cfg.Logging.Format, l.Format)
		set(&cfg.Logging.IncludeCaller, l.IncludeCaller)
	}
	if g := r.Grid; g != nil {
		set(&cfg.Grid.Source, g.Source)
		set(&cfg.Grid.BaseURI, g.BaseURI)
		set(&cfg.Grid.APIURI, g.APIURI)
		set(&cfg.Grid.File, g.File)
		set(&cfg.Grid.Symmetric, g.Symmetric)
		set(&cfg.Grid.Width, g.Width)
		set(&cfg.Grid.Height, g.Height)
		if err := setDuration("grid.timeout", &cfg.Grid.Timeout, g.Timeout); err != nil {
			return err
		}
	}
	if g := r.Graph; g != nil {
		set(&cfg.Graph.URI, g.URI)
		set(&cfg.Graph.Database, g.Database)
		set(&cfg.Graph.Username, g.Username)
		set(&cfg.Graph.Password, g.Password)
		set(&cfg.Graph.MaxConnections, g.MaxConnections)
	}
	if rt := r.Route; rt != nil {
		set(&cfg.Route.Strategy, rt.Strategy)
	}

	return nil
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setDuration(name string, dst *time.Duration, src *string) error {
	if src == nil {
		return nil
	}
	d, err := time.ParseDuration(*src)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	*dst = d

	return nil
}
