// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/deliveryroute/gridmap"
	"github.com/katalvlaran/deliveryroute/internal/config"
	"github.com/katalvlaran/deliveryroute/internal/graphdb"
)

// NewSource selects the adjacency source described by cfg.Grid.
//
// For the neo4j source the returned client must be closed by the caller; it
// is nil for every other source.
func NewSource(ctx context.Context, cfg config.Config) (gridmap.Source, graphdb.Client, error) {
	switch cfg.Grid.Source {
	case config.SourceHTTP:
		src, err := gridmap.NewHTTPSource(cfg.Grid.BaseURI, cfg.Grid.APIURI, &http.Client{Timeout: cfg.Grid.Timeout})
		if err != nil {
			return nil, nil, err
		}
		return src, nil, nil
	case config.SourceFile:
		return gridmap.FileSource{Path: cfg.Grid.File}, nil, nil
	case config.SourceNeo4j:
		client, err := graphdb.Dial(ctx, graphdb.Options{
			URI:            cfg.Graph.URI,
			Database:       cfg.Graph.Database,
			Username:       cfg.Graph.Username,
			Password:       cfg.Graph.Password,
			MaxConnections: cfg.Graph.MaxConnections,
		})
		if err != nil {
			return nil, nil, err
		}
		return graphdb.NewAdjacencySource(client), client, nil
	case config.SourceStatic:
		adj, err := gridmap.Uniform(cfg.Grid.Width, cfg.Grid.Height, decimal.NewFromInt(1), gridmap.Conn4)
		if err != nil {
			return nil, nil, err
		}
		return gridmap.StaticSource(adj), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown grid source %q", cfg.Grid.Source)
	}
}
