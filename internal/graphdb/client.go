// SPDX-License-Identifier: MIT

// Package graphdb stores and reads grid adjacency in a property-graph
// database over Bolt (Neo4j, or any openCypher endpoint speaking Bolt).
package graphdb

import (
	"context"
	"errors"
)

// Client defines the minimal contract needed to run Cypher statements.
type Client interface {
	ExecuteWrite(ctx context.Context, cypher string, params map[string]any) (Result, error)
	ExecuteRead(ctx context.Context, cypher string, params map[string]any) (Result, error)
	VerifyConnectivity(ctx context.Context) error
	Close(ctx context.Context) error
}

// Result is a simplified representation of a query response.
type Result struct {
	Records []Record
}

// Record groups key-value pairs returned from the graph engine.
type Record map[string]any

// Options configures a graph client implementation.
type Options struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

// ErrMissingURI indicates the graph URI is not provided.
var ErrMissingURI = errors.New("graphdb: URI is required")
