// SPDX-License-Identifier: MIT

package graphdb

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Dial opens a driver for the grid store at opts.URI and checks that it
// answers before handing it out.
func Dial(ctx context.Context, opts Options) (Client, error) {
	if opts.URI == "" {
		return nil, ErrMissingURI
	}

	auth := neo4j.NoAuth()
	if opts.Username != "" {
		auth = neo4j.BasicAuth(opts.Username, opts.Password, "")
	}
	driver, err := neo4j.NewDriverWithContext(opts.URI, auth, func(c *neo4j.Config) {
		if opts.MaxConnections > 0 {
			c.MaxConnectionPoolSize = opts.MaxConnections
		}
	})
	if err != nil {
		return nil, fmt.Errorf("graphdb: driver for %s: %w", opts.URI, err)
	}
	if err = driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("graphdb: grid store %s: %w", opts.URI, err)
	}

	return &boltClient{driver: driver, database: opts.Database}, nil
}

// boltClient runs every statement in its own short-lived session; the grid
// is read once per request, so sessions are not pooled beyond the driver.
type boltClient struct {
	driver   neo4j.DriverWithContext
	database string
}

func (c *boltClient) ExecuteRead(ctx context.Context, cypher string, params map[string]any) (Result, error) {
	return c.session(ctx, neo4j.AccessModeRead, cypher, params)
}

func (c *boltClient) ExecuteWrite(ctx context.Context, cypher string, params map[string]any) (Result, error) {
	return c.session(ctx, neo4j.AccessModeWrite, cypher, params)
}

func (c *boltClient) VerifyConnectivity(ctx context.Context) error {
	return c.driver.VerifyConnectivity(ctx)
}

func (c *boltClient) Close(ctx context.Context) error { return c.driver.Close(ctx) }

func (c *boltClient) session(ctx context.Context, mode neo4j.AccessMode, cypher string, params map[string]any) (Result, error) {
	s := c.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: c.database, AccessMode: mode})
	defer s.Close(ctx)

	cursor, err := s.Run(ctx, cypher, params)
	if err != nil {
		return Result{}, err
	}

	return drain(ctx, cursor)
}

// drain copies the cursor into plain records keyed by column name.
func drain(ctx context.Context, cursor neo4j.ResultWithContext) (Result, error) {
	var out Result
	for cursor.Next(ctx) {
		row := cursor.Record()
		rec := make(Record, len(row.Keys))
		for i, col := range row.Keys {
			rec[col] = row.Values[i]
		}
		out.Records = append(out.Records, rec)
	}
	if err := cursor.Err(); err != nil {
		return Result{}, err
	}

	return out, nil
}
