// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"fmt"

	"github.com/katalvlaran/deliveryroute/internal/graphdb"
)

// Readiness reports whether the grid source can currently serve adjacency.
type Readiness interface {
	Ready(ctx context.Context) error
}

// GridStoreReadiness checks the Neo4j store backing the grid. Static, file
// and HTTP sources have no store and leave Store nil, which is always ready.
type GridStoreReadiness struct {
	Store graphdb.Client
}

// Ready implements Readiness.
func (r GridStoreReadiness) Ready(ctx context.Context) error {
	if r.Store == nil {
		return nil
	}
	if err := r.Store.VerifyConnectivity(ctx); err != nil {
		return fmt.Errorf("grid store unreachable: %w", err)
	}

	return nil
}
