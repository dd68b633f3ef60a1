// SPDX-License-Identifier: MIT

package gridmap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/katalvlaran/deliveryroute/core"
	"github.com/katalvlaran/deliveryroute/position"
)

// Graph is the concrete graph type produced by this package.
type Graph = core.Graph[position.Position]

// Build converts adj into a graph.
//
// Keys and neighbours are visited in ascending string order so the result
// (including which weight survives a duplicate) never depends on map
// iteration. Every key becomes a vertex even without neighbours; every
// neighbour becomes a vertex even when it never appears as a key.
// Connections follow the recorded direction only.
//
// Errors (wrapped with the offending coordinate):
//   - position.ErrFormat: a key or neighbour is not a valid coordinate.
//   - core.ErrValue:      a weight is zero or negative.
//
// Complexity: O(E log E) for E recorded connections.
func Build(adj Adjacency) (*Graph, error) {
	g := core.NewGraph(core.WithCapacity[position.Position](len(adj)))
	for _, key := range adj.Keys() {
		from, err := position.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("gridmap: key %q: %w", key, err)
		}
		src, _ := g.Ensure(from)

		row := adj[key]
		neighbours := make([]string, 0, len(row))
		for n := range row {
			neighbours = append(neighbours, n)
		}
		sort.Strings(neighbours)
		for _, n := range neighbours {
			to, err := position.Parse(n)
			if err != nil {
				return nil, fmt.Errorf("gridmap: neighbour %q of %s: %w", n, from, err)
			}
			dst, _ := g.Ensure(to)
			if err = src.ConnectTo(dst, row[n]); err != nil {
				return nil, fmt.Errorf("gridmap: %s -> %s: %w", from, to, err)
			}
		}
	}

	return g, nil
}

// Builder acquires an adjacency from a Source and builds a graph from it.
// A Builder is safe for concurrent use; each Load builds a fresh graph.
type Builder struct {
	src       Source
	logger    *slog.Logger
	symmetric bool
}

// Option configures a Builder.
type Option func(b *Builder)

// WithLogger sets the logger used to report soft failures.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("gridmap: WithLogger(nil)")
	}

	return func(b *Builder) { b.logger = l }
}

// WithSymmetric mirrors every fetched connection before building.
func WithSymmetric() Option {
	return func(b *Builder) { b.symmetric = true }
}

// NewBuilder returns a Builder reading from src. A nil src behaves as an
// empty StaticSource.
func NewBuilder(src Source, opts ...Option) *Builder {
	if src == nil {
		src = StaticSource(nil)
	}
	b := &Builder{
		src:    src,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Acquire fetches the adjacency. Transport failures are returned as
// *FetchError; ErrPayload and context cancellation pass through unchanged.
func (b *Builder) Acquire(ctx context.Context) (Adjacency, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	adj, err := b.src.Fetch(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errors.Is(err, ErrPayload) {
			return nil, err
		}
		var fe *FetchError
		if errors.As(err, &fe) {
			return nil, fe
		}

		return nil, &FetchError{Source: describe(b.src), Err: err}
	}
	if b.symmetric {
		adj = adj.Symmetric()
	}

	return adj, nil
}

// Load acquires and builds a graph.
//
// A *FetchError is logged at error level and yields an empty graph with a
// nil error, so callers see "no vertices" rather than a transport failure.
// ErrPayload, context cancellation and Build errors are returned unchanged.
func (b *Builder) Load(ctx context.Context) (*Graph, error) {
	adj, err := b.Acquire(ctx)
	if err != nil {
		var fe *FetchError
		if !errors.As(err, &fe) {
			return nil, err
		}
		b.logger.ErrorContext(ctx, "adjacency fetch failed, using empty grid",
			"source", fe.Source, "error", fe.Err)
		adj = nil
	}
	g, err := Build(adj)
	if err != nil {
		return nil, err
	}
	b.logger.DebugContext(ctx, "grid loaded",
		"source", describe(b.src), "vertices", g.Len(), "connections", g.ConnectionCount())

	return g, nil
}

func describe(src Source) string {
	if s, ok := src.(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprintf("%T", src)
}
