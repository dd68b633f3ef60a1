// SPDX-License-Identifier: MIT

package route

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/deliveryroute/core"
)

// Calculate returns the cheapest route from start to destination in g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph) and non-empty (ErrEmptyGraph).
//  2. g must contain start (ErrUnknownStart).
//  3. g must contain destination (ErrUnknownDestination).
//  4. start and destination must differ (ErrSameEndpoints).
//
// An unreachable destination yields ErrNoRoute; a partial route is never
// returned. Cancellation of ctx is observed before the frontier walk, on
// every relaxation step and before returning.
//
// Ties between equal tentative distances are broken by identity order, so
// the result is deterministic for a given graph.
//
// Complexity: see StrategyHeap and StrategyScan.
func Calculate[K core.Key[K]](ctx context.Context, g *core.Graph[K], start, destination K, opts ...Option) (Route[K], error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate.
	if g == nil {
		return Route[K]{}, ErrNilGraph
	}
	if g.IsEmpty() {
		return Route[K]{}, ErrEmptyGraph
	}
	if !g.Has(start) {
		return Route[K]{}, fmt.Errorf("%w: %s", ErrUnknownStart, start)
	}
	if !g.Has(destination) {
		return Route[K]{}, fmt.Errorf("%w: %s", ErrUnknownDestination, destination)
	}
	if start == destination {
		return Route[K]{}, fmt.Errorf("%w: %s", ErrSameEndpoints, start)
	}
	if err := ctx.Err(); err != nil {
		return Route[K]{}, err
	}

	// 3) Snapshot and frontier.
	a := snapshot(g)
	src, ok := a.index[start]
	if !ok {
		return Route[K]{}, fmt.Errorf("%w: %s", ErrUnknownStart, start) // removed concurrently
	}
	dst, ok := a.index[destination]
	if !ok {
		return Route[K]{}, fmt.Errorf("%w: %s", ErrUnknownDestination, destination)
	}
	frontier := a.frontier(src)
	if !contains(frontier, dst) {
		return Route[K]{}, fmt.Errorf("%w: %s -> %s", ErrNoRoute, start, destination)
	}

	// 4) Relax.
	r := newRunner(a, cfg, src, dst, frontier)
	if err := r.process(ctx); err != nil {
		return Route[K]{}, err
	}
	if !r.settled[dst] {
		return Route[K]{}, fmt.Errorf("%w: %s -> %s", ErrNoRoute, start, destination)
	}

	// 5) Reconstruct.
	out := Route[K]{Path: r.path(), Distance: r.dist[dst]}
	if err := ctx.Err(); err != nil {
		return Route[K]{}, err
	}

	return out, nil
}

// runner holds the mutable state of a single calculation.
type runner[K core.Key[K]] struct {
	a        *arena[K]
	cfg      Options
	src, dst int
	dist     []decimal.Decimal // tentative distance per index
	reached  []bool            // dist holds a finite value
	prev     []int             // predecessor index, -1 if none
	settled  []bool
	ws       workset
}

func newRunner[K core.Key[K]](a *arena[K], cfg Options, src, dst int, frontier []int) *runner[K] {
	n := len(a.ids)
	r := &runner[K]{
		a:       a,
		cfg:     cfg,
		src:     src,
		dst:     dst,
		dist:    make([]decimal.Decimal, n),
		reached: make([]bool, n),
		prev:    make([]int, n),
		settled: make([]bool, n),
	}
	for i := range r.prev {
		r.prev[i] = -1
	}
	if cfg.strategy == StrategyScan {
		r.ws = newScanSet(n, frontier)
	} else {
		r.ws = newHeapSet(n, len(frontier))
	}

	// Start is the only reached vertex at distance zero.
	r.dist[src] = decimal.Zero
	r.reached[src] = true
	r.ws.update(src, decimal.Zero)

	return r
}

// process settles vertices until the destination is settled, the working
// set is exhausted or the distance bound is exceeded.
func (r *runner[K]) process(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		u, d, ok := r.ws.next()
		if !ok {
			return nil
		}
		if r.cfg.bounded && d.GreaterThan(r.cfg.maxDistance) {
			return nil
		}
		r.settled[u] = true
		if r.cfg.onSettle != nil {
			r.cfg.onSettle(r.a.ids[u].String(), d)
		}
		if u == r.dst {
			return nil
		}
		r.relax(u)
	}
}

// relax improves neighbours of the settled vertex u on a strictly smaller
// tentative distance.
func (r *runner[K]) relax(u int) {
	for _, e := range r.a.out[u] {
		if r.settled[e.to] {
			continue
		}
		nd := r.dist[u].Add(e.weight)
		if r.reached[e.to] && !nd.LessThan(r.dist[e.to]) {
			continue
		}
		r.dist[e.to] = nd
		r.reached[e.to] = true
		r.prev[e.to] = u
		r.ws.update(e.to, nd)
	}
}

// path walks predecessors back from the destination and reverses them.
func (r *runner[K]) path() []K {
	var rev []int
	for at := r.dst; at >= 0; at = r.prev[at] {
		rev = append(rev, at)
	}
	out := make([]K, len(rev))
	for i, idx := range rev {
		out[len(rev)-1-i] = r.a.ids[idx]
	}

	return out
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}

	return false
}
