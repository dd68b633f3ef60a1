// SPDX-License-Identifier: MIT

// Package route computes the cheapest route between two vertices of a
// core.Graph with strictly positive decimal weights.
//
// Calculate works in four phases:
//
//  1. Validation – graph present and non-empty, both endpoints known,
//     endpoints distinct.
//  2. Snapshot  – vertices are copied into an index arena (sorted by
//     identity) together with their outgoing (index, weight) pairs.
//     Connections towards identities outside the graph are skipped.
//  3. Frontier  – breadth-first walk from the start collects every
//     reachable index exactly once. A destination outside the frontier is
//     reported as ErrNoRoute without relaxation.
//  4. Relaxation – the working vertex with minimum (distance, identity) is
//     settled; outgoing connections improve a neighbour only on a strictly
//     smaller tentative distance. The loop ends when the destination is
//     settled; the path is rebuilt from the predecessor table.
//
// All search state (distances, predecessors, settled flags) lives in
// per-call tables, so any number of calculations may share one graph as
// long as nobody mutates it meanwhile.
//
// Strategies:
//
//   - StrategyHeap – container/heap with lazy decrease-key.
//     Time O((V + E) log V), space O(V + E).
//   - StrategyScan – linear scan of the working set per step.
//     Time O(V² + E), space O(V).
//
// Both settle vertices in the same (distance, identity) order and therefore
// return identical routes.
//
// Errors:
//
//   - ErrValidation (class): ErrNilGraph, ErrEmptyGraph, ErrUnknownStart,
//     ErrUnknownDestination, ErrSameEndpoints, ErrUnknownStrategy.
//   - ErrNoRoute: destination unreachable (or beyond WithMaxDistance).
//   - ctx.Err(): the calculation was cancelled.
package route
