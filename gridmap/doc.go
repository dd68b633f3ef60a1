// SPDX-License-Identifier: MIT

// Package gridmap turns a raw adjacency description into a
// core.Graph keyed by position.Position.
//
// An Adjacency maps a coordinate string to its neighbours and the weight of
// the connection towards each of them:
//
//	{"A1": {"A2": 1, "B1": 1}, "A2": {"A1": 1}}
//
// Connections are created only in the recorded direction. Adjacency.Symmetric
// (or the WithSymmetric builder option) mirrors every connection for sources
// known to describe an undirected grid.
//
// Acquisition goes through a Source (HTTP endpoint, JSON file, fixed value,
// graph database). Builder.Load applies the fail-soft policy: a failed fetch
// is logged and yields an empty graph, while malformed content and context
// cancellation are reported to the caller.
//
// Errors:
//
//   - ErrFetch  – class of source failures (see FetchError).
//   - ErrLayout – invalid Uniform dimensions.
//   - position.ErrFormat / core.ErrValue propagate from Build.
package gridmap
