// SPDX-License-Identifier: MIT

// Package core defines the delivery graph model: Connection, Vertex and
// Graph, generic over an ordered identity key.
//
// Model:
//
//   - Connection – immutable, directed, strictly positive fixed-point weight
//     towards a target identity. Equal iff targets are equal; ordered by
//     (weight, target).
//   - Vertex     – identity value plus its outgoing connections, unique by
//     target. ConnectTo is idempotent: the first recorded weight wins.
//   - Graph      – set of vertices unique by identity with insert-if-absent,
//     find-or-create, remove, lookup and sorted enumeration.
//
// Connections store the target identity value, never a *Vertex, so the graph
// has no pointer cycles; algorithms resolve targets through Graph.Find.
// Vertex carries no path-search state (best distance, predecessor); route
// keeps it in per-call tables.
//
// No symmetric edges are created implicitly: A→B never implies B→A.
//
// Concurrency:
//
//   - Graph guards its vertex catalog with a sync.RWMutex.
//   - Each Vertex guards its connection list with its own sync.RWMutex.
//   - Lock order is Graph → Vertex; Vertex methods never take the Graph lock.
//
// Keys:
//
// Any comparable type with Compare and String methods may be used as an
// identity (see Key). position.Position is the production key.
//
// Errors:
//
//   - ErrValue             – class of invalid-argument errors.
//   - ErrNonPositiveWeight – weight ≤ 0.
//   - ErrNilVertex         – required *Vertex is nil.
package core
