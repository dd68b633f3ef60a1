// SPDX-License-Identifier: MIT

package gridmap

import "context"

// Source delivers a raw adjacency description.
// Implementations must honour ctx for any blocking work.
type Source interface {
	Fetch(ctx context.Context) (Adjacency, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (Adjacency, error)

// Fetch calls f(ctx).
func (f SourceFunc) Fetch(ctx context.Context) (Adjacency, error) { return f(ctx) }

// StaticSource always returns a copy of the same adjacency.
type StaticSource Adjacency

// Fetch returns a deep copy of s.
func (s StaticSource) Fetch(context.Context) (Adjacency, error) {
	return Adjacency(s).Clone(), nil
}

func (s StaticSource) String() string { return "static" }
