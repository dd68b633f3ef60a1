// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// Sentinel errors for core graph operations.
var (
	// ErrValue is the class of invalid-argument errors raised by this package.
	ErrValue = errors.New("core: invalid value")

	// ErrNonPositiveWeight indicates a connection weight that is zero or negative.
	ErrNonPositiveWeight = fmt.Errorf("%w: weight must be positive", ErrValue)

	// ErrNilVertex indicates a nil *Vertex where one is required.
	ErrNilVertex = fmt.Errorf("%w: vertex is nil", ErrValue)
)

// Key is the constraint satisfied by vertex identity values.
//
// Compare must define a total order (negative, zero, positive) consistent
// with ==; it drives deterministic enumeration and tie-breaking.
type Key[K any] interface {
	comparable
	Compare(other K) int
	String() string
}

// Connection is an immutable, directed, weighted edge descriptor towards the
// vertex identified by target.
type Connection[K Key[K]] struct {
	target K
	weight decimal.Decimal
}

// Vertex is a graph node: an identity value and its outgoing connections,
// kept unique by target and ordered by Connection.Compare.
type Vertex[K Key[K]] struct {
	mu    sync.RWMutex // guards conns
	id    K
	conns []Connection[K]
}

// Graph is an in-memory set of vertices unique by identity.
type Graph[K Key[K]] struct {
	mu       sync.RWMutex // guards vertices
	vertices map[K]*Vertex[K]
}

// GraphOption configures a Graph before first use.
type GraphOption[K Key[K]] func(g *Graph[K])

// WithCapacity pre-sizes the vertex catalog.
func WithCapacity[K Key[K]](n int) GraphOption[K] {
	return func(g *Graph[K]) {
		if n > 0 {
			g.vertices = make(map[K]*Vertex[K], n)
		}
	}
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph[K Key[K]](opts ...GraphOption[K]) *Graph[K] {
	g := &Graph[K]{vertices: make(map[K]*Vertex[K])}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewVertex creates a detached vertex with no connections.
func NewVertex[K Key[K]](id K) *Vertex[K] {
	return &Vertex[K]{id: id}
}
