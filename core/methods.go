// SPDX-License-Identifier: MIT

package core

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Add inserts v if no vertex with the same identity is present.
// Returns false if the identity is already known or v is nil.
// Complexity: O(1) amortized.
func (g *Graph[K]) Add(v *Vertex[K]) bool {
	if v == nil {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.vertices[v.id]; exists {
		return false
	}
	g.vertices[v.id] = v

	return true
}

// Ensure returns the vertex for id, creating and inserting it when absent.
// created reports whether a new vertex was inserted.
// Complexity: O(1) amortized.
func (g *Graph[K]) Ensure(id K) (v *Vertex[K], created bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if existing, ok := g.vertices[id]; ok {
		return existing, false
	}
	v = NewVertex(id)
	g.vertices[id] = v

	return v, true
}

// Connect is a convenience for Ensure(from).ConnectTo(Ensure(to), weight).
// Vertices are only created when the weight is valid.
func (g *Graph[K]) Connect(from, to K, weight decimal.Decimal) error {
	if !weight.IsPositive() {
		_, err := NewConnection(to, weight)
		return err
	}
	src, _ := g.Ensure(from)
	dst, _ := g.Ensure(to)

	return src.ConnectTo(dst, weight)
}

// Remove deletes the vertex with v's identity and drops every connection
// that targets it from the remaining vertices.
// Returns false if v is nil or its identity is unknown.
// Complexity: O(V·d).
func (g *Graph[K]) Remove(v *Vertex[K]) bool {
	if v == nil {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.vertices[v.id]; !exists {
		return false
	}
	delete(g.vertices, v.id)
	for _, other := range g.vertices {
		other.disconnect(v.id)
	}

	return true
}

// Find returns the vertex with the given identity.
// Complexity: O(1).
func (g *Graph[K]) Find(id K) (*Vertex[K], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]

	return v, ok
}

// Has reports whether id is known.
func (g *Graph[K]) Has(id K) bool {
	_, ok := g.Find(id)
	return ok
}

// All returns every vertex ordered by identity.
// Complexity: O(V log V).
func (g *Graph[K]) All() []*Vertex[K] {
	g.mu.RLock()
	out := make([]*Vertex[K], 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].id.Compare(out[j].id) < 0 })

	return out
}

// IDs returns every identity ordered by Compare.
func (g *Graph[K]) IDs() []K {
	all := g.All()
	ids := make([]K, len(all))
	for i, v := range all {
		ids[i] = v.id
	}

	return ids
}

// Len returns the number of vertices.
func (g *Graph[K]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// IsEmpty reports whether the graph has no vertices.
func (g *Graph[K]) IsEmpty() bool { return g.Len() == 0 }

// ConnectionCount returns the total number of outgoing connections.
// Complexity: O(V).
func (g *Graph[K]) ConnectionCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, v := range g.vertices {
		n += v.Degree()
	}

	return n
}

// String renders the sorted identities, e.g. "[A1, A2, B1]".
func (g *Graph[K]) String() string {
	ids := g.IDs()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
