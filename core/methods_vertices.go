// SPDX-License-Identifier: MIT

package core

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// ID returns the vertex identity value.
func (v *Vertex[K]) ID() K { return v.id }

// ConnectTo records a connection from v to other with the given weight.
//
// Behavior:
//   - Idempotent per target: if a connection to other's identity already
//     exists the call is a no-op and the original weight is retained.
//   - Self-connections are accepted; they never shorten a route.
//
// Errors:
//   - ErrNilVertex:         other is nil.
//   - ErrNonPositiveWeight: weight ≤ 0.
//
// Complexity: O(d) where d is the current out-degree of v.
func (v *Vertex[K]) ConnectTo(other *Vertex[K], weight decimal.Decimal) error {
	if other == nil {
		return ErrNilVertex
	}
	conn, err := NewConnection(other.id, weight)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	for _, existing := range v.conns {
		if existing.Equal(conn) {
			return nil // first weight wins
		}
	}
	// Keep conns sorted so Connections() is a plain copy.
	i := sort.Search(len(v.conns), func(i int) bool { return v.conns[i].Compare(conn) > 0 })
	v.conns = append(v.conns, Connection[K]{})
	copy(v.conns[i+1:], v.conns[i:])
	v.conns[i] = conn

	return nil
}

// IsConnectedTo reports whether v has a connection towards other.
// A nil other is never connected.
func (v *Vertex[K]) IsConnectedTo(other *Vertex[K]) bool {
	if other == nil {
		return false
	}

	return v.HasConnection(other.id)
}

// HasConnection reports whether v has a connection towards id.
func (v *Vertex[K]) HasConnection(id K) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	for _, c := range v.conns {
		if c.CoversIdentity(id) {
			return true
		}
	}

	return false
}

// Connections returns a copy of the outgoing connections ordered by
// (weight, target).
func (v *Vertex[K]) Connections() []Connection[K] {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]Connection[K], len(v.conns))
	copy(out, v.conns)

	return out
}

// Degree returns the number of outgoing connections.
func (v *Vertex[K]) Degree() int {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return len(v.conns)
}

// disconnect drops the connection towards id, if any.
func (v *Vertex[K]) disconnect(id K) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, c := range v.conns {
		if c.CoversIdentity(id) {
			v.conns = append(v.conns[:i], v.conns[i+1:]...)
			return true
		}
	}

	return false
}

// String renders "(id: [t1, t2, ...])" listing connection targets in order.
func (v *Vertex[K]) String() string {
	conns := v.Connections()
	targets := make([]string, len(conns))
	for i, c := range conns {
		targets[i] = c.target.String()
	}

	return "(" + v.id.String() + ": [" + strings.Join(targets, ", ") + "])"
}
