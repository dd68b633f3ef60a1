// SPDX-License-Identifier: MIT

package route

import (
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/deliveryroute/core"
)

// arc is an outgoing connection resolved to an arena index.
type arc struct {
	to     int
	weight decimal.Decimal
}

// arena is a read-only snapshot of a graph addressed by dense indices.
// Index order equals identity order, so comparing indices compares
// identities.
type arena[K core.Key[K]] struct {
	ids   []K
	index map[K]int
	out   [][]arc
}

// snapshot copies g into an arena. Connections whose target is not a vertex
// of g are dropped.
// Complexity: O(V log V + E).
func snapshot[K core.Key[K]](g *core.Graph[K]) *arena[K] {
	vertices := g.All() // sorted by identity
	a := &arena[K]{
		ids:   make([]K, len(vertices)),
		index: make(map[K]int, len(vertices)),
		out:   make([][]arc, len(vertices)),
	}
	for i, v := range vertices {
		a.ids[i] = v.ID()
		a.index[v.ID()] = i
	}
	for i, v := range vertices {
		conns := v.Connections()
		arcs := make([]arc, 0, len(conns))
		for _, c := range conns {
			j, ok := a.index[c.Target()]
			if !ok {
				continue
			}
			arcs = append(arcs, arc{to: j, weight: c.Weight()})
		}
		a.out[i] = arcs
	}

	return a
}

// frontier returns every index reachable from start, start first, in
// breadth-first order. Each index appears once.
// Complexity: O(V + E).
func (a *arena[K]) frontier(start int) []int {
	seen := make([]bool, len(a.ids))
	seen[start] = true
	order := []int{start}
	for head := 0; head < len(order); head++ {
		for _, e := range a.out[order[head]] {
			if !seen[e.to] {
				seen[e.to] = true
				order = append(order, e.to)
			}
		}
	}

	return order
}
