// SPDX-License-Identifier: MIT

package route

import (
	"container/heap"

	"github.com/shopspring/decimal"
)

// workset yields the unsettled, reached vertex with minimum
// (distance, index). Index order equals identity order.
type workset interface {
	// update records that idx was reached or improved to dist.
	update(idx int, dist decimal.Decimal)
	// next removes and returns the minimum entry; ok is false when empty.
	next() (idx int, dist decimal.Decimal, ok bool)
}

// less orders by distance, then index.
func less(da decimal.Decimal, ia int, db decimal.Decimal, ib int) bool {
	if c := da.Cmp(db); c != 0 {
		return c < 0
	}

	return ia < ib
}

// nodeItem is a heap entry; stale entries are skipped on pop.
type nodeItem struct {
	idx  int
	dist decimal.Decimal
}

// nodePQ implements heap.Interface as a min-heap of nodeItem.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	return less(pq[i].dist, pq[i].idx, pq[j].dist, pq[j].idx)
}
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x any)   { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// heapSet is the lazy decrease-key working set.
type heapSet struct {
	pq      nodePQ
	current []decimal.Decimal // latest pushed distance per index
	live    []bool            // index has a non-stale entry
}

// newHeapSet sizes the tables for n arena vertices; hint pre-sizes the heap.
func newHeapSet(n, hint int) *heapSet {
	return &heapSet{
		pq:      make(nodePQ, 0, hint),
		current: make([]decimal.Decimal, n),
		live:    make([]bool, n),
	}
}

func (h *heapSet) update(idx int, dist decimal.Decimal) {
	h.current[idx] = dist
	h.live[idx] = true
	heap.Push(&h.pq, nodeItem{idx: idx, dist: dist})
}

func (h *heapSet) next() (int, decimal.Decimal, bool) {
	for h.pq.Len() > 0 {
		item := heap.Pop(&h.pq).(nodeItem)
		if !h.live[item.idx] || !item.dist.Equal(h.current[item.idx]) {
			continue // stale
		}
		h.live[item.idx] = false

		return item.idx, item.dist, true
	}

	return 0, decimal.Decimal{}, false
}

// scanSet holds the frontier and scans it linearly for the minimum.
type scanSet struct {
	members []int // frontier indices not yet removed
	dist    []decimal.Decimal
	reached []bool
}

func newScanSet(n int, frontier []int) *scanSet {
	members := make([]int, len(frontier))
	copy(members, frontier)

	return &scanSet{
		members: members,
		dist:    make([]decimal.Decimal, n),
		reached: make([]bool, n),
	}
}

func (s *scanSet) update(idx int, dist decimal.Decimal) {
	s.dist[idx] = dist
	s.reached[idx] = true
}

func (s *scanSet) next() (int, decimal.Decimal, bool) {
	best := -1
	for pos, idx := range s.members {
		if !s.reached[idx] {
			continue // unreached counts as infinite
		}
		if best < 0 || less(s.dist[idx], idx, s.dist[s.members[best]], s.members[best]) {
			best = pos
		}
	}
	if best < 0 {
		return 0, decimal.Decimal{}, false
	}
	idx := s.members[best]
	last := len(s.members) - 1
	s.members[best] = s.members[last]
	s.members = s.members[:last]

	return idx, s.dist[idx], true
}
