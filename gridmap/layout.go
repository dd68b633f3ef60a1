// SPDX-License-Identifier: MIT

package gridmap

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/deliveryroute/core"
	"github.com/katalvlaran/deliveryroute/position"
)

// Connectivity selects which neighbouring cells are linked by Uniform.
type Connectivity int

const (
	// Conn4 links orthogonal neighbours (N, E, S, W).
	Conn4 Connectivity = iota
	// Conn8 links orthogonal and diagonal neighbours.
	Conn8
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Layout is a rectangular block of cells starting at A1.
// x is the column index (0 = 'A'); y is the zero-based row offset.
type Layout struct {
	Cols, Rows int
	Conn       Connectivity
}

// NewLayout validates the dimensions against the coordinate bounds.
func NewLayout(cols, rows int, conn Connectivity) (Layout, error) {
	maxCols := int(position.MaxColumn-position.MinColumn) + 1
	maxRows := position.MaxRow - position.MinRow + 1
	if cols < 1 || cols > maxCols || rows < 1 || rows > maxRows {
		return Layout{}, fmt.Errorf("%w: %dx%d outside 1..%d x 1..%d", ErrLayout, cols, rows, maxCols, maxRows)
	}
	if conn != Conn4 && conn != Conn8 {
		return Layout{}, fmt.Errorf("%w: unknown connectivity %d", ErrLayout, conn)
	}

	return Layout{Cols: cols, Rows: rows, Conn: conn}, nil
}

// InBounds reports whether (x,y) lies within the layout.
// Complexity: O(1).
func (l Layout) InBounds(x, y int) bool {
	return x >= 0 && x < l.Cols && y >= 0 && y < l.Rows
}

// NeighborOffsets returns the (dx,dy) offsets for the layout connectivity.
func (l Layout) NeighborOffsets() [][2]int {
	if l.Conn == Conn8 {
		return offsets8
	}

	return offsets4
}

// Position maps (x,y) to its coordinate.
func (l Layout) Position(x, y int) position.Position {
	p, err := position.New(position.MinColumn+rune(x), position.MinRow+y)
	if err != nil {
		panic(fmt.Sprintf("gridmap: cell (%d,%d) outside layout: %v", x, y, err))
	}

	return p
}

// Adjacency links every in-bounds neighbour pair in both directions with
// the given weight.
func (l Layout) Adjacency(weight decimal.Decimal) (Adjacency, error) {
	if !weight.IsPositive() {
		return nil, fmt.Errorf("gridmap: layout weight %s: %w", weight, core.ErrNonPositiveWeight)
	}
	adj := make(Adjacency, l.Cols*l.Rows)
	for y := 0; y < l.Rows; y++ {
		for x := 0; x < l.Cols; x++ {
			row := make(map[string]decimal.Decimal, 8)
			for _, d := range l.NeighborOffsets() {
				nx, ny := x+d[0], y+d[1]
				if !l.InBounds(nx, ny) {
					continue
				}
				row[l.Position(nx, ny).String()] = weight
			}
			adj[l.Position(x, y).String()] = row
		}
	}

	return adj, nil
}

// Uniform returns a cols×rows adjacency with every neighbour pair linked in
// both directions at the same weight.
// Complexity: O(cols×rows×d).
func Uniform(cols, rows int, weight decimal.Decimal, conn Connectivity) (Adjacency, error) {
	l, err := NewLayout(cols, rows, conn)
	if err != nil {
		return nil, err
	}

	return l.Adjacency(weight)
}
