// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// weightDisplayPlaces bounds the fractional digits shown by String.
const weightDisplayPlaces = 5

// NewConnection returns a connection towards target.
// Returns ErrNonPositiveWeight if weight ≤ 0.
func NewConnection[K Key[K]](target K, weight decimal.Decimal) (Connection[K], error) {
	if !weight.IsPositive() {
		return Connection[K]{}, fmt.Errorf("%w: %s -> %s", ErrNonPositiveWeight, weight, target)
	}

	return Connection[K]{target: target, weight: weight}, nil
}

// Target returns the identity of the vertex this connection leads to.
func (c Connection[K]) Target() K { return c.target }

// Weight returns the connection cost.
func (c Connection[K]) Weight() decimal.Decimal { return c.weight }

// Equal reports whether both connections lead to the same target.
// Weights are ignored.
func (c Connection[K]) Equal(other Connection[K]) bool { return c.target == other.target }

// Compare orders by weight ascending, then by target.
func (c Connection[K]) Compare(other Connection[K]) int {
	if r := c.weight.Cmp(other.weight); r != 0 {
		return r
	}

	return c.target.Compare(other.target)
}

// RelatesTo reports whether v is the target of this connection.
// A nil v relates to nothing.
func (c Connection[K]) RelatesTo(v *Vertex[K]) bool {
	return v != nil && v.id == c.target
}

// CoversIdentity reports whether id is the target of this connection.
func (c Connection[K]) CoversIdentity(id K) bool { return c.target == id }

// String renders "C(target | weight)" with at least one fractional digit.
func (c Connection[K]) String() string {
	return fmt.Sprintf("C(%s | %s)", c.target, formatWeight(c.weight))
}

func formatWeight(w decimal.Decimal) string {
	s := w.Round(weightDisplayPlaces).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
