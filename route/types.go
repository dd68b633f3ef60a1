// SPDX-License-Identifier: MIT

package route

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/deliveryroute/core"
)

// Sentinel errors.
var (
	// ErrValidation is the class of invalid-request errors.
	ErrValidation = errors.New("route: invalid request")

	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = fmt.Errorf("%w: graph is nil", ErrValidation)

	// ErrEmptyGraph indicates a graph with no vertices.
	ErrEmptyGraph = fmt.Errorf("%w: graph is empty", ErrValidation)

	// ErrUnknownStart indicates the start identity is not in the graph.
	ErrUnknownStart = fmt.Errorf("%w: start not found", ErrValidation)

	// ErrUnknownDestination indicates the destination identity is not in the graph.
	ErrUnknownDestination = fmt.Errorf("%w: destination not found", ErrValidation)

	// ErrSameEndpoints indicates start equals destination.
	ErrSameEndpoints = fmt.Errorf("%w: start equals destination", ErrValidation)

	// ErrUnknownStrategy indicates a strategy name ParseStrategy cannot map.
	ErrUnknownStrategy = fmt.Errorf("%w: unknown strategy", ErrValidation)

	// ErrNoRoute indicates the destination cannot be reached from the start.
	ErrNoRoute = errors.New("route: no route")
)

// Strategy selects the working-set implementation used during relaxation.
type Strategy int

const (
	// StrategyHeap uses a binary heap with lazy decrease-key.
	StrategyHeap Strategy = iota
	// StrategyScan scans the whole working set for its minimum.
	StrategyScan
)

func (s Strategy) String() string {
	switch s {
	case StrategyHeap:
		return "heap"
	case StrategyScan:
		return "scan"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "heap" or "scan" (case-insensitive) to a Strategy.
// An empty name selects StrategyHeap.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "heap":
		return StrategyHeap, nil
	case "scan":
		return StrategyScan, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Hook observes every settled vertex with its final distance.
type Hook func(id string, dist decimal.Decimal)

// Options holds calculation settings. Build it with DefaultOptions and Option
// functions.
type Options struct {
	strategy    Strategy
	maxDistance decimal.Decimal
	bounded     bool // maxDistance applies
	onSettle    Hook
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns heap strategy, no distance bound, no hook.
func DefaultOptions() Options {
	return Options{strategy: StrategyHeap}
}

// WithStrategy selects the working-set strategy.
// Panics on an unknown Strategy value.
func WithStrategy(s Strategy) Option {
	if s != StrategyHeap && s != StrategyScan {
		panic(fmt.Sprintf("route: WithStrategy(%d): unknown strategy", int(s)))
	}

	return func(o *Options) { o.strategy = s }
}

// WithMaxDistance stops exploration once the cheapest unsettled distance
// exceeds limit; a destination farther away yields ErrNoRoute.
// Panics if limit is negative.
func WithMaxDistance(limit decimal.Decimal) Option {
	if limit.IsNegative() {
		panic(fmt.Sprintf("route: WithMaxDistance(%s): must be non-negative", limit))
	}

	return func(o *Options) {
		o.maxDistance = limit
		o.bounded = true
	}
}

// WithOnSettle registers a hook invoked once per settled vertex, in
// settlement order.
func WithOnSettle(fn Hook) Option {
	return func(o *Options) { o.onSettle = fn }
}

// Route is a computed path from start to destination and its total cost.
type Route[K core.Key[K]] struct {
	Path     []K             // start first, destination last
	Distance decimal.Decimal // exact sum of traversed weights
}

// Hops returns the number of connections traversed.
func (r Route[K]) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// String renders "A1 -> A2 -> A3 (4)".
func (r Route[K]) String() string {
	parts := make([]string, len(r.Path))
	for i, id := range r.Path {
		parts[i] = id.String()
	}

	return strings.Join(parts, " -> ") + " (" + r.Distance.String() + ")"
}
