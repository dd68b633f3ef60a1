// SPDX-License-Identifier: MIT

package gridmap

import (
	"errors"
	"fmt"
)

var (
	// ErrFetch is the class of adjacency acquisition failures.
	ErrFetch = errors.New("gridmap: fetch failed")

	// ErrPayload is the class of adjacency documents a Source received but
	// could not decode. It is never downgraded to an empty grid.
	ErrPayload = errors.New("gridmap: malformed adjacency")

	// ErrLayout indicates invalid dimensions passed to Uniform.
	ErrLayout = errors.New("gridmap: invalid layout")
)

// FetchError describes a Source that could not deliver an adjacency.
type FetchError struct {
	Source string // human-readable source description
	Err    error  // underlying cause
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("gridmap: fetch from %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error { return e.Err }

// Is reports ErrFetch as a match so callers can branch on the class.
func (e *FetchError) Is(target error) bool { return target == ErrFetch }
