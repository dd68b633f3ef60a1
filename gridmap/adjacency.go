// SPDX-License-Identifier: MIT

package gridmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Adjacency maps a coordinate string to neighbour coordinate strings and
// connection weights.
type Adjacency map[string]map[string]decimal.Decimal

// UnmarshalJSON decodes an adjacency object.
//
// Unlike the default map decoding, a key repeated at the top level does not
// replace the earlier entry: neighbour maps are merged, and for a neighbour
// listed more than once the first weight is kept. A JSON null decodes to a
// nil Adjacency.
func (a *Adjacency) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*a = nil
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	out := make(Adjacency)
	err := decodeObject(dec, func(key string) error {
		row, ok := out[key]
		if !ok {
			row = make(map[string]decimal.Decimal)
			out[key] = row
		}

		return decodeNeighbours(dec, key, row)
	})
	if err != nil {
		return err
	}
	*a = out

	return nil
}

// decodeNeighbours reads one neighbour object (or null) into row.
func decodeNeighbours(dec *json.Decoder, key string, row map[string]decimal.Decimal) error {
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("gridmap: neighbours of %q: %w", key, err)
	}
	if bytes.Equal(raw, []byte("null")) {
		return nil
	}
	inner := json.NewDecoder(bytes.NewReader(raw))

	return decodeObject(inner, func(neighbour string) error {
		var weight decimal.Decimal
		if err := inner.Decode(&weight); err != nil {
			return fmt.Errorf("gridmap: weight %q -> %q: %w", key, neighbour, err)
		}
		if _, seen := row[neighbour]; !seen {
			row[neighbour] = weight // first weight wins
		}

		return nil
	})
}

// decodeObject walks one JSON object, calling fn for each key with the
// decoder positioned at the value; fn must consume the value.
func decodeObject(dec *json.Decoder, fn func(key string) error) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("gridmap: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("gridmap: expected object, got %v", tok)
	}
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return fmt.Errorf("gridmap: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("gridmap: expected key, got %v", tok)
		}
		if err = fn(key); err != nil {
			return err
		}
	}
	if _, err = dec.Token(); err != nil { // closing '}'
		return fmt.Errorf("gridmap: %w", err)
	}

	return nil
}

// Keys returns the top-level coordinates in ascending order.
func (a Adjacency) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Clone returns a deep copy.
func (a Adjacency) Clone() Adjacency {
	if a == nil {
		return nil
	}
	out := make(Adjacency, len(a))
	for k, row := range a {
		cp := make(map[string]decimal.Decimal, len(row))
		for n, w := range row {
			cp[n] = w
		}
		out[k] = cp
	}

	return out
}

// Symmetric returns a copy in which every recorded connection a→b also
// exists as b→a. An existing reverse connection keeps its own weight.
func (a Adjacency) Symmetric() Adjacency {
	out := a.Clone()
	if out == nil {
		return nil
	}
	for _, from := range a.Keys() {
		row := a[from]
		neighbours := make([]string, 0, len(row))
		for n := range row {
			neighbours = append(neighbours, n)
		}
		sort.Strings(neighbours)
		for _, to := range neighbours {
			back, ok := out[to]
			if !ok {
				back = make(map[string]decimal.Decimal)
				out[to] = back
			}
			if _, exists := back[from]; !exists {
				back[from] = row[to]
			}
		}
	}

	return out
}
