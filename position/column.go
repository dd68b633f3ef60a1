// SPDX-License-Identifier: MIT

package position

import "fmt"

// alphabetLength is the number of Latin letters used by column names.
const alphabetLength = 26

// ColumnName returns the spreadsheet-style column name for a zero-based
// index: 0→"A", 25→"Z", 26→"AA", 701→"ZZ", 702→"AAA".
// Panics if idx < 0.
// Complexity: O(log₂₆ idx).
func ColumnName(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("position: column index must be >= 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/alphabetLength - 1 {
		runes = append(runes, rune('A'+(i%alphabetLength)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// ColumnIndex is the inverse of ColumnName. Letters are case-insensitive.
// Returns ErrColumn for an empty name or any non-letter.
func ColumnIndex(name string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: empty column name", ErrColumn)
	}
	index := 0
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		default:
			return 0, fmt.Errorf("%w: %q", ErrColumn, name)
		}
		index = index*alphabetLength + int(c-'A') + 1
	}

	return index - 1, nil
}

// All returns every valid position ordered by Compare (A1, A2, …, Z8).
func All() []Position {
	out := make([]Position, 0, alphabetLength*(MaxRow-MinRow+1))
	for c := rune(MinColumn); c <= MaxColumn; c++ {
		for r := MinRow; r <= MaxRow; r++ {
			out = append(out, Position{column: c, row: r})
		}
	}

	return out
}
