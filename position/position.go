// SPDX-License-Identifier: MIT

package position

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
)

// Row bounds of the delivery grid (inclusive).
const (
	MinRow = 1
	MaxRow = 8
)

// Column bounds: one uppercase Latin letter.
const (
	MinColumn = 'A'
	MaxColumn = 'Z'
)

// Sentinel errors for position parsing and construction.
var (
	// ErrFormat is the class of every malformed-position error.
	ErrFormat = errors.New("position: malformed position")

	// ErrSyntax indicates the text is not a run of letters followed by a run of digits.
	ErrSyntax = fmt.Errorf("%w: expected letters followed by digits", ErrFormat)

	// ErrColumn indicates the column is not exactly one uppercase letter A–Z.
	ErrColumn = fmt.Errorf("%w: column must be a single letter A-Z", ErrFormat)

	// ErrRowRange indicates the row lies outside [MinRow, MaxRow].
	ErrRowRange = fmt.Errorf("%w: row out of range", ErrFormat)
)

// Position identifies one grid cell. The zero value is not a valid position;
// use New or Parse.
type Position struct {
	column rune
	row    int
}

// New validates column and row and returns the corresponding Position.
func New(column rune, row int) (Position, error) {
	if column < MinColumn || column > MaxColumn {
		return Position{}, fmt.Errorf("%w: %q", ErrColumn, column)
	}
	if row < MinRow || row > MaxRow {
		return Position{}, fmt.Errorf("%w: %d not in [%d,%d]", ErrRowRange, row, MinRow, MaxRow)
	}

	return Position{column: column, row: row}, nil
}

// Parse splits text into its leading alphabetic run and trailing numeric run
// and validates both parts.
//
// Errors (all wrap ErrFormat):
//   - ErrSyntax:   empty text, no letters, no digits, or trailing garbage.
//   - ErrColumn:   more than one letter, or a lowercase letter.
//   - ErrRowRange: row outside [MinRow, MaxRow].
func Parse(text string) (Position, error) {
	letters, digits, ok := split(text)
	if !ok {
		return Position{}, fmt.Errorf("%w: %q", ErrSyntax, text)
	}
	if len(letters) != 1 {
		return Position{}, fmt.Errorf("%w: %q", ErrColumn, text)
	}
	row, err := strconv.Atoi(digits)
	if err != nil {
		// Only overflow reaches here; split guarantees ASCII digits.
		return Position{}, fmt.Errorf("%w: %q", ErrRowRange, text)
	}

	return New(rune(letters[0]), row)
}

// MustParse is like Parse but panics on error. Intended for fixtures and
// package-level literals.
func MustParse(text string) Position {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return p
}

// split returns the leading [A-Za-z]+ run and the trailing [0-9]+ run.
// ok is false unless text is exactly letters followed by digits.
func split(text string) (letters, digits string, ok bool) {
	i := 0
	for i < len(text) && isLetter(text[i]) {
		i++
	}
	if i == 0 || i == len(text) {
		return "", "", false
	}
	j := i
	for j < len(text) && text[j] >= '0' && text[j] <= '9' {
		j++
	}
	if j != len(text) {
		return "", "", false
	}

	return text[:i], text[i:], true
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// Column returns the column letter.
func (p Position) Column() rune { return p.column }

// Row returns the row number.
func (p Position) Row() int { return p.row }

// ColumnIndex returns the zero-based column index (A=0).
func (p Position) ColumnIndex() int { return int(p.column - MinColumn) }

// IsZero reports whether p is the zero value (never produced by New/Parse).
func (p Position) IsZero() bool { return p == Position{} }

// Compare orders positions by column, then by row.
// Returns -1, 0 or +1.
func (p Position) Compare(other Position) int {
	if c := cmp.Compare(p.column, other.column); c != 0 {
		return c
	}

	return cmp.Compare(p.row, other.row)
}

// String returns the canonical "{column}{row}" form.
func (p Position) String() string {
	if p.IsZero() {
		return ""
	}

	return string(p.column) + strconv.Itoa(p.row)
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) {
	if p.IsZero() {
		return nil, fmt.Errorf("%w: zero position", ErrFormat)
	}

	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Position) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed

	return nil
}
