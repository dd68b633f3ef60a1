// SPDX-License-Identifier: MIT

// Package position defines Position, the immutable identifier of a delivery
// grid cell, together with the column-naming helpers used by grid layouts.
//
// A Position is a single uppercase column letter (A–Z) plus a row in the
// inclusive range [MinRow, MaxRow]. Its canonical text form is "{column}{row}",
// for example "A1" or "H8".
//
// Ordering:
//
//   - Positions are totally ordered: column first, then row.
//   - Compare is antisymmetric and transitive, so it is safe to use for
//     sorting and for deterministic tie-breaking in shortest-path search.
//
// Parsing:
//
//	p, err := position.Parse("G4")
//	if errors.Is(err, position.ErrFormat) {
//	    // malformed text, unknown column or row out of range
//	}
//
// Column helpers:
//
//	ColumnName(0)  == "A"
//	ColumnName(26) == "AA"
//	ColumnIndex("AB") == 27
//
// The helpers implement the extended spreadsheet-style column scheme. Parse
// itself is strict and accepts exactly one column letter.
//
// Errors:
//
//   - ErrFormat    – class sentinel for every malformed position.
//   - ErrSyntax    – text is not letters followed by digits.
//   - ErrColumn    – column is not a single uppercase letter A–Z.
//   - ErrRowRange  – row outside [MinRow, MaxRow].
package position
