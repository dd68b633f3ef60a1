// SPDX-License-Identifier: MIT

package core_test

import (
	"strings"

	"github.com/shopspring/decimal"
)

// name is a minimal string identity used across core tests.
type name string

func (n name) Compare(o name) int { return strings.Compare(string(n), string(o)) }
func (n name) String() string     { return string(n) }

func w(s string) decimal.Decimal { return decimal.RequireFromString(s) }
