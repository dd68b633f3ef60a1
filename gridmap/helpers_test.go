// SPDX-License-Identifier: MIT

package gridmap_test

import (
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/deliveryroute/position"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func pos(s string) position.Position { return position.MustParse(s) }
