// SPDX-License-Identifier: MIT

package route_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deliveryroute/gridmap"
	"github.com/katalvlaran/deliveryroute/position"
	"github.com/katalvlaran/deliveryroute/route"
)

var strategies = []route.Strategy{route.StrategyHeap, route.StrategyScan}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func pos(s string) position.Position { return position.MustParse(s) }

func path(ids ...string) []position.Position {
	out := make([]position.Position, len(ids))
	for i, id := range ids {
		out[i] = pos(id)
	}

	return out
}

// gridFromJSON decodes and builds an adjacency document.
func gridFromJSON(t *testing.T, doc string) *gridmap.Graph {
	t.Helper()
	var adj gridmap.Adjacency
	require.NoError(t, json.Unmarshal([]byte(doc), &adj))
	g, err := gridmap.Build(adj)
	require.NoError(t, err)

	return g
}
