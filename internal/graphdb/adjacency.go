// SPDX-License-Identifier: MIT

package graphdb

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/deliveryroute/gridmap"
)

// Cypher statements for the (:Cell)-[:CONNECTS {weight}]->(:Cell) model.
const (
	readAdjacencyCypher = `MATCH (a:Cell)
OPTIONAL MATCH (a)-[r:CONNECTS]->(b:Cell)
RETURN a.name AS from, b.name AS to, r.weight AS weight
ORDER BY from, to`

	mergeCellsCypher = `UNWIND $cells AS name
MERGE (:Cell {name: name})`

	mergeConnectionsCypher = `UNWIND $edges AS e
MATCH (a:Cell {name: e.from}), (b:Cell {name: e.to})
MERGE (a)-[r:CONNECTS]->(b)
ON CREATE SET r.weight = e.weight`
)

// AdjacencySource reads the grid from the graph database. It implements
// gridmap.Source.
type AdjacencySource struct {
	client Client
}

// NewAdjacencySource wraps client.
func NewAdjacencySource(client Client) *AdjacencySource {
	return &AdjacencySource{client: client}
}

func (s *AdjacencySource) String() string { return "neo4j" }

// Fetch returns every cell with its outgoing connections. A cell without
// connections is present with an empty neighbour map. Records of the wrong
// shape are reported as gridmap.ErrPayload.
func (s *AdjacencySource) Fetch(ctx context.Context) (gridmap.Adjacency, error) {
	res, err := s.client.ExecuteRead(ctx, readAdjacencyCypher, nil)
	if err != nil {
		return nil, fmt.Errorf("read adjacency: %w", err)
	}

	adj := make(gridmap.Adjacency, len(res.Records))
	for i, rec := range res.Records {
		from, ok := rec["from"].(string)
		if !ok {
			return nil, fmt.Errorf("%w: record %d: cell name is %T, want string", gridmap.ErrPayload, i, rec["from"])
		}
		row, ok := adj[from]
		if !ok {
			row = make(map[string]decimal.Decimal)
			adj[from] = row
		}
		if rec["to"] == nil {
			continue // isolated cell
		}
		to, ok := rec["to"].(string)
		if !ok {
			return nil, fmt.Errorf("%w: record %d: neighbour name is %T, want string", gridmap.ErrPayload, i, rec["to"])
		}
		weight, err := toDecimal(rec["weight"])
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %s -> %s: %w", gridmap.ErrPayload, i, from, to, err)
		}
		if _, seen := row[to]; !seen {
			row[to] = weight
		}
	}

	return adj, nil
}

// Store merges adj into the database. Existing connections keep their
// weight.
func (s *AdjacencySource) Store(ctx context.Context, adj gridmap.Adjacency) error {
	cellSet := make(map[string]struct{}, len(adj))
	var edges []map[string]any
	for _, from := range adj.Keys() {
		cellSet[from] = struct{}{}
		row := adj[from]
		targets := make([]string, 0, len(row))
		for to := range row {
			targets = append(targets, to)
		}
		sort.Strings(targets)
		for _, to := range targets {
			cellSet[to] = struct{}{}
			edges = append(edges, map[string]any{"from": from, "to": to, "weight": row[to].String()})
		}
	}
	cells := make([]string, 0, len(cellSet))
	for c := range cellSet {
		cells = append(cells, c)
	}
	sort.Strings(cells)

	if _, err := s.client.ExecuteWrite(ctx, mergeCellsCypher, map[string]any{"cells": cells}); err != nil {
		return fmt.Errorf("merge cells: %w", err)
	}
	if len(edges) == 0 {
		return nil
	}
	if _, err := s.client.ExecuteWrite(ctx, mergeConnectionsCypher, map[string]any{"edges": edges}); err != nil {
		return fmt.Errorf("merge connections: %w", err)
	}

	return nil
}

// toDecimal converts a driver value (float64, int64 or numeric string).
func toDecimal(v any) (decimal.Decimal, error) {
	switch w := v.(type) {
	case float64:
		return decimal.NewFromFloat(w), nil
	case int64:
		return decimal.NewFromInt(w), nil
	case int:
		return decimal.NewFromInt(int64(w)), nil
	case string:
		return decimal.NewFromString(w)
	default:
		return decimal.Decimal{}, fmt.Errorf("weight is %T, want number", v)
	}
}
