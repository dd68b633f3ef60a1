// SPDX-License-Identifier: MIT

// Package deliveryroute computes the cheapest delivery route between two
// cells of a lettered grid (columns A–Z, rows 1–8).
//
// Data flows one way:
//
//	raw adjacency ──► gridmap ──► core.Graph ──► route ──► path + total distance
//
// Subpackages:
//
//	position/   immutable, ordered grid coordinates ("A1") and column helpers
//	core/       Connection, Vertex and Graph, generic over an ordered key
//	gridmap/    adjacency decoding, graph building, fail-soft sources
//	route/      validated shortest-route calculation (heap or scan strategy)
//
// Binaries:
//
//	cmd/deliveryroute  HTTP service (gin) configured from env, .env and HCL
//	cmd/routefind      one-shot CLI printing a single route
//
// Weights and distances are exact decimals (github.com/shopspring/decimal),
// so a route's distance is always the exact sum of its connection weights.
//
// Quick start:
//
//	var adj gridmap.Adjacency
//	_ = json.Unmarshal(data, &adj)
//	g, err := gridmap.Build(adj)
//	r, err := route.Calculate(ctx, g, position.MustParse("A1"), position.MustParse("G4"))
//	fmt.Println(r) // A1 -> A2 -> ... -> G4 (9)
package deliveryroute
