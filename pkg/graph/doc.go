// Package graph provides the in-memory model of a positioned directed graph.
//
// # Overview
//
// A [Graph] holds [Node] values keyed by an integer id together with the
// directed [Edge] values that connect them. Nodes carry the label and the
// pre-scale coordinates that the layout tool computed; this package performs
// no layout and no graph algorithms.
//
// # Basic Usage
//
// Create a graph with [New], insert nodes with [Graph.AddNode] and connect
// them by id with [Graph.AddEdge]:
//
//	g := graph.New()
//	_ = g.AddNode(graph.Node{ID: 1, Label: "0", X: 1261, Y: 18})
//	_ = g.AddNode(graph.Node{ID: 8, Label: "a", X: 1035, Y: 90})
//	_ = g.AddEdge(1, 8)
//
// # Ordering
//
// [Graph.Nodes] returns nodes sorted by id and [Graph.Edges] returns edges in
// insertion order. Both orders are deterministic, so two conversions of the
// same input produce byte-identical output.
//
// # Concurrency
//
// Graph is not safe for concurrent use. It is built once by a single parser
// and then only read.
package graph
