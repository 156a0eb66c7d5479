package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/dot2pst/pkg/graph"
)

// ReadJSON decodes a JSON graph from r. render, when non-nil, produces each
// node's Label from its raw label.
//
// Errors name the node or edge that could not be added and wrap
// [graph.ErrDuplicateNode] or [graph.ErrUnknownNode].
func ReadJSON(r io.Reader, render func(string) string) (*graph.Graph, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g := graph.New()
	if data.BBox != nil {
		g.SetBoundingBox(graph.BoundingBox{X0: data.BBox.X0, Y0: data.BBox.Y0, X1: data.BBox.X1, Y1: data.BBox.Y1})
	}
	for _, n := range data.Nodes {
		label := n.Label
		if render != nil {
			label = render(n.Label)
		}
		if err := g.AddNode(graph.Node{ID: n.ID, RawLabel: n.Label, Label: label, X: n.X, Y: n.Y}); err != nil {
			return nil, fmt.Errorf("node %d: %w", n.ID, err)
		}
	}
	for _, e := range data.Edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("edge %d->%d: %w", e.From, e.To, err)
		}
	}
	return g, nil
}
