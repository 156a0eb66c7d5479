package graph

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
)

var (
	// ErrDuplicateNode is returned by [Graph.AddNode] when a node with the
	// same id already exists in the graph.
	ErrDuplicateNode = errors.New("duplicate node id")

	// ErrUnknownNode is returned by [Graph.AddEdge] when either endpoint id
	// has not been added to the graph.
	ErrUnknownNode = errors.New("unknown node")
)

// AnchorPrefix is prepended to a node id to form its anchor name.
const AnchorPrefix = "node"

// Node is a labeled vertex with its layout coordinates.
type Node struct {
	ID       int     // Unique identifier taken from the input
	RawLabel string  // Label text as it appeared in the input
	Label    string  // Label rendered for math mode
	X, Y     float64 // Coordinates as given by the layout tool (pre-scale)
}

// Anchor returns the name under which the node is referenced in the output,
// e.g. "node8" for id 8.
func (n Node) Anchor() string { return AnchorPrefix + strconv.Itoa(n.ID) }

// Edge is a directed connection between two nodes owned by the same Graph.
type Edge struct {
	Source *Node
	Target *Node
}

// BoundingBox is the drawing area declared in the input header.
type BoundingBox struct {
	X0, Y0, X1, Y1 float64
}

// Width returns the horizontal extent of the box.
func (b BoundingBox) Width() float64 { return b.X1 - b.X0 }

// Height returns the vertical extent of the box.
func (b BoundingBox) Height() float64 { return b.Y1 - b.Y0 }

// Graph is a directed graph of positioned nodes.
//
// The zero value is not usable - use New to create a Graph.
type Graph struct {
	nodes   map[int]*Node
	edges   []Edge
	bbox    BoundingBox
	hasBBox bool
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{nodes: make(map[int]*Node)}
}

// AddNode inserts a copy of n. Returns ErrDuplicateNode if a node with the
// same id is already present.
func (g *Graph) AddNode(n Node) error {
	if _, exists := g.nodes[n.ID]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateNode, n.ID)
	}
	g.nodes[n.ID] = &n
	return nil
}

// AddEdge inserts a directed edge from sourceID to targetID. Both endpoints
// must already exist; otherwise ErrUnknownNode is returned and the graph is
// left unchanged. Parallel edges are kept.
func (g *Graph) AddEdge(sourceID, targetID int) error {
	src, ok := g.nodes[sourceID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownNode, sourceID)
	}
	dst, ok := g.nodes[targetID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownNode, targetID)
	}
	g.edges = append(g.edges, Edge{Source: src, Target: dst})
	return nil
}

// Node returns the node with the given id and true, or nil and false.
func (g *Graph) Node(id int) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes sorted by ascending id.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.nodes))
	for _, id := range slices.Sorted(maps.Keys(g.nodes)) {
		nodes = append(nodes, g.nodes[id])
	}
	return nodes
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// SetBoundingBox records the drawing area declared by the input.
func (g *Graph) SetBoundingBox(b BoundingBox) {
	g.bbox = b
	g.hasBBox = true
}

// BoundingBox returns the recorded drawing area and whether one was set.
func (g *Graph) BoundingBox() (BoundingBox, bool) { return g.bbox, g.hasBBox }
