package pstricks

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/matzehuels/dot2pst/pkg/graph"
)

const (
	// DefaultScale converts Graphviz points to the output unit.
	DefaultScale = 0.05

	// DefaultNodeSep is the gap between a connector and the node it touches.
	DefaultNodeSep = "3pt"

	// DefaultArrows draws connectors as plain segments.
	DefaultArrows = "-"
)

const (
	rputFormat   = `\rput(%5.2f,%5.2f){\rnode{%s}{$%s$}}`
	ncLineFormat = `\ncLine[nodesep=%s]{%s}{%s}{%s}`
)

// Options configures macro output.
type Options struct {
	Scale   float64 // multiplier applied to both coordinates
	NodeSep string  // nodesep parameter of \ncLine
	Arrows  string  // arrow specification of \ncLine, e.g. "-" or "->"
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{Scale: DefaultScale, NodeSep: DefaultNodeSep, Arrows: DefaultArrows}
}

// withDefaults fills unset fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Scale == 0 {
		o.Scale = d.Scale
	}
	if o.NodeSep == "" {
		o.NodeSep = d.NodeSep
	}
	if o.Arrows == "" {
		o.Arrows = d.Arrows
	}
	return o
}

// Write emits one \rput line per node, in id order, followed by one
// \ncLine line per edge, in insertion order.
func Write(w io.Writer, g *graph.Graph, opts Options) error {
	opts = opts.withDefaults()
	bw := bufio.NewWriter(w)

	for _, n := range g.Nodes() {
		if _, err := fmt.Fprintln(bw, FormatNode(n, opts.Scale)); err != nil {
			return fmt.Errorf("write node %d: %w", n.ID, err)
		}
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintln(bw, FormatEdge(e, opts)); err != nil {
			return fmt.Errorf("write edge %d -> %d: %w", e.Source.ID, e.Target.ID, err)
		}
	}
	return bw.Flush()
}

// FormatNode returns the \rput command placing n's label at its scaled
// position.
func FormatNode(n *graph.Node, scale float64) string {
	line := fmt.Sprintf(rputFormat, n.X*scale, n.Y*scale, n.Anchor(), n.Label)
	return stripSpace(line)
}

// FormatEdge returns the \ncLine command connecting e's endpoints. The
// arrow specification comes from opts, not from the edge direction.
func FormatEdge(e graph.Edge, opts Options) string {
	opts = opts.withDefaults()
	return fmt.Sprintf(ncLineFormat, opts.NodeSep, opts.Arrows, e.Source.Anchor(), e.Target.Anchor())
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
