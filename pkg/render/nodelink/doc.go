// Package nodelink previews a parsed graph as a node-link diagram.
//
// The preview shows exactly what the converter read: every node at the
// position recorded in the input, labeled with its raw label, and every edge
// as an arrow. It lets a user check a layout before typesetting it.
//
// # Usage
//
//	dot := nodelink.ToDOT(g)
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Positions are written in inches with a trailing "!" so that neato pins
// them instead of computing a new layout.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and
// PNG rendering; no Graphviz installation is required.
package nodelink
