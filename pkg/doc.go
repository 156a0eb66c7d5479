// Package pkg provides the libraries behind dot2pst.
//
// # Overview
//
// dot2pst reads a graph that Graphviz has already laid out (the output of
// dot -Tdot) and writes PSTricks macros that redraw it inside a LaTeX
// document. Each node becomes an \rput/\rnode pair at its scaled position and
// each edge an \ncLine between two node anchors.
//
// # Architecture
//
// The data flow through dot2pst:
//
//	positioned DOT file
//	         ↓
//	    [dotfmt] package (line-oriented reader)
//	         ↓
//	    [graph] package (nodes, edges, bounding box)
//	         ↓
//	    [render/pstricks] package (\rput and \ncLine macros)
//	         ↓
//	    .tex fragment
//
// [convert] wires these stages together with file handling, logging and
// stage hooks. [render/nodelink] and [io] provide previews of the parsed
// graph as SVG, PNG, DOT or JSON.
//
// # Quick Start
//
//	res, err := convert.Run(ctx, convert.Options{
//	    Input:  "lattice.dot",
//	    Output: "lattice.tex",
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d nodes, %d edges\n", res.Nodes, res.Edges)
//
// # Supporting Packages
//
// [config] loads TOML settings, [errors] defines the coded error type every
// package returns, [observability] carries per-run stage hooks, and
// [buildinfo] holds the version injected at build time.
//
// [dotfmt]: https://pkg.go.dev/github.com/matzehuels/dot2pst/pkg/dotfmt
// [graph]: https://pkg.go.dev/github.com/matzehuels/dot2pst/pkg/graph
// [render/pstricks]: https://pkg.go.dev/github.com/matzehuels/dot2pst/pkg/render/pstricks
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/dot2pst/pkg/render/nodelink
// [convert]: https://pkg.go.dev/github.com/matzehuels/dot2pst/pkg/convert
// [io]: https://pkg.go.dev/github.com/matzehuels/dot2pst/pkg/io
// [config]: https://pkg.go.dev/github.com/matzehuels/dot2pst/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/dot2pst/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/dot2pst/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/dot2pst/pkg/buildinfo
package pkg
