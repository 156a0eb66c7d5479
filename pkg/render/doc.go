// Package render groups the output formats dot2pst can produce from a
// parsed graph.
//
//   - [pstricks]: PSTricks macros for inclusion in LaTeX documents
//   - [nodelink]: SVG/PNG preview of the graph through Graphviz
//
// [pstricks]: github.com/matzehuels/dot2pst/pkg/render/pstricks
// [nodelink]: github.com/matzehuels/dot2pst/pkg/render/nodelink
package render
