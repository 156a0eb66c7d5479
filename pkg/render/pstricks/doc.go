// Package pstricks writes a [graph.Graph] as PSTricks macros.
//
// Every node becomes a positioned, named math-mode label and every edge a
// line between two named nodes:
//
//	\rput(63.05,0.90){\rnode{node1}{$0$}}
//	\rput(51.75,4.50){\rnode{node8}{$\{1\StarGame\,\mid\,\StarGame\}$}}
//	\ncLine[nodesep=3pt]{-}{node1}{node8}
//
// Coordinates are multiplied by [Options.Scale] and printed with two
// decimals. The formatted node line then has all whitespace removed, so the
// padding produced by the "%5.2f" verb never reaches the output.
//
// Labels are not transformed here. [LabelRenderer] prepares them once, when
// the node is read.
package pstricks
