// Package dotfmt reads the positioned DOT files written by Graphviz
// (`dot -Tdot`) into a [graph.Graph].
//
// Only the fixed subset that Graphviz emits for a laid-out digraph is
// understood:
//
//	digraph G {
//		graph [rankdir=BT];
//		node [label="\N"];
//		graph [bb="0,0,2430,468"];
//		node1 [label=0, pos="1261,18", width="0.75", height="0.5"];
//		node8 [label="{1*|*,*2,*3}", pos="1035,90", width="1.6111", height="0.5"];
//		node1 -> node8 [pos="e,1075.6,77.075 1236.4,25.842 ..."];
//	}
//
// The first three lines are skipped and the fourth is read as the bounding
// box. Lines are split on space, '=' and tab. Node lines come first; the
// first line containing " -> " switches the reader to edge mode for the rest
// of the input. In edge mode, lines that are not edges are skipped unless
// [Options.Strict] is set.
//
// Lines ending in a backslash are joined with the following line before they
// are classified, which is how Graphviz wraps long attribute values.
package dotfmt
