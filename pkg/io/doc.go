// Package io provides JSON import and export for positioned graphs.
//
// The format mirrors what the DOT reader extracts, so a graph can be handed
// to other tools or inspected without re-running Graphviz:
//
//	{
//	  "bbox": {"x0": 0, "y0": 0, "x1": 2430, "y1": 468},
//	  "nodes": [
//	    {"id": 1, "label": "0", "x": 1261, "y": 18},
//	    {"id": 8, "label": "{1*|*,*2,*3}", "x": 1035, "y": 90}
//	  ],
//	  "edges": [
//	    {"from": 1, "to": 8}
//	  ]
//	}
//
// Labels are the raw input text. Nodes are written in ascending id order and
// edges in input order. "bbox" is omitted when the graph has none.
//
// [ReadJSON] rebuilds a graph from this form and rejects duplicate ids and
// edges to unknown nodes, the same as the DOT reader. The converter uses it
// for input files ending in .json.
package io
