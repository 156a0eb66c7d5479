package dotfmt

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/dot2pst/pkg/errors"
	"github.com/matzehuels/dot2pst/pkg/graph"
)

// EdgeSeparator marks a line as an edge statement.
const EdgeSeparator = " -> "

var (
	fieldSep = regexp.MustCompile(`[ =\t]`)
	bboxSep  = regexp.MustCompile(`[,"]`)
)

// Token positions within a split statement. Index 0 is the indentation.
const (
	tokID       = 1
	tokLabelKey = 2
	tokLabel    = 3
	tokPosKey   = 4
	tokPos      = 5
	tokArrow    = 2
	tokTarget   = 3
)

// IsEdgeLine reports whether the line is an edge statement.
func IsEdgeLine(line string) bool {
	return strings.Contains(line, EdgeSeparator)
}

// split tokenizes a statement on space, '=' and tab. Statements written
// without indentation get an empty leading token so that positions match
// the indented form Graphviz writes.
func split(line string) []string {
	tokens := fieldSep.Split(line, -1)
	if tokens[0] != "" {
		tokens = append([]string{""}, tokens...)
	}
	return tokens
}

// ParseNode reads a node statement such as
//
//	node15 [label="{1*2|*,*2,*3}", pos="1407,90", width="1.75", height="0.5"];
//
// The raw label is passed through render (when non-nil) to produce
// Node.Label; Node.RawLabel keeps the input text.
func ParseNode(line string, render func(string) string) (graph.Node, error) {
	tokens := split(line)
	if len(tokens) <= tokPos {
		return graph.Node{}, errors.New(errors.ErrCodeInvalidFormat, "node statement has %d fields, want at least %d", len(tokens)-1, tokPos)
	}
	if tokens[tokLabelKey] != "[label" {
		return graph.Node{}, errors.New(errors.ErrCodeInvalidFormat, "expected label attribute, got %q", tokens[tokLabelKey])
	}
	if tokens[tokPosKey] != "pos" {
		return graph.Node{}, errors.New(errors.ErrCodeInvalidFormat, "expected pos attribute, got %q", tokens[tokPosKey])
	}

	id, err := ParseID(tokens[tokID])
	if err != nil {
		return graph.Node{}, err
	}
	raw, err := parseLabel(tokens[tokLabel])
	if err != nil {
		return graph.Node{}, err
	}
	x, y, err := parsePos(tokens[tokPos])
	if err != nil {
		return graph.Node{}, err
	}

	label := raw
	if render != nil {
		label = render(raw)
	}
	return graph.Node{ID: id, RawLabel: raw, Label: label, X: x, Y: y}, nil
}

// ParseEdge reads an edge statement such as
//
//	node1 -> node8 [pos="e,1075.6,77.075 1236.4,25.842 ..."];
//
// and returns the source and target ids.
func ParseEdge(line string) (source, target int, err error) {
	tokens := split(line)
	if len(tokens) <= tokTarget || tokens[tokArrow] != "->" {
		return 0, 0, errors.New(errors.ErrCodeInvalidFormat, "edge statement must be <id> -> <id>")
	}
	if source, err = ParseID(tokens[tokID]); err != nil {
		return 0, 0, err
	}
	if target, err = ParseID(strings.TrimSuffix(tokens[tokTarget], ";")); err != nil {
		return 0, 0, err
	}
	return source, target, nil
}

// ParseID strips the fixed "node" prefix from an identifier token and
// parses the remainder as a decimal integer.
func ParseID(tok string) (int, error) {
	digits, ok := strings.CutPrefix(tok, graph.AnchorPrefix)
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidValue, "identifier %q does not start with %q", tok, graph.AnchorPrefix)
	}
	id, err := strconv.Atoi(digits)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidValue, err, "identifier %q has no numeric suffix", tok)
	}
	return id, nil
}

// parseLabel extracts the label from its token: `"text",` or `text,`.
func parseLabel(tok string) (string, error) {
	if strings.Contains(tok, `"`) {
		if len(tok) < 3 {
			return "", errors.New(errors.ErrCodeInvalidFormat, "quoted label token %q too short", tok)
		}
		return tok[1 : len(tok)-2], nil
	}
	if len(tok) < 2 {
		return "", errors.New(errors.ErrCodeInvalidFormat, "label token %q too short", tok)
	}
	return tok[:len(tok)-1], nil
}

// parsePos reads `"x,y",` into its two coordinates.
func parsePos(tok string) (x, y float64, err error) {
	parts := strings.Split(tok, ",")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return 0, 0, errors.New(errors.ErrCodeInvalidFormat, "position token %q is not \"x,y\"", tok)
	}
	xs := parts[0][1:]
	ys := parts[1][:len(parts[1])-1]

	if x, err = parseCoord(xs); err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidValue, err, "x coordinate %q in %q", xs, tok)
	}
	if y, err = parseCoord(ys); err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidValue, err, "y coordinate %q in %q", ys, tok)
	}
	return x, y, nil
}

// parseCoord reads a finite decimal number. Graphviz writes plain decimals,
// optionally with an exponent, so NaN, Inf, hex floats and digit
// separators are refused.
func parseCoord(s string) (float64, error) {
	if s == "" || strings.IndexFunc(s, notDecimal) >= 0 {
		return 0, fmt.Errorf("not a decimal number: %q", s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number: %q", s)
	}
	return f, nil
}

func notDecimal(r rune) bool {
	return !('0' <= r && r <= '9') && !strings.ContainsRune("+-.eE", r)
}

// ParseBoundingBox reads the header line `graph [bb="x0,y0,x1,y1"];`.
func ParseBoundingBox(line string) (graph.BoundingBox, error) {
	parts := bboxSep.Split(line, -1)
	if len(parts) < 5 || !strings.Contains(parts[0], "bb=") {
		return graph.BoundingBox{}, errors.New(errors.ErrCodeInvalidFormat, "not a bounding box statement")
	}
	var v [4]float64
	for i := range v {
		f, err := parseCoord(strings.TrimSpace(parts[i+1]))
		if err != nil {
			return graph.BoundingBox{}, errors.Wrap(errors.ErrCodeInvalidValue, err, "bounding box field %d", i+1)
		}
		v[i] = f
	}
	return graph.BoundingBox{X0: v[0], Y0: v[1], X1: v[2], Y1: v[3]}, nil
}
