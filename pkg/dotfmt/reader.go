package dotfmt

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dot2pst/pkg/errors"
	"github.com/matzehuels/dot2pst/pkg/graph"
)

// headerLines is the number of leading lines skipped before the bounding box.
const headerLines = 3

// maxLineSize bounds a single physical input line.
const maxLineSize = 4 << 20

// Options configures how input is read.
type Options struct {
	// Strict rejects lines after the first edge that are not edges
	// themselves. When false they are skipped and logged at debug level.
	Strict bool

	// Label renders a raw label for math mode. Nil keeps labels verbatim.
	Label func(raw string) string

	// Logger receives debug output. Nil discards it.
	Logger *log.Logger
}

// mode is the reader's position in the node section / edge section sequence.
// The only transition is readingNodes -> readingEdges.
type mode int

const (
	readingNodes mode = iota
	readingEdges
)

func (m mode) String() string {
	if m == readingEdges {
		return "edges"
	}
	return "nodes"
}

// Read parses r into a new Graph. Any malformed line aborts the read; the
// returned error carries the line number and text.
func Read(r io.Reader, opts Options) (*graph.Graph, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	lines := newLineScanner(r)
	for i := 1; i <= headerLines; i++ {
		if !lines.Scan() {
			if err := lines.Err(); err != nil {
				return nil, errors.Wrap(errors.ErrCodeIO, err, "read header")
			}
			return nil, errors.New(errors.ErrCodeInvalidFormat, "input ends inside header (line %d of %d)", i, headerLines)
		}
	}
	if !lines.Scan() {
		if err := lines.Err(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeIO, err, "read bounding box")
		}
		return nil, errors.New(errors.ErrCodeInvalidFormat, "input ends before bounding box line")
	}

	g := graph.New()
	if bb, err := ParseBoundingBox(lines.Text()); err != nil {
		logger.Debug("bounding box not recognized", "line", lines.Line(), "err", err)
	} else {
		g.SetBoundingBox(bb)
		logger.Debug("bounding box", "width", bb.Width(), "height", bb.Height())
	}

	p := &parser{g: g, opts: opts, logger: logger}
	for lines.Scan() {
		if err := p.parseLine(lines.Line(), lines.Text()); err != nil {
			return nil, err
		}
	}
	if err := lines.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read input")
	}

	logger.Debug("input read", "nodes", g.NodeCount(), "edges", g.EdgeCount(), "skipped", p.skipped)
	return g, nil
}

type parser struct {
	g       *graph.Graph
	opts    Options
	logger  *log.Logger
	mode    mode
	skipped int
}

func (p *parser) parseLine(num int, text string) error {
	if isFiller(text) {
		return nil
	}

	edge := IsEdgeLine(text)
	if p.mode == readingNodes && edge {
		p.mode = readingEdges
		p.logger.Debug("switching mode", "to", p.mode, "line", num)
	}

	switch {
	case p.mode == readingNodes:
		return p.addNode(num, text)
	case edge:
		return p.addEdge(num, text)
	case p.opts.Strict:
		return errors.New(errors.ErrCodeInvalidFormat, "expected an edge line").At(num, text)
	default:
		p.skipped++
		p.logger.Debug("skipping non-edge line", "line", num)
		return nil
	}
}

func (p *parser) addNode(num int, text string) error {
	n, err := ParseNode(text, p.opts.Label)
	if err != nil {
		return at(err, num, text)
	}
	if err := p.g.AddNode(n); err != nil {
		return errors.Wrap(errors.ErrCodeDuplicateNode, err, "node %d declared twice", n.ID).At(num, text)
	}
	return nil
}

func (p *parser) addEdge(num int, text string) error {
	src, dst, err := ParseEdge(text)
	if err != nil {
		return at(err, num, text)
	}
	if err := p.g.AddEdge(src, dst); err != nil {
		return errors.Wrap(errors.ErrCodeUnknownReference, err, "edge %d -> %d references an undeclared node", src, dst).At(num, text)
	}
	return nil
}

// isFiller reports lines carrying no statement: blanks and the closing brace.
func isFiller(text string) bool {
	s := strings.TrimSpace(text)
	return s == "" || s == "}"
}

func at(err error, num int, text string) error {
	if e, ok := err.(*errors.Error); ok {
		return e.At(num, text)
	}
	return err
}

// lineScanner yields logical lines, joining backslash-continued physical
// lines. Line reports the number of the first physical line.
type lineScanner struct {
	sc   *bufio.Scanner
	phys int
	line int
	text string
}

func newLineScanner(r io.Reader) *lineScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &lineScanner{sc: sc}
}

func (s *lineScanner) Scan() bool {
	var b strings.Builder
	s.line = 0
	for s.sc.Scan() {
		s.phys++
		if s.line == 0 {
			s.line = s.phys
		}
		t := strings.TrimSuffix(s.sc.Text(), "\r")
		if cont, ok := strings.CutSuffix(t, `\`); ok {
			b.WriteString(cont)
			continue
		}
		b.WriteString(t)
		s.text = b.String()
		return true
	}
	if s.line != 0 {
		// Input ended on a continuation.
		s.text = b.String()
		return true
	}
	return false
}

func (s *lineScanner) Text() string { return s.text }
func (s *lineScanner) Line() int    { return s.line }
func (s *lineScanner) Err() error   { return s.sc.Err() }
