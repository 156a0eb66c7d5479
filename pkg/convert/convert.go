// Package convert runs the dot → PSTricks conversion: read a positioned
// DOT file into a graph, then write it back out as PSTricks macros.
//
// [Run] works on file paths and owns both file handles. The output file is
// created only after the input has been parsed completely, so a parse error
// never leaves an output file behind. A write error can leave a partially
// written output file.
//
// [Convert] is the same pipeline over an io.Reader and io.Writer. Input
// paths ending in .json are read as the graph form written by
// "dot2pst preview -f json".
package convert

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dot2pst/pkg/dotfmt"
	"github.com/matzehuels/dot2pst/pkg/errors"
	"github.com/matzehuels/dot2pst/pkg/graph"
	graphio "github.com/matzehuels/dot2pst/pkg/io"
	"github.com/matzehuels/dot2pst/pkg/observability"
	"github.com/matzehuels/dot2pst/pkg/render/pstricks"
)

// Options configures a conversion run.
type Options struct {
	Input  string // path of the DOT file (Run only)
	Output string // path of the macro file, created or truncated (Run only)

	// Width is the requested drawing width. It only changes the scale when
	// FitWidth is set; otherwise it is accepted and ignored.
	Width    int
	FitWidth bool

	Strict   bool              // reject non-edge lines after the first edge
	PSTricks pstricks.Options  // emitter settings, zero fields use defaults
	Labels   map[string]string // label replacements merged over the defaults

	Logger *log.Logger                // nil discards log output
	Hooks  observability.ConvertHooks // nil uses NoopHooks
}

// Result summarizes a finished conversion.
type Result struct {
	Nodes int
	Edges int
	Scale float64 // scale factor actually applied
}

// Run converts opts.Input into opts.Output.
func Run(ctx context.Context, opts Options) (Result, error) {
	logger := loggerOrDiscard(opts.Logger)
	hooks := observability.OrNoop(opts.Hooks)

	hooks.OnParseStart(ctx, opts.Input)
	start := time.Now()
	g, err := readFile(opts.Input, parseOptions(opts, logger))
	nodes, edges := 0, 0
	if g != nil {
		nodes, edges = g.NodeCount(), g.EdgeCount()
	}
	hooks.OnParseComplete(ctx, opts.Input, nodes, edges, time.Since(start), err)
	if err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	emit := emitOptions(g, opts, logger)
	hooks.OnEmitStart(ctx, opts.Output, nodes, edges)
	start = time.Now()
	err = writeFile(opts.Output, g, emit)
	hooks.OnEmitComplete(ctx, opts.Output, time.Since(start), err)
	if err != nil {
		return Result{}, err
	}

	return Result{Nodes: nodes, Edges: edges, Scale: emit.Scale}, nil
}

// Convert reads DOT from r and writes macros to w.
func Convert(r io.Reader, w io.Writer, opts Options) (Result, error) {
	logger := loggerOrDiscard(opts.Logger)

	g, err := dotfmt.Read(r, parseOptions(opts, logger))
	if err != nil {
		return Result{}, err
	}
	emit := emitOptions(g, opts, logger)
	if err := pstricks.Write(w, g, emit); err != nil {
		return Result{}, errors.Wrap(errors.ErrCodeIO, err, "write output")
	}
	return Result{Nodes: g.NodeCount(), Edges: g.EdgeCount(), Scale: emit.Scale}, nil
}

// ReadGraph parses the DOT file at path with the same settings Run uses.
func ReadGraph(path string, opts Options) (*graph.Graph, error) {
	return readFile(path, parseOptions(opts, loggerOrDiscard(opts.Logger)))
}

// EffectiveScale returns the scale applied to g. With FitWidth, a positive
// Width and a bounding box of positive width, the drawing is scaled so its
// width equals Width; otherwise the configured scale is used.
func EffectiveScale(g *graph.Graph, opts Options, logger *log.Logger) float64 {
	logger = loggerOrDiscard(logger)
	scale := opts.PSTricks.Scale
	if scale == 0 {
		scale = pstricks.DefaultScale
	}

	if opts.Width > 0 && !opts.FitWidth {
		logger.Debug("width has no effect without fit-width", "width", opts.Width, "scale", scale)
		return scale
	}
	if !opts.FitWidth || opts.Width == 0 {
		return scale
	}

	bb, ok := g.BoundingBox()
	if !ok || bb.Width() <= 0 {
		logger.Warn("no usable bounding box, keeping fixed scale", "scale", scale)
		return scale
	}
	fitted := float64(opts.Width) / bb.Width()
	logger.Debug("fitted scale to width", "width", opts.Width, "bbox_width", bb.Width(), "scale", fitted)
	return fitted
}

func parseOptions(opts Options, logger *log.Logger) dotfmt.Options {
	return dotfmt.Options{
		Strict: opts.Strict,
		Label:  pstricks.NewLabelRenderer(opts.Labels).Render,
		Logger: logger,
	}
}

func emitOptions(g *graph.Graph, opts Options, logger *log.Logger) pstricks.Options {
	emit := opts.PSTricks
	emit.Scale = EffectiveScale(g, opts, logger)
	return emit
}

// readFile parses path as positioned DOT, or as the JSON graph form when
// the name ends in .json.
func readFile(path string, opts dotfmt.Options) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return readJSON(f, path, opts)
	}

	g, err := dotfmt.Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return g, nil
}

func readJSON(r io.Reader, path string, opts dotfmt.Options) (*graph.Graph, error) {
	g, err := graphio.ReadJSON(r, opts.Label)
	switch {
	case err == nil:
		opts.Logger.Debug("read JSON graph", "path", path, "nodes", g.NodeCount(), "edges", g.EdgeCount())
		return g, nil
	case stderrors.Is(err, graph.ErrUnknownNode):
		return nil, errors.Wrap(errors.ErrCodeUnknownReference, err, "read %s", path)
	case stderrors.Is(err, graph.ErrDuplicateNode):
		return nil, errors.Wrap(errors.ErrCodeDuplicateNode, err, "read %s", path)
	default:
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read %s", path)
	}
}

func writeFile(path string, g *graph.Graph, opts pstricks.Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeIO, cerr, "close %s", path)
		}
	}()

	if err := pstricks.Write(f, g, opts); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}

func loggerOrDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return log.New(io.Discard)
	}
	return l
}
