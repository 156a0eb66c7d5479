package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dot2pst/pkg/convert"
	"github.com/matzehuels/dot2pst/pkg/errors"
	"github.com/matzehuels/dot2pst/pkg/graph"
	graphio "github.com/matzehuels/dot2pst/pkg/io"
	"github.com/matzehuels/dot2pst/pkg/render/nodelink"
)

// Formats written without Graphviz rendering.
const (
	formatDOT  = "dot"
	formatJSON = "json"
)

// validPreviewFormats is the set of supported preview formats.
var validPreviewFormats = map[string]bool{
	nodelink.FormatSVG: true,
	nodelink.FormatPNG: true,
	formatDOT:          true,
	formatJSON:         true,
}

// previewCommand creates the preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		output string
		format string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "preview <input.dot>",
		Short: "Render the parsed graph for a visual check",
		Long: `Render the parsed graph for a visual check.

The input is read exactly as 'convert' reads it. Nodes are drawn at their
recorded positions with their raw labels, so the picture shows what will be
typeset. The dot and json formats write the parsed graph without rendering.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validatePreviewFormat(format); err != nil {
				return err
			}
			if err := errors.ValidatePath(args[0]); err != nil {
				return err
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("strict") {
				cfg.Strict = strict
			}
			if output == "" {
				output = defaultPreviewPath(args[0], format)
			}
			return c.runPreview(cmd.Context(), args[0], output, format, cfg.Strict)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", nodelink.FormatSVG, "output format: svg (default), png, dot, json")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject non-edge lines after the first edge")

	return cmd
}

// validatePreviewFormat checks that the format is one of svg, png or dot.
func validatePreviewFormat(format string) error {
	if !validPreviewFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid format: %s (must be 'svg', 'png', 'dot', or 'json')", format)
	}
	return nil
}

// defaultPreviewPath replaces the input extension with the format. A path
// that would overwrite the input gets a ".preview" infix.
func defaultPreviewPath(input, format string) string {
	stem := strings.TrimSuffix(input, filepath.Ext(input))
	if out := stem + "." + format; out != input {
		return out
	}
	return stem + ".preview." + format
}

// runPreview reads the graph, renders it and writes the result.
func (c *CLI) runPreview(ctx context.Context, input, output, format string, strict bool) error {
	g, err := convert.ReadGraph(input, convert.Options{Strict: strict, Logger: c.Logger})
	if err != nil {
		return err
	}

	if format == formatJSON {
		if err := graphio.ExportJSON(g, output); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "export graph")
		}
	} else if err := c.writePreview(ctx, g, output, format); err != nil {
		return err
	}

	printSuccess("Preview written")
	printFile(output)
	printStats(g.NodeCount(), g.EdgeCount(), 0)
	return nil
}

// writePreview writes the DOT source, or the image Graphviz renders from it.
func (c *CLI) writePreview(ctx context.Context, g *graph.Graph, output, format string) error {
	data := []byte(nodelink.ToDOT(g))
	if format != formatDOT {
		prog := newProgress(c.Logger)
		var err error
		data, err = nodelink.Render(ctx, string(data), format)
		if err != nil {
			return fmt.Errorf("render preview: %w", err)
		}
		prog.done(fmt.Sprintf("Rendered %s preview", format))
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", output)
	}
	return nil
}
