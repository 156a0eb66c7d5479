package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dot2pst/pkg/config"
	"github.com/matzehuels/dot2pst/pkg/convert"
	"github.com/matzehuels/dot2pst/pkg/errors"
	"github.com/matzehuels/dot2pst/pkg/observability"
)

// convertFlags holds flag values that override the config file.
type convertFlags struct {
	strict   bool
	fitWidth bool
	scale    float64
	nodeSep  string
	arrows   string
}

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "convert <input.dot> <output.tex> [width]",
		Short: "Convert a positioned DOT file to PSTricks macros",
		Long: `Convert a positioned DOT file to PSTricks macros.

The input must be Graphviz output with positions (dot -Tdot), or a .json
graph written by 'dot2pst preview -f json'. Every node is
written as an \rput/\rnode pair at its position times the scale factor, every
edge as an \ncLine between the two nodes.

The optional width is accepted but only changes the scale with --fit-width,
which scales the bounding box to that width.

The output file is created only after the whole input has been read, so a
malformed input never leaves an output file behind.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			applyConvertFlags(cmd, &cfg, flags)
			if err := cfg.Validate(); err != nil {
				return err
			}

			opts, err := convertOptions(cfg, args)
			if err != nil {
				return err
			}
			return c.runConvert(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&flags.strict, "strict", false, "reject non-edge lines after the first edge")
	cmd.Flags().BoolVar(&flags.fitWidth, "fit-width", false, "derive the scale from width and the bounding box")
	cmd.Flags().Float64Var(&flags.scale, "scale", 0, "coordinate scale factor (default 0.05)")
	cmd.Flags().StringVar(&flags.nodeSep, "node-sep", "", "nodesep of connectors (default 3pt)")
	cmd.Flags().StringVar(&flags.arrows, "arrows", "", "arrow specification of connectors (default -)")

	return cmd
}

// applyConvertFlags copies explicitly set flags over cfg.
func applyConvertFlags(cmd *cobra.Command, cfg *config.Config, flags convertFlags) {
	f := cmd.Flags()
	if f.Changed("strict") {
		cfg.Strict = flags.strict
	}
	if f.Changed("fit-width") {
		cfg.FitWidth = flags.fitWidth
	}
	if f.Changed("scale") {
		cfg.Scale = flags.scale
	}
	if f.Changed("node-sep") {
		cfg.PSTricks.NodeSep = flags.nodeSep
	}
	if f.Changed("arrows") {
		cfg.PSTricks.Arrows = flags.arrows
	}
}

// convertOptions validates the positional arguments and builds run options.
func convertOptions(cfg config.Config, args []string) (convert.Options, error) {
	for _, p := range args[:2] {
		if err := errors.ValidatePath(p); err != nil {
			return convert.Options{}, err
		}
	}

	opts := convert.Options{
		Input:    args[0],
		Output:   args[1],
		FitWidth: cfg.FitWidth,
		Strict:   cfg.Strict,
		PSTricks: cfg.PSTricksOptions(),
		Labels:   cfg.Label.Replace,
	}
	if len(args) == 3 {
		w, err := errors.ValidateWidth(args[2])
		if err != nil {
			return convert.Options{}, err
		}
		opts.Width = w
	}
	return opts, nil
}

// runConvert executes the conversion and reports the result.
func (c *CLI) runConvert(ctx context.Context, opts convert.Options) error {
	opts.Logger = c.Logger
	opts.Hooks = observability.LogHooks{Logger: c.Logger}

	res, err := convert.Run(ctx, opts)
	if err != nil {
		return err
	}

	printSuccess("Converted %s", opts.Input)
	printFile(opts.Output)
	printStats(res.Nodes, res.Edges, res.Scale)
	if opts.Width > 0 && !opts.FitWidth {
		printWarning("width %d ignored (use --fit-width to scale to it)", opts.Width)
	}
	printNewline()
	printNextStep("Include", fmt.Sprintf(`\input{%s}`, opts.Output))
	return nil
}
