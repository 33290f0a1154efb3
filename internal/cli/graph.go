package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aslanistan/schemtex/pkg/errors"
	"github.com/aslanistan/schemtex/pkg/netlist"
	"github.com/aslanistan/schemtex/pkg/preview"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// graphCommand creates the graph command for connectivity previews.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "graph [circuit.sch]",
		Short: "Preview electrical connectivity via Graphviz",
		Long: `Preview electrical connectivity via Graphviz.

The graph command shows which components share which electrical nodes,
without solving any geometry. Useful for spotting netlist mistakes (typoed
node names, floating components) before typesetting.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(args[0], output, format, detailed)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", formatSVG, "output format: dot, svg, png")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include option strings in component labels")

	return cmd
}

func (c *CLI) runGraph(input, output, format string, detailed bool) error {
	data, err := os.ReadFile(input)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "netlist %s", input)
		}
		return fmt.Errorf("read netlist %s: %w", input, err)
	}

	sch, err := netlist.Build(string(data), nil)
	if err != nil {
		return err
	}

	dot := preview.ToDOT(sch, preview.Options{Detailed: detailed})

	var out []byte
	switch format {
	case formatDOT:
		out = []byte(dot)
	case formatSVG:
		spinner := newSpinner("Rendering connectivity graph...")
		spinner.Start()
		out, err = preview.RenderSVG(dot)
		spinner.Stop()
	case formatPNG:
		spinner := newSpinner("Rendering connectivity graph...")
		spinner.Start()
		out, err = preview.RenderPNG(dot)
		spinner.Stop()
	default:
		return errors.New(errors.ErrCodeInvalidFormat,
			"unknown format %q (want dot, svg or png)", format)
	}
	if err != nil {
		return fmt.Errorf("render graph: %w", err)
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + "." + format
	}
	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Connectivity graph complete")
	printFile(outputPath)
	printStats(len(sch.Components()), len(sch.NodeNames()), false)

	return nil
}
