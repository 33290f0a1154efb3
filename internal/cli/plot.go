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

// plotCommand creates the plot command for layout debugging.
func (c *CLI) plotCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "plot [circuit.sch]",
		Short: "Plot solved node positions",
		Long: `Plot solved node positions.

The plot command runs the placement solver and scatters the resulting node
coordinates on a labelled grid. When a drawing comes out mangled, this shows
whether the geometry or the layout constraints are at fault.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlot(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.png)")

	return cmd
}

func (c *CLI) runPlot(input, output string) error {
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

	prog := newProgress(c.Logger)
	png, err := preview.PlotPositions(sch)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Solved %d node positions", len(sch.NodeNames())))

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".png"
	}
	if err := os.WriteFile(outputPath, png, 0644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Position plot complete")
	printFile(outputPath)
	printStats(len(sch.Components()), len(sch.NodeNames()), false)

	return nil
}
