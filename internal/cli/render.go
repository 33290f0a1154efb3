package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aslanistan/schemtex/pkg/cache"
	"github.com/aslanistan/schemtex/pkg/errors"
	"github.com/aslanistan/schemtex/pkg/netlist"
	"github.com/aslanistan/schemtex/pkg/schematic"
	"github.com/aslanistan/schemtex/pkg/tex"
)

// cacheTTL bounds how long rendered output is kept. Rendering is cheap, so
// stale entries cost little; the TTL mostly keeps the cache dir from
// growing without bound.
const cacheTTL = 30 * 24 * time.Hour

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string // output file path, "-" or empty for stdout default
	standalone  bool   // wrap in a compilable standalone document
	drawNodes   bool   // emit node dot/circle markers
	labelIDs    bool   // include component identifier labels
	labelValues bool   // include value labels
	link        bool   // draw transformer coupling arcs
	noCache     bool   // bypass the render cache
}

// renderCommand creates the render command for typesetting netlists.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [circuit.sch]",
		Short: "Generate circuitikz drawing commands from a netlist",
		Long: `Generate circuitikz drawing commands from a netlist.

The render command parses the netlist, solves component placement on a grid,
and writes a tikzpicture environment ready for inclusion in a LaTeX document.
With --standalone the output is a complete compilable document instead.

Results are cached locally by content hash; editing the netlist or changing
any draw flag re-renders.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags override the config file only when given explicitly.
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			applyConfig(cmd, &opts, cfg.Render)
			return c.runRender(cmd.Context(), args[0], opts, cfg.Render)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>.tex)")
	cmd.Flags().BoolVar(&opts.standalone, "standalone", false, "emit a complete compilable document")
	cmd.Flags().BoolVar(&opts.drawNodes, "draw-nodes", true, "draw node markers")
	cmd.Flags().BoolVar(&opts.labelIDs, "label-ids", true, "draw component identifier labels")
	cmd.Flags().BoolVar(&opts.labelValues, "label-values", true, "draw component value labels")
	cmd.Flags().BoolVar(&opts.link, "link", true, "draw transformer coupling arcs")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// applyConfig fills in config-file values for flags the user did not set.
func applyConfig(cmd *cobra.Command, opts *renderOpts, cfg RenderConfig) {
	if !cmd.Flags().Changed("draw-nodes") {
		opts.drawNodes = cfg.DrawNodes
	}
	if !cmd.Flags().Changed("label-ids") {
		opts.labelIDs = cfg.LabelIDs
	}
	if !cmd.Flags().Changed("label-values") {
		opts.labelValues = cfg.LabelValues
	}
	if !cmd.Flags().Changed("link") {
		opts.link = cfg.Link
	}
	if !cmd.Flags().Changed("standalone") {
		opts.standalone = opts.standalone || cfg.Standalone
	}
}

// runRender reads the netlist, renders it (or fetches the cached result),
// and writes the output.
func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts, cfg RenderConfig) error {
	data, err := os.ReadFile(input)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "netlist %s", input)
		}
		return fmt.Errorf("read netlist %s: %w", input, err)
	}

	store, err := newCache(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer store.Close()

	key := cache.RenderKey(data, cache.RenderKeyOpts{
		DrawNodes:   opts.drawNodes,
		LabelIDs:    opts.labelIDs,
		LabelValues: opts.labelValues,
		Link:        opts.link,
		Standalone:  opts.standalone,
	})

	var out []byte
	cached := false
	if hit, ok, err := store.Get(ctx, key); err == nil && ok {
		c.Logger.Debug("cache hit", "key", key)
		out = hit
		cached = true
	}

	var sch *schematic.Schematic
	if !cached {
		prog := newProgress(c.Logger)
		sch, err = netlist.Build(string(data), nil)
		if err != nil {
			return err
		}
		sch.NodeSpacing = cfg.NodeSpacing
		sch.CptSize = cfg.CptSize

		drawing, err := sch.Draw(schematic.DrawConfig{
			DrawNodes:   opts.drawNodes,
			LabelIDs:    opts.labelIDs,
			LabelValues: opts.labelValues,
			Link:        opts.link,
		})
		if err != nil {
			return err
		}
		if opts.standalone {
			drawing = tex.Standalone(drawing)
		}
		out = []byte(drawing)
		prog.done(fmt.Sprintf("Rendered %d components", len(sch.Components())))

		if err := store.Set(ctx, key, out, cacheTTL); err != nil {
			c.Logger.Debug("cache store failed", "err", err)
		}
	}

	outputPath := opts.output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".tex"
	}
	if outputPath == "-" {
		fmt.Print(string(out))
		return nil
	}
	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Render complete")
	printFile(outputPath)
	components, nodes := stats(sch, string(data))
	printStats(components, nodes, cached)
	printNewline()
	if opts.standalone {
		printNextStep("Compile", "pdflatex "+outputPath)
	} else {
		printNextStep("Preview connectivity", "schemtex graph "+input)
	}

	return nil
}

// stats reports component and node counts for the status line. On a cache
// hit the schematic was never built, so the netlist is re-parsed just for
// the counts; a parse failure here only blanks the statistics.
func stats(sch *schematic.Schematic, input string) (int, int) {
	if sch == nil {
		var err error
		sch, err = netlist.Build(input, nil)
		if err != nil {
			return 0, 0
		}
	}
	return len(sch.Components()), len(sch.NodeNames())
}
