package preview

import (
	"bytes"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/aslanistan/schemtex/pkg/schematic"
)

// PlotPositions renders the solved node positions as a labelled scatter
// plot in PNG format. The schematic is solved first if necessary.
func PlotPositions(sch *schematic.Schematic) ([]byte, error) {
	if !sch.Solved() {
		if err := sch.Solve(); err != nil {
			return nil, err
		}
	}

	names := sch.NodeNames()
	pts := make(plotter.XYs, 0, len(names))
	labels := make([]string, 0, len(names))
	for _, name := range names {
		pos, err := sch.NodePos(name)
		if err != nil {
			return nil, err
		}
		pts = append(pts, plotter.XY{X: pos.X, Y: pos.Y})
		labels = append(labels, name)
	}

	p := plot.New()
	p.Title.Text = "node positions"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("scatter: %w", err)
	}
	p.Add(scatter)

	lbls, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: labels})
	if err != nil {
		return nil, fmt.Errorf("labels: %w", err)
	}
	p.Add(lbls)

	w, err := p.WriterTo(6*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("encode plot: %w", err)
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write plot: %w", err)
	}
	return buf.Bytes(), nil
}
