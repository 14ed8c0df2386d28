package figure

import (
	"fmt"
	"math"

	"github.com/liserjrqlxue/spisCSM/fastp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// StackedBar puts one bar per sample, categories stacked bottom up in the given order
func StackedBar(table *fastp.Table, categories []fastp.Category, o Options) (*plot.Plot, error) {
	if table.Len() == 0 {
		return nil, ErrNoSamples
	}

	p := plot.New()
	p.Title.Text = Title
	p.Y.Label.Text = "reads"
	p.Legend.Top = true

	// bars fill their slot like a width of 1 on a nominal axis
	width := o.Width * 0.85 / vg.Length(table.Len())

	var below *plotter.BarChart
	for _, category := range categories {
		bar, err := plotter.NewBarChart(plotter.Values(table.Column(category)), width)
		if err != nil {
			return nil, fmt.Errorf("bar %s: %w", category, err)
		}
		bar.Color = colors[category]
		bar.LineStyle.Width = 0
		if below != nil {
			bar.StackOn(below)
		}
		p.Add(bar)
		p.Legend.Add(category.Label(), bar)
		below = bar
	}

	p.NominalX(table.Names()...)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	return p, nil
}
