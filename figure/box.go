package figure

import (
	"fmt"
	"math"
	"strconv"

	"github.com/liserjrqlxue/spisCSM/fastp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// zooxs box y grid
const (
	TickMax  = 12000000
	TickStep = 250000
)

// Box draws one box and whisker per category over all samples
func Box(table *fastp.Table, categories []fastp.Category) (*plot.Plot, error) {
	if table.Len() == 0 {
		return nil, ErrNoSamples
	}

	p := plot.New()
	p.Y.Label.Text = "reads"

	var names []string
	for i, category := range categories {
		box, err := plotter.NewBoxPlot(vg.Points(40), float64(i), plotter.Values(table.Column(category)))
		if err != nil {
			return nil, fmt.Errorf("box %s: %w", category, err)
		}
		p.Add(box)
		names = append(names, string(category))
	}
	p.NominalX(names...)
	return p, nil
}

// ZooxsBox is the zooxs box with a tick every TickStep reads and a grid
func ZooxsBox(table *fastp.Table) (*plot.Plot, error) {
	p, err := Box(table, []fastp.Category{fastp.Zooxs})
	if err != nil {
		return nil, err
	}
	p.Y.Tick.Marker = plot.ConstantTicks(Ticks(0, TickMax, TickStep))
	p.Add(plotter.NewGrid())
	// every tick stays visible, larger counts still widen the axis
	p.Y.Min = 0
	p.Y.Max = math.Max(p.Y.Max, TickMax-TickStep)
	return p, nil
}

// Ticks labels every step in [start, end)
func Ticks(start, end, step int64) []plot.Tick {
	var ticks []plot.Tick
	for v := start; v < end; v += step {
		ticks = append(ticks, plot.Tick{Value: float64(v), Label: strconv.FormatInt(v, 10)})
	}
	return ticks
}
