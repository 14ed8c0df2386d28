// Package figure draws the read origin plots of a fastp.Table: stacked bar
// and box plots as png with gonum/plot, and an html bar chart with go-echarts.
package figure

import (
	"errors"
	"image/color"

	"github.com/liserjrqlxue/spisCSM/fastp"
	"gonum.org/v1/plot/vg"
)

const Title = "Number of reads by origin"

var ErrNoSamples = errors.New("no samples to plot")

// Hex colors of the stacked categories
var Hex = map[fastp.Category]string{
	fastp.Host:     "#0400ff",
	fastp.Zooxs:    "#00ff00",
	fastp.Unmapped: "#ff0200",
}

var colors = map[fastp.Category]color.Color{
	fastp.Host:     color.RGBA{R: 0x04, G: 0x00, B: 0xff, A: 0xff},
	fastp.Zooxs:    color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff},
	fastp.Unmapped: color.RGBA{R: 0xff, G: 0x02, B: 0x00, A: 0xff},
}

// Options sizes the png canvas
type Options struct {
	Width, Height vg.Length
	DPI           int
}

// NewOptions converts inch sizes to Options
func NewOptions(width, height float64, dpi int) Options {
	return Options{
		Width:  vg.Length(width) * vg.Inch,
		Height: vg.Length(height) * vg.Inch,
		DPI:    dpi,
	}
}
