package figure

import (
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/liserjrqlxue/spisCSM/fastp"
)

// HTMLBar is the interactive version of StackedBar over all categories
func HTMLBar(table *fastp.Table) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: Title}),
		charts.WithYAxisOpts(opts.YAxis{Name: "reads"}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: 90, Interval: "0"}}),
	)
	bar.SetXAxis(table.Names())
	for _, category := range fastp.Categories {
		var data []opts.BarData
		for _, v := range table.Column(category) {
			data = append(data, opts.BarData{Value: int64(v)})
		}
		bar.AddSeries(
			category.Label(),
			data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: Hex[category]}),
		)
	}
	bar.SetSeriesOptions(charts.WithBarChartOpts(opts.BarChart{Stack: "reads"}))
	return bar
}

// WriteHTML renders the HTMLBar page to w
func WriteHTML(table *fastp.Table, w io.Writer) error {
	if table.Len() == 0 {
		return ErrNoSamples
	}
	page := components.NewPage()
	page.AddCharts(HTMLBar(table))
	return page.Render(w)
}

// SaveHTML writes the HTMLBar page to path
func SaveHTML(table *fastp.Table, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteHTML(table, file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
