// plotMapping counts the host, zooxs and unmapped reads of every sample from
// fastp html reports and plots them.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	simple_util "github.com/liserjrqlxue/simple-util"

	"github.com/liserjrqlxue/spisCSM/config"
	"github.com/liserjrqlxue/spisCSM/fastp"
	"github.com/liserjrqlxue/spisCSM/figure"
)

var (
	src = flag.String(
		"src",
		"",
		"fastp report dir, {sample}.{host|zooxs|unmapped}.html",
	)
	outDir = flag.String(
		"outdir",
		"",
		"output dir",
	)
	cfg = flag.String(
		"cfg",
		"",
		"config file, yaml/toml/json",
	)
	dpi = flag.Int(
		"dpi",
		0,
		"png dpi, 0 to use config",
	)
	logFile = flag.String(
		"log",
		"",
		"output log file, default outdir/log",
	)
)

// output names
const (
	barPNG      = "mapped_read_count_stacked_bar.png"
	barHTML     = "mapped_read_count_stacked_bar.html"
	zooxsBarPNG = "mapped_read_count_stacked_bar_zooxs_only.png"
	boxPNG      = "box.png"
	zooxsBoxPNG = "box_only_zooxs.png"
	tableTSV    = "reads_mapped.tsv"
	tableXlsx   = "reads_mapped.xlsx"
)

func main() {
	flag.Parse()
	c, err := config.Load(*cfg)
	simple_util.CheckErr(err)
	if *src != "" {
		c.Src = *src
	}
	if *outDir != "" {
		c.OutDir = *outDir
	}
	if *dpi > 0 {
		c.Plot.DPI = *dpi
	}
	if c.Src == "" || c.OutDir == "" {
		flag.Usage()
		log.Printf("-src and -outdir required")
		os.Exit(0)
	}

	simple_util.CheckErr(config.CreateDir(c.OutDir, config.FigureDir, config.TableDir))

	if *logFile == "" {
		*logFile = filepath.Join(c.OutDir, "log")
	}
	logF, err := os.Create(*logFile)
	simple_util.CheckErr(err)
	defer simple_util.DeferClose(logF)
	log.SetOutput(io.MultiWriter(os.Stderr, logF))
	log.SetFlags(log.Ldate | log.Ltime)
	log.Printf("Start:%+v", os.Args)
	log.Printf("Log file:%v", *logFile)

	table, err := fastp.Collect(c.Src)
	simple_util.CheckErr(err)
	log.Printf("samples:%d", table.Len())
	for _, name := range table.Missing() {
		log.Printf("no reads passed filters value:%s", name)
	}

	simple_util.CheckErr(table.SaveTSV(c.TablePath(tableTSV)))
	simple_util.CheckErr(table.SaveXlsx(c.TablePath(tableXlsx)))

	if table.Len() == 0 {
		log.Printf("skip figures:%v", figure.ErrNoSamples)
		return
	}
	plotFigures(c, table)
	log.Printf("End")
}

func plotFigures(c config.Config, table *fastp.Table) {
	o := figure.NewOptions(c.Plot.Width, c.Plot.Height, c.Plot.DPI)

	p, err := figure.StackedBar(table, fastp.Categories, o)
	simple_util.CheckErr(err)
	simple_util.CheckErr(figure.Save(p, o, c.FigurePath(barPNG)))
	simple_util.CheckErr(figure.SaveHTML(table, c.FigurePath(barHTML)))

	p, err = figure.StackedBar(table, []fastp.Category{fastp.Zooxs}, o)
	simple_util.CheckErr(err)
	simple_util.CheckErr(figure.Save(p, o, c.FigurePath(zooxsBarPNG)))

	p, err = figure.Box(table, fastp.Categories)
	simple_util.CheckErr(err)
	simple_util.CheckErr(figure.Save(p, o, c.FigurePath(boxPNG)))

	p, err = figure.ZooxsBox(table)
	simple_util.CheckErr(err)
	simple_util.CheckErr(figure.Save(p, o, c.FigurePath(zooxsBoxPNG)))
}
