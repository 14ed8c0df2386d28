// Package config holds the paths and plot settings shared by plotMapping and
// renameRawSeq. Values come from Default, then an optional config file read
// with viper, then command line flags set by the caller.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// output layout under OutDir
const (
	FigureDir = "figures"
	TableDir  = "mapped_reads_table"
)

// Config is the run configuration of both tools
type Config struct {
	// fastp report dir, files named {sample}.{category}.html
	Src string `mapstructure:"src"`
	// root of figures/ and mapped_reads_table/
	OutDir string `mapstructure:"outdir"`

	// metadata sheet for renaming
	Meta string `mapstructure:"meta"`
	// raw fq.gz dir
	Raw string `mapstructure:"raw"`
	// metadata column holding the raw file prefix
	Key string `mapstructure:"key"`
	// metadata column holding the canonical sample name
	Name string `mapstructure:"name"`

	// dpi, width and height sit at the top level of the config file
	Plot PlotConfig `mapstructure:",squash"`
}

// PlotConfig sizes the png figures
type PlotConfig struct {
	// width and height in inch
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
	DPI    int     `mapstructure:"dpi"`
}

// Default returns the settings used when neither a config file nor a flag sets a value
func Default() Config {
	return Config{
		Key:  "fastq seq file name",
		Name: "RNAseq",
		Plot: PlotConfig{
			Width:  15,
			Height: 15,
			DPI:    600,
		},
	}
}

// Load returns Default overlaid with the values found in path.
// An empty path returns Default.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return c, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode %s into struct: %w", path, err)
	}
	return c, nil
}

// FigurePath is the path of a figure file under OutDir
func (c Config) FigurePath(name string) string {
	return filepath.Join(c.OutDir, FigureDir, name)
}

// TablePath is the path of a table file under OutDir
func (c Config) TablePath(name string) string {
	return filepath.Join(c.OutDir, TableDir, name)
}

// CreateDir makes root and every subdir below it
func CreateDir(root string, subdirs ...string) error {
	if err := os.MkdirAll(root, 0755); err != nil {
		return err
	}
	for _, subdir := range subdirs {
		if err := os.MkdirAll(filepath.Join(root, subdir), 0755); err != nil {
			return err
		}
	}
	return nil
}
