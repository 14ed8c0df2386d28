package fastp

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Category is the read set a report was made for
type Category string

const (
	Host     Category = "host"
	Zooxs    Category = "zooxs"
	Unmapped Category = "unmapped"
)

// Categories in table column and stacking order
var Categories = []Category{Host, Zooxs, Unmapped}

// Label is the legend name, unmapped reads are shown as "other"
func (c Category) Label() string {
	if c == Unmapped {
		return "other"
	}
	return string(c)
}

// ReportPath is {dir}/{sample}.{category}.html
func ReportPath(dir, sample string, category Category) string {
	return filepath.Join(dir, strings.Join([]string{sample, string(category), "html"}, "."))
}

// Samples lists the distinct file name prefixes (up to the first ".") in dir, sorted
func Samples(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var seen = make(map[string]bool)
	var samples []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		sample := strings.Split(entry.Name(), ".")[0]
		if sample == "" || seen[sample] {
			continue
		}
		seen[sample] = true
		samples = append(samples, sample)
	}
	sort.Strings(samples)
	return samples, nil
}
