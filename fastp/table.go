package fastp

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	simple_util "github.com/liserjrqlxue/simple-util"
)

// Count is the filtered read count of one report.
// Present is false when no report, or no Marker line, was found;
// N is 0 then.
type Count struct {
	N       int64
	Present bool
}

func (c Count) String() string {
	if !c.Present {
		return "NA"
	}
	return strconv.FormatInt(c.N, 10)
}

// Sample is one row of the Table
type Sample struct {
	Name   string
	Counts map[Category]Count
}

// Table holds one Sample per distinct prefix, in Samples order
type Table struct {
	Samples []*Sample
}

// Collect builds the Table of dir. A missing report leaves its Count absent;
// a report that cannot be parsed fails the whole collection.
func Collect(dir string) (*Table, error) {
	names, err := Samples(dir)
	if err != nil {
		return nil, err
	}
	var table = &Table{}
	for _, name := range names {
		sample := &Sample{
			Name:   name,
			Counts: make(map[Category]Count),
		}
		for _, category := range Categories {
			path := ReportPath(dir, name, category)
			if !simple_util.FileExists(path) {
				sample.Counts[category] = Count{}
				continue
			}
			log.Printf("reading in %s", path)
			count, err := SearchValue(path)
			if err != nil {
				return nil, err
			}
			sample.Counts[category] = count
		}
		table.Samples = append(table.Samples, sample)
	}
	return table, nil
}

// Len is the number of samples
func (t *Table) Len() int {
	return len(t.Samples)
}

// Names of the samples in row order
func (t *Table) Names() []string {
	var names = make([]string, len(t.Samples))
	for i, sample := range t.Samples {
		names[i] = sample.Name
	}
	return names
}

// Get returns the Count of sample for category, absent if either is unknown
func (t *Table) Get(name string, category Category) Count {
	for _, sample := range t.Samples {
		if sample.Name == name {
			return sample.Counts[category]
		}
	}
	return Count{}
}

// Column returns the counts of category in row order, absent as 0
func (t *Table) Column(category Category) []float64 {
	var values = make([]float64, len(t.Samples))
	for i, sample := range t.Samples {
		values[i] = float64(sample.Counts[category].N)
	}
	return values
}

// Missing lists "{sample}.{category}" for every absent Count
func (t *Table) Missing() []string {
	var missing []string
	for _, sample := range t.Samples {
		for _, category := range Categories {
			if !sample.Counts[category].Present {
				missing = append(missing, sample.Name+"."+string(category))
			}
		}
	}
	return missing
}

// WriteTSV writes an index column of sample names and one column per
// category, absent counts as 0
func (t *Table) WriteTSV(w io.Writer) error {
	var title = []string{""}
	for _, category := range Categories {
		title = append(title, string(category))
	}
	if _, err := fmt.Fprintln(w, strings.Join(title, "\t")); err != nil {
		return err
	}
	for _, sample := range t.Samples {
		var line = []string{sample.Name}
		for _, category := range Categories {
			line = append(line, strconv.FormatInt(sample.Counts[category].N, 10))
		}
		if _, err := fmt.Fprintln(w, strings.Join(line, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// SaveTSV writes the table to path with WriteTSV
func (t *Table) SaveTSV(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := t.WriteTSV(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
