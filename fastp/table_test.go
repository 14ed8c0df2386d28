package fastp

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeReports(t *testing.T, reports map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range reports {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestSamples(t *testing.T) {
	dir := writeReports(t, map[string]string{
		"S2.host.html":  "",
		"S2.host.json":  "",
		"S1.zooxs.html": "",
		"S3.fq.gz":      "",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "S4.tmp"), 0755))

	got, err := Samples(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"S1", "S2", "S3"}, got)
}

func TestCollect(t *testing.T) {
	dir := writeReports(t, map[string]string{
		"S1.host.html":     "reads passed filters: 3.50 M\n",
		"S1.zooxs.html":    "reads passed filters: 250.00 K\n",
		"S1.unmapped.html": "reads passed filters: 1.00 K\n",
		"S2.zooxs.html":    "reads passed filters: 0.00 K\n",
		"S2.unmapped.html": "no filtering result\n",
		"S3.host.json":     "{}",
	})

	table, err := Collect(dir)
	require.NoError(t, err)

	assert.Equal(t, 3, table.Len())
	assert.Equal(t, []string{"S1", "S2", "S3"}, table.Names())
	assert.Equal(t, Count{N: 3500000, Present: true}, table.Get("S1", Host))
	assert.Equal(t, Count{N: 250000, Present: true}, table.Get("S1", Zooxs))
	assert.Equal(t, Count{N: 0, Present: true}, table.Get("S2", Zooxs))
	assert.Equal(t, Count{}, table.Get("S2", Host))
	assert.Equal(t, Count{}, table.Get("S2", Unmapped))
	assert.Equal(t, []float64{250000, 0, 0}, table.Column(Zooxs))
	assert.Equal(t, []string{"S2.host", "S2.unmapped", "S3.host", "S3.zooxs", "S3.unmapped"}, table.Missing())
}

func TestCollect_badUnit(t *testing.T) {
	dir := writeReports(t, map[string]string{
		"S1.host.html": "reads passed filters: 3.50 G\n",
	})
	_, err := Collect(dir)
	assert.ErrorIs(t, err, ErrUnit)
}

func TestTable_WriteTSV(t *testing.T) {
	table := &Table{Samples: []*Sample{
		{Name: "S1", Counts: map[Category]Count{Host: {N: 10, Present: true}, Zooxs: {N: 20, Present: true}}},
		{Name: "S2", Counts: map[Category]Count{Unmapped: {N: 5, Present: true}}},
	}}
	var buf bytes.Buffer
	require.NoError(t, table.WriteTSV(&buf))
	assert.Equal(t, "\thost\tzooxs\tunmapped\nS1\t10\t20\t0\nS2\t0\t0\t5\n", buf.String())
}

func TestTable_SaveXlsx(t *testing.T) {
	table := &Table{Samples: []*Sample{
		{Name: "S1", Counts: map[Category]Count{Host: {N: 10, Present: true}}},
	}}
	path := filepath.Join(t.TempDir(), "reads_mapped.xlsx")
	require.NoError(t, table.SaveXlsx(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	rows, err := f.GetRows(Sheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"sample", "host", "zooxs", "unmapped"},
		{"S1", "10", "NA", "NA"},
	}, rows)
}
