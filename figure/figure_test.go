package figure

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"

	"github.com/liserjrqlxue/spisCSM/fastp"
)

func testTable() *fastp.Table {
	return &fastp.Table{Samples: []*fastp.Sample{
		{Name: "S1", Counts: map[fastp.Category]fastp.Count{
			fastp.Host:     {N: 3500000, Present: true},
			fastp.Zooxs:    {N: 250000, Present: true},
			fastp.Unmapped: {N: 1000, Present: true},
		}},
		{Name: "S2", Counts: map[fastp.Category]fastp.Count{
			fastp.Zooxs: {N: 750000, Present: true},
		}},
	}}
}

func TestSave(t *testing.T) {
	table := testTable()
	o := NewOptions(4, 4, 30)

	all, err := StackedBar(table, fastp.Categories, o)
	require.NoError(t, err)
	zooxs, err := StackedBar(table, []fastp.Category{fastp.Zooxs}, o)
	require.NoError(t, err)
	box, err := Box(table, fastp.Categories)
	require.NoError(t, err)
	zooxsBox, err := ZooxsBox(table)
	require.NoError(t, err)

	dir := t.TempDir()
	for name, p := range map[string]*plot.Plot{
		"bar.png":       all,
		"zooxs.png":     zooxs,
		"box.png":       box,
		"zooxs_box.png": zooxsBox,
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(p, o, path), name)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Size(), name)
	}
}

func TestNoSamples(t *testing.T) {
	empty := &fastp.Table{}
	o := NewOptions(4, 4, 30)

	_, err := StackedBar(empty, fastp.Categories, o)
	assert.ErrorIs(t, err, ErrNoSamples)
	_, err = Box(empty, fastp.Categories)
	assert.ErrorIs(t, err, ErrNoSamples)
	_, err = ZooxsBox(empty)
	assert.ErrorIs(t, err, ErrNoSamples)
	assert.ErrorIs(t, WriteHTML(empty, &bytes.Buffer{}), ErrNoSamples)
}

func TestZooxsBox_axis(t *testing.T) {
	p, err := ZooxsBox(testTable())
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Y.Min)
	assert.Equal(t, float64(TickMax-TickStep), p.Y.Max)

	large := testTable()
	large.Samples[0].Counts[fastp.Zooxs] = fastp.Count{N: 20000000, Present: true}
	p, err = ZooxsBox(large)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Y.Min)
	assert.GreaterOrEqual(t, p.Y.Max, 20000000.0)
}

func TestTicks(t *testing.T) {
	ticks := Ticks(0, TickMax, TickStep)
	require.Len(t, ticks, 48)
	assert.Equal(t, plot.Tick{Value: 0, Label: "0"}, ticks[0])
	assert.Equal(t, plot.Tick{Value: 11750000, Label: "11750000"}, ticks[47])
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(testTable(), &buf))
	html := buf.String()
	assert.Contains(t, html, Title)
	for _, name := range []string{"host", "zooxs", "other", "S1", "S2", "#0400ff"} {
		assert.Contains(t, html, name)
	}
}
