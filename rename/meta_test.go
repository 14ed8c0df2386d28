package rename

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	keyCol  = "fastq seq file name"
	nameCol = "RNAseq"
)

func TestLoadMeta(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "moya_meta_info.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(
		"\ufeffcolony,fastq seq file name,RNAseq\n"+
			"\"T1, S1\",S1,SampleAlpha\n"+
			"T1S2,S2,SampleBeta\n"+
			"T1S3,,SampleGamma\n"), 0644))

	tsvPath := filepath.Join(dir, "meta.tsv")
	require.NoError(t, os.WriteFile(tsvPath, []byte(
		"fastq seq file name\tRNAseq\n"+
			"S1\tSampleAlpha\n"), 0644))

	xlsxPath := filepath.Join(dir, "meta.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{keyCol, nameCol}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"S1", "SampleAlpha"}))
	require.NoError(t, f.SaveAs(xlsxPath))

	dupPath := filepath.Join(dir, "dup.csv")
	require.NoError(t, os.WriteFile(dupPath, []byte(
		"fastq seq file name,RNAseq\nS1,SampleAlpha\nS1,SampleBeta\n"), 0644))

	tests := []struct {
		name    string
		path    string
		key     string
		want    Meta
		wantErr error
	}{
		{"csv with quotes and bom", csvPath, keyCol, Meta{"S1": "SampleAlpha", "S2": "SampleBeta"}, nil},
		{"tsv", tsvPath, keyCol, Meta{"S1": "SampleAlpha"}, nil},
		{"xlsx", xlsxPath, keyCol, Meta{"S1": "SampleAlpha"}, nil},
		{"duplicate key", dupPath, keyCol, nil, ErrDuplicateKey},
		{"missing column", csvPath, "sample", nil, ErrNoColumn},
		{"missing file", filepath.Join(dir, "none.csv"), keyCol, nil, os.ErrNotExist},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadMeta(tt.path, tt.key, nameCol)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMeta(t *testing.T) {
	got, err := ParseMeta([]map[string]string{
		{keyCol: " S1 ", nameCol: "SampleAlpha "},
		{keyCol: "", nameCol: "orphan"},
	}, keyCol, nameCol)
	require.NoError(t, err)
	assert.Equal(t, Meta{"S1": "SampleAlpha"}, got)
}
