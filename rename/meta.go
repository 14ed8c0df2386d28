// Package rename renames raw sequencing files {key}_{extension} to
// {name}_{extension}, looking name up by key in a metadata sheet.
// All renames are planned and checked before the first one is applied.
package rename

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/liserjrqlxue/goUtil/textUtil"
	simple_util "github.com/liserjrqlxue/simple-util"
)

var (
	ErrDuplicateKey = errors.New("duplicate key")
	ErrNoColumn     = errors.New("column not found")
)

var isXlsx = regexp.MustCompile(`\.xlsx$`)

// Meta maps a raw file prefix to its canonical sample name
type Meta map[string]string

// LoadMeta reads the key and name columns of a .csv, .xlsx or tab separated sheet
func LoadMeta(path, key, name string) (Meta, error) {
	if !simple_util.FileExists(path) {
		return nil, fmt.Errorf("metadata sheet %s: %w", path, os.ErrNotExist)
	}

	var rows []map[string]string
	var title []string
	var err error
	switch {
	case isXlsx.MatchString(path):
		rows, title, err = readXlsx(path)
	case strings.EqualFold(filepath.Ext(path), ".csv"):
		rows, title, err = readCSV(path)
	default:
		rows, title = textUtil.File2MapArray(path, "\t", nil)
	}
	if err != nil {
		return nil, fmt.Errorf("metadata sheet %s: %w", path, err)
	}
	for _, col := range []string{key, name} {
		if !contains(title, col) {
			return nil, fmt.Errorf("metadata sheet %s: %w: %q", path, ErrNoColumn, col)
		}
	}
	return ParseMeta(rows, key, name)
}

// ParseMeta builds Meta from sheet rows. Rows without a key are skipped,
// a key on more than one row is an error.
func ParseMeta(rows []map[string]string, key, name string) (Meta, error) {
	var meta = make(Meta)
	for _, item := range rows {
		k := strings.TrimSpace(item[key])
		if k == "" {
			continue
		}
		if _, ok := meta[k]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, k)
		}
		meta[k] = strings.TrimSpace(item[name])
	}
	return meta, nil
}

func readCSV(path string) ([]map[string]string, []string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer simple_util.DeferClose(file)

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	rows, title := records2MapArray(records)
	return rows, title, nil
}

func readXlsx(path string) ([]map[string]string, []string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	// first sheet
	var sheet string
	var index int
	for i, name := range f.GetSheetMap() {
		if sheet == "" || i < index {
			sheet, index = name, i
		}
	}
	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, err
	}
	rows, title := records2MapArray(records)
	return rows, title, nil
}

// records2MapArray keys each record after the first by the first record
func records2MapArray(records [][]string) (rows []map[string]string, title []string) {
	if len(records) == 0 {
		return
	}
	title = records[0]
	if len(title) > 0 {
		title[0] = strings.TrimPrefix(title[0], "\ufeff")
	}
	for _, record := range records[1:] {
		var item = make(map[string]string)
		for i, col := range title {
			if i < len(record) {
				item[col] = record[i]
			}
		}
		rows = append(rows, item)
	}
	return
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
