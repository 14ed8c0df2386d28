package fastp

import (
	"github.com/360EntSecGroup-Skylar/excelize/v2"
)

// Sheet is the worksheet SaveXlsx writes to
const Sheet = "Sheet1"

// SaveXlsx writes the table to an xlsx workbook at path.
// Unlike WriteTSV, absent counts are written as "NA".
func (t *Table) SaveXlsx(path string) error {
	f := excelize.NewFile()

	var title = []interface{}{"sample"}
	for _, category := range Categories {
		title = append(title, string(category))
	}
	if err := f.SetSheetRow(Sheet, "A1", &title); err != nil {
		return err
	}

	for i, sample := range t.Samples {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		var row = []interface{}{sample.Name}
		for _, category := range Categories {
			count := sample.Counts[category]
			if count.Present {
				row = append(row, count.N)
			} else {
				row = append(row, count.String())
			}
		}
		if err := f.SetSheetRow(Sheet, axis, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
