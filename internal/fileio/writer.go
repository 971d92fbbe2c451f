package fileio

import (
	"unicode/utf8"

	excelize "github.com/xuri/excelize/v2"
)

// WriteTable пишет таблицу в один лист нового .xlsx, подгоняя ширину
// колонок под содержимое. Файл создаётся только в случае успеха: до
// SaveAs на диске ничего не появляется.
func WriteTable(path, sheet string, headers []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheet)

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return err
	}

	for ri, row := range rows {
		for ci, v := range row {
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	// ширина = самая длинная ячейка колонки + небольшой запас, с потолком
	for ci := range headers {
		width := utf8.RuneCountInString(headers[ci])
		for _, row := range rows {
			if ci < len(row) {
				if n := utf8.RuneCountInString(row[ci]); n > width {
					width = n
				}
			}
		}
		width += 2
		if width > 50 {
			width = 50
		}
		col, err := excelize.ColumnNumberToName(ci + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, float64(width)); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
