package report

import (
	"Food-Wastage-Management/domain"
	"bytes"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const maxSheetNameLength = 31

func renderWorkbook(table domain.ReportTable) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(table.Name)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	for col, column := range table.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, column.Name); err != nil {
			return nil, err
		}
	}

	for r, row := range table.Rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, cellValue(value)); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cellValue(v any) any {
	if d, ok := v.(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return v
}

// sheetName strips characters excel rejects in sheet names.
func sheetName(name string) string {
	var b []rune
	for _, r := range name {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			continue
		}
		b = append(b, r)
	}
	if len(b) > maxSheetNameLength {
		b = b[:maxSheetNameLength]
	}
	if len(b) == 0 {
		return "Report"
	}
	return string(b)
}
