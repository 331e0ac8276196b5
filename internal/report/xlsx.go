// filepath: internal/report/xlsx.go
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/360EntSecGroup-Skylar/excelize"
)

// XLSXContentType is the MIME type of RenderXLSX output.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RenderXLSX writes the table as a single-sheet workbook. Numeric cells stay
// numeric and text is written in full.
func RenderXLSX(w io.Writer, t *Table) error {
	if len(t.Columns) > 26 {
		return fmt.Errorf("too many columns for spreadsheet: %d", len(t.Columns))
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", SheetName)

	headerStyle, err := f.NewStyle(headerStyleJSON(t.Style))
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, col := range t.Columns {
		f.SetCellStr(SheetName, cellName(i, 1), col.Header)
		f.SetColWidth(SheetName, colName(i), colName(i), col.Width)
	}
	f.SetCellStyle(SheetName, cellName(0, 1), cellName(len(t.Columns)-1, 1), headerStyle)

	for r, row := range t.Rows {
		for c, cell := range row {
			axis := cellName(c, r+2)
			switch cell.Kind {
			case KindInteger, KindMoney:
				f.SetCellInt(SheetName, axis, int(cell.Number))
			default:
				f.SetCellStr(SheetName, axis, cell.Text)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return nil
}

func headerStyleJSON(s Style) string {
	return fmt.Sprintf(
		`{"fill":{"type":"pattern","color":["%s"],"pattern":1},"font":{"bold":%t,"color":"%s"},"alignment":{"horizontal":"center"}}`,
		strings.ToUpper(s.HeaderFill), s.HeaderBold, strings.ToUpper(s.HeaderText),
	)
}

// colName maps a 0-based column index to its letter.
func colName(i int) string {
	return string(rune('A' + i))
}

func cellName(col, row int) string {
	return fmt.Sprintf("%s%d", colName(col), row)
}
