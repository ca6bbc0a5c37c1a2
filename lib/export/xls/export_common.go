package xlsexport

import (
	"strconv"

	"github.com/xuri/excelize/v2"
)

const reportFont = "Times New Roman"

func newCellStyle(f *excelize.File, bold bool, horizontal string, wrap bool) (int, error) {
	return f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: horizontal,
			Vertical:   "top",
			WrapText:   wrap,
		},
		Font: &excelize.Font{
			Bold:   bold,
			Family: reportFont,
			Size:   11,
		},
	})
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for idx, value := range values {
		cell, err := excelize.CoordinatesToCellName(idx+1, row)
		if err != nil {
			return err
		}
		if err = f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}

func styleRange(f *excelize.File, sheet string, style, colFrom, rowFrom, colTo, rowTo int) error {
	cellFirst, err := excelize.CoordinatesToCellName(colFrom, rowFrom)
	if err != nil {
		return err
	}
	cellLast, err := excelize.CoordinatesToCellName(colTo, rowTo)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cellFirst, cellLast, style)
}

// writeHeader пишет заголовок в строку row+1 и задает ширину колонок по widths
func writeHeader(f *excelize.File, sheet string, row int, headers []string, widths []float64) (int, error) {
	row++
	style, err := newCellStyle(f, true, "center", false)
	if err != nil {
		return row, err
	}
	if err = styleRange(f, sheet, style, 1, row, len(headers), row); err != nil {
		return row, err
	}
	for idx, width := range widths {
		col, err := excelize.ColumnNumberToName(idx + 1)
		if err != nil {
			return row, err
		}
		if err = f.SetColWidth(sheet, col, col, width); err != nil {
			return row, err
		}
	}
	values := make([]interface{}, 0, len(headers))
	for _, header := range headers {
		values = append(values, header)
	}
	if err = writeRow(f, sheet, row, values); err != nil {
		return row, err
	}
	if err = f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      row,
		TopLeftCell: "A" + strconv.Itoa(row+1),
		ActivePane:  "bottomLeft",
	}); err != nil {
		return row, err
	}
	return row, nil
}

func applyDataCellStyle(f *excelize.File, sheet string, colFrom, rowFrom, colTo, rowTo int) error {
	style, err := newCellStyle(f, false, "left", true)
	if err != nil {
		return err
	}
	return styleRange(f, sheet, style, colFrom, rowFrom, colTo, rowTo)
}
