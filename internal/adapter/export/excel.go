package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const maxSheetName = 31

// GenerateExcel renders t as a single-sheet workbook and returns the file
// contents.
func GenerateExcel(t Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := t.Title
	if len([]rune(sheetName)) > maxSheetName {
		sheetName = string([]rune(sheetName)[:maxSheetName])
	}
	if sheetName == "" {
		sheetName = "Relatório"
	}
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	ncols := len(t.Headers)
	if ncols == 0 {
		return nil, fmt.Errorf("table has no columns")
	}
	lastCol, err := excelize.ColumnNumberToName(ncols)
	if err != nil {
		return nil, fmt.Errorf("last column: %w", err)
	}

	for i := 1; i <= ncols; i++ {
		col, _ := excelize.ColumnNumberToName(i)
		width := float64(8 * t.widthAt(i-1))
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	bodyStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders()})
	if err != nil {
		return nil, fmt.Errorf("create body style: %w", err)
	}
	summaryStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}})
	if err != nil {
		return nil, fmt.Errorf("create summary style: %w", err)
	}

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(t.Title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge subtitle: %w", err)
	}
	f.SetCellValue(sheetName, "A2", sanitizeExcelCell(t.Subtitle))

	// Header on row 4, data from row 5.
	for i, h := range t.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A4", lastCol+"4", headerStyle)

	row := 5
	for _, r := range t.Rows {
		for i := 0; i < ncols && i < len(r); i++ {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			v := r[i]
			if t.isFreeText(i) {
				v = sanitizeExcelCell(v)
			}
			f.SetCellValue(sheetName, cell, v)
		}
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), bodyStyle)
		row++
	}

	row++
	for _, s := range t.Summary {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), s.Label)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), s.Value)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), summaryStyle)
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

func (t Table) widthAt(i int) int {
	if i < len(t.Widths) && t.Widths[i] > 0 {
		return t.Widths[i] * 2
	}
	return 2
}

func (t Table) isFreeText(i int) bool {
	return i < len(t.FreeText) && t.FreeText[i]
}

// sanitizeExcelCell prefixes leading formula characters with a quote so
// user-entered text is never evaluated by spreadsheet software.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
