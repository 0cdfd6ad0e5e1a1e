package pdf2md

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportTablesXLSX writes every table extracted during conversion to a
// single workbook at path: one sheet per page that contains tables, with the
// page's grids stacked and separated by a blank row. Pages without tables
// get no sheet. Cell text is sanitized the same way as the Markdown output.
func ExportTablesXLSX(result *DocumentResult, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	wroteSheet := false
	for _, page := range result.Pages {
		if len(page.Tables) == 0 {
			continue
		}

		sheet := fmt.Sprintf("Page %d", page.PageNumber)
		if !wroteSheet {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("create sheet %q: %w", sheet, err)
			}
		}
		wroteSheet = true

		row := 1
		for _, table := range page.Tables {
			for _, cells := range table {
				for col, cell := range cells {
					ref, err := excelize.CoordinatesToCellName(col+1, row)
					if err != nil {
						return fmt.Errorf("cell reference: %w", err)
					}
					if err := f.SetCellValue(sheet, ref, sanitizeCell(cell)); err != nil {
						return fmt.Errorf("set cell %s: %w", ref, err)
					}
				}
				row++
			}
			row++ // blank row between tables
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
