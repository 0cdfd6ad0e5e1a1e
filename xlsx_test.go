package pdf2md

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportTablesXLSX(t *testing.T) {
	result := &DocumentResult{
		SourceName: "report",
		Pages: []PageResult{
			{PageNumber: 1}, // no tables, no sheet
			{
				PageNumber: 2,
				Tables: [][][]string{
					{{"A", "B"}, {"1", "2"}},
					{{"X"}},
				},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "tables.xlsx")
	require.NoError(t, ExportTablesXLSX(result, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Page 2"}, f.GetSheetList())

	a1, err := f.GetCellValue("Page 2", "A1")
	require.NoError(t, err)
	assert.Equal(t, "A", a1)

	b2, err := f.GetCellValue("Page 2", "B2")
	require.NoError(t, err)
	assert.Equal(t, "2", b2)

	// Second table lands after a blank spacer row.
	a4, err := f.GetCellValue("Page 2", "A4")
	require.NoError(t, err)
	assert.Equal(t, "X", a4)
}

func TestExportTablesXLSXNoTables(t *testing.T) {
	result := &DocumentResult{
		SourceName: "empty",
		Pages:      []PageResult{{PageNumber: 1}},
	}

	path := filepath.Join(t.TempDir(), "tables.xlsx")
	require.NoError(t, ExportTablesXLSX(result, path))
	assert.FileExists(t, path)
}
