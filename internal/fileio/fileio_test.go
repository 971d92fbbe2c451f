package fileio_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"

	"apt-report/internal/fileio"
)

func TestOpenReaderUnsupported(t *testing.T) {
	_, err := fileio.OpenReader(strings.NewReader("x"), "listing.pdf")
	assert.Error(t, err)
}

func TestOpenReaderCSV(t *testing.T) {
	csv := "Статус,Площа\nвільно,45.5\n"
	wb, err := fileio.OpenReader(strings.NewReader(csv), "listings.csv")
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"listings"}, wb.SheetNames())

	grid, err := wb.Grid("listings")
	require.NoError(t, err)
	require.Len(t, grid, 2)
	assert.Equal(t, []string{"Статус", "Площа"}, grid[0])
	assert.Equal(t, []string{"вільно", "45.5"}, grid[1])

	_, err = wb.Grid("інший")
	assert.Error(t, err)
}

func TestOpenXLSXRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listings.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "ComplexA"))
	require.NoError(t, f.SetCellValue("ComplexA", "A1", "Статус"))
	require.NoError(t, f.SetCellValue("ComplexA", "B1", "Площа"))
	require.NoError(t, f.SetCellValue("ComplexA", "A2", "вільно"))
	require.NoError(t, f.SetCellValue("ComplexA", "B2", 45.5))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	wb, err := fileio.Open(path)
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"ComplexA"}, wb.SheetNames())
	grid, err := wb.Grid("ComplexA")
	require.NoError(t, err)
	require.Len(t, grid, 2)
	assert.Equal(t, "Статус", grid[0][0])
	assert.Equal(t, "вільно", grid[1][0])
}

func TestWriteTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.xlsx")
	headers := []string{"GROUP", "ROOMS", "MIN_AREA"}
	rows := [][]string{
		{"ComplexA", "1", "45.5"},
		{"ComplexA", "2", "58.0"},
	}

	require.NoError(t, fileio.WriteTable(path, "Summary", headers, rows))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, headers, got[0])
	assert.Equal(t, rows[0], got[1])
	assert.Equal(t, rows[1], got[2])
}
