package fileio

import (
	"bytes"
	"io"

	excelize "github.com/xuri/excelize/v2"
)

type xlsxBook struct {
	f *excelize.File
}

func openXLSX(r io.Reader) (Workbook, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return &xlsxBook{f: f}, nil
}

func (b *xlsxBook) SheetNames() []string { return b.f.GetSheetList() }

func (b *xlsxBook) Grid(sheet string) ([][]string, error) {
	return b.f.GetRows(sheet)
}

func (b *xlsxBook) Close() error { return b.f.Close() }
