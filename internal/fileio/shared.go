package fileio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Workbook — книга как набор именованных листов-сеток. Никакой интерпретации
// заголовков здесь нет: лист отдаётся как есть, строками ячеек, а поиск
// шапки и колонок — забота пайплайна.
type Workbook interface {
	// SheetNames — имена листов в порядке файла.
	SheetNames() []string
	// Grid — лист как срез строк; ошибка, если листа нет в книге.
	Grid(sheet string) ([][]string, error)
	Close() error
}

// Open открывает книгу с диска, формат — по расширению.
func Open(path string) (Workbook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return OpenReader(f, filepath.Base(path))
}

// OpenReader — выберет парсер по расширению имени файла.
// CSV считается книгой из одного листа, названного по имени файла.
func OpenReader(r io.Reader, filename string) (Workbook, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx":
		return openXLSX(r)
	case ".xls":
		return openXLS(r)
	case ".csv":
		return openCSV(r, strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
	default:
		return nil, fmt.Errorf("unsupported file: %s", filename)
	}
}

// gridBook — книга, прочитанная в память целиком (.xls и .csv).
type gridBook struct {
	names []string
	grids map[string][][]string
}

func (b *gridBook) SheetNames() []string { return b.names }

func (b *gridBook) Grid(sheet string) ([][]string, error) {
	g, ok := b.grids[sheet]
	if !ok {
		return nil, fmt.Errorf("sheet %q not found", sheet)
	}
	return g, nil
}

func (b *gridBook) Close() error { return nil }
