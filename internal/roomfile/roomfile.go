package roomfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/neatops/pulsectl/internal/bulk"
)

// Required and annotated column names.
const (
	ColLocationID = "locationId"
	ColName       = "name"
	ColDEC        = "DEC"
)

// File is a loaded room import file.
type File struct {
	Path   string
	Header []string
	Rows   [][]string

	xlsx  bool
	sheet string // sheet the rows came from, XLSX only
}

// Read loads a room file and validates its header. XLSX is selected by
// the .xlsx extension; anything else is read as CSV.
func Read(path string) (*File, error) {
	var f *File
	var err error
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		f, err = readXLSX(path)
	} else {
		f, err = readCSV(path)
	}
	if err != nil {
		return nil, err
	}

	if err := f.validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) validate() error {
	if len(f.Header) == 0 {
		return fmt.Errorf("%s: file is empty or malformed", f.Path)
	}

	var missing []string
	for _, col := range []string{ColLocationID, ColName} {
		if f.columnIndex(col) < 0 {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: missing required columns: %s", f.Path, strings.Join(missing, ", "))
	}

	if len(f.Rows) == 0 {
		return fmt.Errorf("%s: file contains no data rows", f.Path)
	}
	return nil
}

// columnIndex returns the header position of col, or -1.
func (f *File) columnIndex(col string) int {
	for i, h := range f.Header {
		if h == col {
			return i
		}
	}
	return -1
}

// Records maps the rows to batch records in row order.
func (f *File) Records() []bulk.Record {
	locIdx := f.columnIndex(ColLocationID)
	nameIdx := f.columnIndex(ColName)
	decIdx := f.columnIndex(ColDEC)

	records := make([]bulk.Record, 0, len(f.Rows))
	for _, row := range f.Rows {
		records = append(records, bulk.Record{
			LocationID: cell(row, locIdx),
			Name:       cell(row, nameIdx),
			DEC:        cell(row, decIdx),
		})
	}
	return records
}

// Annotate rewrites the file with the DEC column set from the
// outcomes. All original fields are copied verbatim; the DEC column is
// appended to the header when absent. Failed rows get an empty DEC.
func (f *File) Annotate(outcomes []bulk.Outcome) error {
	if len(outcomes) != len(f.Rows) {
		return fmt.Errorf("outcome count %d does not match row count %d", len(outcomes), len(f.Rows))
	}

	header := f.Header
	decIdx := f.columnIndex(ColDEC)
	if decIdx < 0 {
		header = append(append([]string{}, f.Header...), ColDEC)
		decIdx = len(header) - 1
	}

	rows := make([][]string, 0, len(f.Rows))
	for i, row := range f.Rows {
		updated := make([]string, len(header))
		copy(updated, row)
		updated[decIdx] = outcomes[i].DEC
		rows = append(rows, updated)
	}

	if f.xlsx {
		return writeXLSX(f.Path, f.sheet, header, rows)
	}
	return writeCSV(f.Path, header, rows)
}

// cell returns row[i], tolerating short rows and a missing column.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// ListImportFiles returns the room file candidates in dir, sorted.
func ListImportFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".csv" || ext == ".xlsx" {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}
