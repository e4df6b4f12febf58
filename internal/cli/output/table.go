package output

import (
	"io"
	"text/tabwriter"
)

// Table represents tabular data.
type Table struct {
	Headers []string
	Rows    [][]string
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render renders the table to the writer.
func (t *Table) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if len(t.Headers) > 0 {
		writeCells(tw, t.Headers)
	}
	for _, row := range t.Rows {
		writeCells(tw, row)
	}

	return tw.Flush()
}

func writeCells(w io.Writer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			w.Write([]byte("\t"))
		}
		w.Write([]byte(cell))
	}
	w.Write([]byte("\n"))
}
