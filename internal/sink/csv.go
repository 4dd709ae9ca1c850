package sink

import (
	"encoding/csv"
	"fmt"

	"github.com/spf13/afero"

	"github.com/dbsmedya/gotabular/internal/grouper"
)

// CSVWriter writes groups as RFC 4180 CSV files.
type CSVWriter struct {
	fs afero.Fs
}

// NewCSVWriter creates a CSVWriter on the given filesystem.
func NewCSVWriter(fs afero.Fs) *CSVWriter {
	return &CSVWriter{fs: fs}
}

// Ext returns the artifact extension without the dot.
func (w *CSVWriter) Ext() string {
	return "csv"
}

// WriteGroup writes the group to path with the same row/column layout as the
// Excel writer.
func (w *CSVWriter) WriteGroup(g *grouper.Group, path string) error {
	out, err := w.fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer out.Close()

	cw := csv.NewWriter(out)
	cols := g.Columns()
	if err := cw.Write(cols); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := make([]string, len(cols))
	for _, rec := range g.Records {
		for i, name := range cols {
			if v, ok := rec.Get(name); ok {
				row[i] = formatCell(v)
			} else {
				row[i] = ""
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}
