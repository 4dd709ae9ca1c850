package sink

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"

	"github.com/dbsmedya/gotabular/internal/grouper"
)

const sheetName = "Sheet1"

// ExcelWriter writes groups as .xlsx workbooks with a single sheet.
type ExcelWriter struct {
	fs afero.Fs
}

// NewExcelWriter creates an ExcelWriter on the given filesystem.
func NewExcelWriter(fs afero.Fs) *ExcelWriter {
	return &ExcelWriter{fs: fs}
}

// Ext returns the artifact extension without the dot.
func (w *ExcelWriter) Ext() string {
	return "xlsx"
}

// WriteGroup writes the group to path: header row first, then one row per
// record in assignment order. Fields a record lacks stay as empty cells.
func (w *ExcelWriter) WriteGroup(g *grouper.Group, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	cols := g.Columns()
	for c, name := range cols {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return fmt.Errorf("failed to compute header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for r, rec := range g.Records {
		for c, name := range cols {
			v, ok := rec.Get(name)
			if !ok || v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("failed to compute cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, cellValue(v)); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	out, err := w.fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer out.Close()

	if err := f.Write(out); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// cellValue maps leaf values onto types excelize stores natively; sequences
// are rendered as text.
func cellValue(v any) any {
	switch v.(type) {
	case string, bool, int64, float64:
		return v
	default:
		return formatCell(v)
	}
}
