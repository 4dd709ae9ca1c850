// Package sink materializes record groups as tabular artifacts.
package sink

import (
	"fmt"
	"strconv"

	"github.com/spf13/afero"

	"github.com/dbsmedya/gotabular/internal/grouper"
)

// Writer writes one group as a tabular artifact: a header row of the group's
// columns and one row per record, with missing fields rendered as empty
// cells. Write failures must propagate to the caller, never be swallowed.
type Writer interface {
	WriteGroup(g *grouper.Group, path string) error
	Ext() string
}

// ForFormat returns the writer for a configured output format.
func ForFormat(format string, fs afero.Fs) (Writer, error) {
	switch format {
	case "xlsx", "":
		return NewExcelWriter(fs), nil
	case "csv":
		return NewCSVWriter(fs), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// formatCell renders a leaf value as text for text-based artifacts.
func formatCell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
