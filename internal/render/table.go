// Package render draws record groups as console tables for preview output.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/gotabular/internal/grouper"
)

// GroupHeading returns the colored one-line summary shown above a table.
func GroupHeading(g *grouper.Group) string {
	return color.Bold.Sprintf("Group %d: %d row(s), %d column(s)",
		g.ID, len(g.Records), len(g.Columns()))
}

// GroupTable renders the group as an ASCII table: one header row of column
// names, one row per record, missing fields left blank. Widths are computed
// with display width, not byte length, so wide runes align.
func GroupTable(g *grouper.Group) string {
	cols := g.Columns()
	if len(cols) == 0 {
		return ""
	}

	rows := make([][]string, 0, len(g.Records)+1)
	rows = append(rows, cols)
	for _, rec := range g.Records {
		row := make([]string, len(cols))
		for i, name := range cols {
			if v, ok := rec.Get(name); ok {
				row[i] = cellText(v)
			}
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(cols))
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeSeparator(&b, widths)
	writeRow(&b, rows[0], widths)
	writeSeparator(&b, widths)
	for _, row := range rows[1:] {
		writeRow(&b, row, widths)
	}
	writeSeparator(&b, widths)
	return b.String()
}

func writeSeparator(b *strings.Builder, widths []int) {
	for _, w := range widths {
		b.WriteByte('+')
		b.WriteString(strings.Repeat("-", w+2))
	}
	b.WriteString("+\n")
}

func writeRow(b *strings.Builder, row []string, widths []int) {
	for i, cell := range row {
		pad := widths[i] - runewidth.StringWidth(cell)
		b.WriteString("| ")
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteByte(' ')
	}
	b.WriteString("|\n")
}

func cellText(v any) string {
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
