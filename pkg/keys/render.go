package keys

import (
	"strings"

	rfansi "github.com/muesli/reflow/ansi"
)

// KeyBindRenderer lays out key binds in columns.
type KeyBindRenderer struct {
	columns [][]KeyBind
}

// AddColumn adds a column. Empty columns are ignored.
func (r *KeyBindRenderer) AddColumn(kbs ...KeyBind) {
	if len(kbs) > 0 {
		r.columns = append(r.columns, kbs)
	}
}

// Render splits width evenly between the columns.
func (r *KeyBindRenderer) Render(width int) string {
	n := len(r.columns)
	if n == 0 {
		return ""
	}

	colWidth := max(6, width/n-2)
	remainder := width % n

	cols := make([][]string, n)
	rows := 0

	for i, col := range r.columns {
		cols[i] = column(colWidth, col)
		rows = max(rows, len(cols[i]))
	}

	lines := make([]string, 0, rows)
	for row := range rows {
		var sb strings.Builder

		for _, col := range cols {
			cell := strings.Repeat(" ", colWidth)
			if row < len(col) {
				cell = col[row]
			}

			sb.WriteString(" " + cell + " ")
		}

		sb.WriteString(strings.Repeat(" ", remainder))
		lines = append(lines, sb.String())
	}

	return strings.Join(lines, "\n")
}

func column(width int, kbs []KeyBind) []string {
	keyWidth := 0
	for _, kb := range kbs {
		keyWidth = max(keyWidth, rfansi.PrintableRuneWidth(kb.String()))
	}

	var rows []string
	for _, kb := range kbs {
		if row := kb.StringRow(keyWidth, width-keyWidth); row != "" {
			rows = append(rows, row)
		}
	}

	return rows
}
