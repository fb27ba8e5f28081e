package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// schemaIndent is the left margin of a table's column listing.
const schemaIndent = "     "

// ColumnRow is one column of a table schema as shown by inspect.
type ColumnRow struct {
	Name        string
	Type        string
	Constraints []string // e.g. "PRIMARY KEY", "NOT NULL"
}

// PlainLine renders the row as "- name (TYPE) PRIMARY KEY NOT NULL".
func (r ColumnRow) PlainLine() string {
	var sb strings.Builder
	sb.WriteString("- ")
	sb.WriteString(r.Name)
	sb.WriteString(" (")
	sb.WriteString(r.Type)
	sb.WriteString(")")
	for _, c := range r.Constraints {
		sb.WriteString(" ")
		sb.WriteString(c)
	}
	return sb.String()
}

// SchemaTable renders a table's columns. On a terminal it draws a minimal
// lipgloss table; otherwise it prints one PlainLine per column so the output
// stays greppable.
func SchemaTable(d *DisplayContext, rows []ColumnRow) string {
	if len(rows) == 0 {
		return ""
	}

	if !d.IsTTY {
		var sb strings.Builder
		for _, r := range rows {
			sb.WriteString(schemaIndent)
			sb.WriteString(r.PlainLine())
			sb.WriteString("\n")
		}
		return sb.String()
	}

	tableRows := make([][]string, len(rows))
	for i, r := range rows {
		typ := r.Type
		if typ == "" {
			typ = "-"
		}
		tableRows[i] = []string{r.Name, typ, strings.Join(r.Constraints, ", ")}
	}

	tbl := table.New().
		Border(lipgloss.Border{
			Top:    "─",
			Bottom: "─",
			Left:   "",
			Right:  "",
			Middle: "─",
		}).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(true).
		BorderRow(false).
		BorderColumn(false).
		BorderStyle(Muted).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle()
			switch {
			case row == table.HeaderRow:
				style = Bold
			case col == 1 || col == 2:
				style = Muted
			}
			if col < 2 {
				style = style.PaddingRight(2)
			}
			return style
		}).
		Headers("column", "type", "constraints").
		Rows(tableRows...)

	var sb strings.Builder
	for _, line := range strings.Split(tbl.Render(), "\n") {
		sb.WriteString(schemaIndent)
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

// TruncateWithEllipsis shortens s to at most maxLen runes, ending with "..."
// when anything was cut.
func TruncateWithEllipsis(s string, maxLen int) string {
	runes := []rune(s)
	if maxLen <= 0 || len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
