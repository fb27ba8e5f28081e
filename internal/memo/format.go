package memo

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// CSVHeader is the header row of a note CSV: sequence number, note text.
var CSVHeader = []string{"番号", "メモテキスト"}

// Line formats a note the way the text output and console preview show it.
func Line(n Note) string {
	return fmt.Sprintf("メモ %d: %s", n.Number, n.Text)
}

// WriteText writes one Line per note.
func WriteText(w io.Writer, notes []Note) error {
	bw := bufio.NewWriter(w)
	for _, n := range notes {
		if _, err := bw.WriteString(Line(n) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// CSVRecords converts notes into CSV data rows (without header).
func CSVRecords(notes []Note) [][]string {
	records := make([][]string, len(notes))
	for i, n := range notes {
		records[i] = []string{strconv.Itoa(n.Number), n.Text}
	}
	return records
}

// Preview shortens text to limit runes followed by "...".
// A limit of 0 or less returns text unchanged.
func Preview(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
