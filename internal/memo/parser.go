// Package memo extracts labeled notes from a note-taking app's CSV export.
//
// The export's first column is a "packed field": one cell holding several
// entries separated by embedded newlines, each entry shaped like
//
//	\id=<identifier> <label text>
//
// ParsePackedField recovers the label texts; Extract runs it over every row
// of an export and collects one Note per row that produced any text.
package memo

import "strings"

// EntryMarker is the literal prefix that marks an entry line.
const EntryMarker = `\id=`

// Separator joins the entries of one packed field into a single note text.
const Separator = " | "

// ParsePackedField returns the label texts encoded in field, in line order.
//
// A line qualifies when, after trimming, it begins with EntryMarker. The line
// is split once on the first space; the trimmed remainder is the label text.
// Lines without the marker, without a space, or with blank text are ignored.
// The remainder is not parsed further, so `\id=1 \id=2 x` yields `\id=2 x`.
func ParsePackedField(field string) []string {
	if field == "" {
		return nil
	}

	var entries []string
	for _, line := range strings.Split(field, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, EntryMarker) {
			continue
		}

		_, text, found := strings.Cut(line, " ")
		if !found {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			entries = append(entries, text)
		}
	}
	return entries
}

// JoinEntries joins parsed entries into one note text using Separator.
func JoinEntries(entries []string) string {
	return strings.Join(entries, Separator)
}
