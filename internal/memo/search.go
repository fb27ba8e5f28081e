package memo

import "strings"

// Search returns the notes whose text contains term, ignoring case. Both
// sides are lowercased with strings.ToLower, so the comparison follows
// Unicode simple case mapping; scripts without case (kana, kanji) match
// exactly. Returned notes keep their original numbers.
func Search(notes []Note, term string) []Note {
	needle := strings.ToLower(term)

	hits := []Note{}
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Text), needle) {
			hits = append(hits, n)
		}
	}
	return hits
}
