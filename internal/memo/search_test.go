package memo

import "testing"

func TestSearchCaseInsensitive(t *testing.T) {
	notes := []Note{
		{Number: 1, Text: "Hello World"},
		{Number: 2, Text: "something else"},
		{Number: 3, Text: "say HELLO again"},
	}

	for _, term := range []string{"hello", "WORLD", "HeLLo"} {
		t.Run(term, func(t *testing.T) {
			hits := Search(notes, term)
			if len(hits) == 0 || hits[0].Number != 1 {
				t.Fatalf("expected note 1 to match %q, got %+v", term, hits)
			}
		})
	}

	hits := Search(notes, "hello")
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if hits[1].Number != 3 {
		t.Errorf("expected original numbering to be kept, got %d", hits[1].Number)
	}
}

func TestSearchUnicode(t *testing.T) {
	notes := []Note{
		{Number: 1, Text: "CSSマスターへの道"},
		{Number: 2, Text: "ΣΟΦΙΑ notes"},
		{Number: 3, Text: "ÉCOLE"},
	}

	tests := []struct {
		term string
		want int
	}{
		{"cssマスター", 1},
		{"σοφια", 2},
		{"école", 3},
	}
	for _, tt := range tests {
		hits := Search(notes, tt.term)
		if len(hits) != 1 || hits[0].Number != tt.want {
			t.Errorf("Search(%q) = %+v, want note %d", tt.term, hits, tt.want)
		}
	}
}

func TestSearchNoMatch(t *testing.T) {
	if hits := Search([]Note{{Number: 1, Text: "abc"}}, "xyz"); len(hits) != 0 {
		t.Fatalf("expected no hits, got %+v", hits)
	}
}
