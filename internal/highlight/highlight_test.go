package highlight

import "testing"

func TestHighlight(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		query  string
		want   string
	}{
		{"empty query", "Hello World", "", "Hello World"},
		{"case insensitive", "Hello World", "world", "Hello <mark>World</mark>"},
		{"all occurrences", "go Go GO", "go", "<mark>go</mark> <mark>Go</mark> <mark>GO</mark>"},
		{"no match", "Hello", "xyz", "Hello"},
		{"literal dot", "a.b axb", ".", "a<mark>.</mark>b axb"},
		{"literal brackets", "f(x) [y]", "(x)", "f<mark>(x)</mark> [y]"},
		{"literal star", "2*3 = 6", "*", "2<mark>*</mark>3 = 6"},
		{"inside tags", `<h1 id="intro">Intro</h1>`, "intro", `<h1 id="<mark>intro</mark>"><mark>Intro</mark></h1>`},
		{"unicode fold", "Straße STRASSE", "straße", "<mark>Straße</mark> STRASSE"},
		{"empty markup", "", "q", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Highlight(tt.markup, tt.query)
			if got != tt.want {
				t.Errorf("Highlight(%q, %q) = %q, want %q", tt.markup, tt.query, got, tt.want)
			}
		})
	}
}

func TestHighlight_EmptyQueryIdentity(t *testing.T) {
	for _, m := range []string{"", "<b>x</b>", "# Title\n\ntext", "\xff"} {
		if got := Highlight(m, ""); got != m {
			t.Errorf("expected %q unchanged, got %q", m, got)
		}
	}
}

func TestHighlight_MarkerQueryNotIdempotent(t *testing.T) {
	once := Highlight("mark", "mark")
	twice := Highlight(once, "mark")
	if once == twice {
		t.Errorf("expected re-highlighting with the marker word to change output, got %q", twice)
	}
}

func TestHighlight_InvalidUTF8Query(t *testing.T) {
	got := Highlight("abc", "\xff")
	if got != "abc" {
		t.Errorf("expected no match for invalid query, got %q", got)
	}
}

func TestCount(t *testing.T) {
	if got := Count("Go go gO", "GO"); got != 3 {
		t.Errorf("expected 3 matches, got %d", got)
	}
	if got := Count("aaaa", "aa"); got != 2 {
		t.Errorf("expected 2 non-overlapping matches, got %d", got)
	}
	if got := Count("anything", ""); got != 0 {
		t.Errorf("expected 0 for empty query, got %d", got)
	}
}
