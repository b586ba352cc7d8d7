package source

import "testing"

func TestPagesMarkdown(t *testing.T) {
	text := "Cover text\f\f  \n# not a heading\nbody  \f\nLast"
	got := pagesMarkdown(splitPages(text))
	want := "## Page 1\n\nCover text\n\n## Page 3\n\n\\# not a heading\nbody\n\n## Page 4\n\nLast\n"
	if got != want {
		t.Errorf("unexpected markdown:\n got %q\nwant %q", got, want)
	}
}

func TestPagesMarkdown_Empty(t *testing.T) {
	if got := pagesMarkdown(splitPages("")); got != "" {
		t.Errorf("expected empty markdown, got %q", got)
	}
}
