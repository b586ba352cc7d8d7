package source

import (
	"strings"
	"testing"
)

func TestCSVDecoder_SingleTable(t *testing.T) {
	input := "name,role\nAda,engineer\nLin,\"ops | infra\"\nSolo\n"
	d := &CSVDecoder{}
	doc, err := d.Decode(strings.NewReader(input), "team.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "# team\n\n| name | role |\n| --- | --- |\n| Ada | engineer |\n| Lin | ops \\| infra |\n| Solo |  |\n"
	if doc.Markdown != want {
		t.Errorf("unexpected markdown:\n got %q\nwant %q", doc.Markdown, want)
	}
}

func TestCSVDecoder_Sections(t *testing.T) {
	var b strings.Builder
	b.WriteString("n\n")
	for i := 0; i < 5; i++ {
		b.WriteString("x\n")
	}
	d := &CSVDecoder{RowsPerSection: 2}
	doc, err := d.Decode(strings.NewReader(b.String()), "rows.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, h := range []string{"## Rows 2-3", "## Rows 4-5", "## Rows 6-6"} {
		if !strings.Contains(doc.Markdown, h+"\n") {
			t.Errorf("expected section heading %q in %q", h, doc.Markdown)
		}
	}
}

func TestCSVDecoder_Empty(t *testing.T) {
	d := &CSVDecoder{}
	doc, err := d.Decode(strings.NewReader(""), "empty.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Markdown != "" {
		t.Errorf("expected empty markdown, got %q", doc.Markdown)
	}
}
