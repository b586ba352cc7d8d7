package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dgallion1/mdview/internal/doctree"
	"github.com/google/go-cmp/cmp"
)

const guide = "# Guide\n\nWelcome to the guide.\n\n## Install\n\n## Install\n"

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender_Stdout(t *testing.T) {
	path := writeTemp(t, "guide.md", guide)
	out, err := run(t, "render", path, "--search", "welcome")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"<title>guide - Markdown Viewer</title>",
		"Table of Contents",
		"<mark>Welcome</mark> to the guide.",
		"1 matches",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
	if strings.Contains(out, "<form") {
		t.Error("expected standalone page without forms")
	}
}

func TestRender_OutFileAndOptions(t *testing.T) {
	path := writeTemp(t, "guide.md", guide)
	dest := filepath.Join(t.TempDir(), "guide.html")

	out, err := run(t, "render", path, "--out", dest, "--indent", "20", "--unique-anchors")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("expected nothing on stdout, got %q", out)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	page := string(data)
	if !strings.Contains(page, `<h2 id="install-1">Install</h2>`) {
		t.Error("expected suffixed duplicate anchor")
	}
	if !strings.Contains(page, "margin-left:40px;") {
		t.Error("expected second level indented by 40px")
	}
}

func TestRender_UnsupportedFile(t *testing.T) {
	path := writeTemp(t, "data.bin", "xx")
	if _, err := run(t, "render", path); err == nil {
		t.Error("expected error for unsupported file type")
	}
}

func TestRender_MissingArg(t *testing.T) {
	if _, err := run(t, "render"); err == nil {
		t.Error("expected error without a file argument")
	}
}

func TestHeadings_Flat(t *testing.T) {
	path := writeTemp(t, "guide.md", guide)
	out, err := run(t, "headings", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []doctree.Heading
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	want := []doctree.Heading{
		{Title: "Guide", Level: 1, Anchor: "guide"},
		{Title: "Install", Level: 2, Anchor: "install"},
		{Title: "Install", Level: 2, Anchor: "install"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("headings mismatch (-want +got):\n%s", diff)
	}
}

func TestHeadings_Tree(t *testing.T) {
	path := writeTemp(t, "guide.md", guide)
	out, err := run(t, "headings", path, "--tree")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var forest []*doctree.Node
	if err := json.Unmarshal([]byte(out), &forest); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(forest) != 1 || len(forest[0].Children) != 2 {
		t.Fatalf("unexpected forest: %s", out)
	}
}

func TestHeadings_Empty(t *testing.T) {
	path := writeTemp(t, "plain.txt", "no headings here\n")
	out, err := run(t, "headings", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("expected empty list, got %q", out)
	}
}
