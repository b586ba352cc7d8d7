package source

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFDecoder handles PDF files. It tries the Go library first,
// then falls back to pdftotext if available. Each page becomes a
// "Page N" section.
type PDFDecoder struct {
	FallbackPdftotext bool
}

func (d *PDFDecoder) Decode(r io.Reader, filename string) (*Document, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "mdview-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	text, err := extractPDFText(tmpPath)
	if err != nil && d.FallbackPdftotext {
		text, err = extractPdftotext(tmpPath)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w: %w", ErrMalformed, err)
	}

	return &Document{
		Title:    titleFromFilename(filename),
		Markdown: pagesMarkdown(splitPages(text)),
	}, nil
}

func extractPDFText(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		if i > 1 {
			buf.WriteString("\f") // Form feed as page separator.
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}

func extractPdftotext(path string) (string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}

func splitPages(text string) []string {
	return strings.Split(text, "\f")
}

// pagesMarkdown emits one "## Page N" section per non-empty page. Lines
// that would read as Markdown headings are escaped so only page headings
// reach the outline.
func pagesMarkdown(pages []string) string {
	var blocks []string
	for i, page := range pages {
		page = strings.TrimSpace(page)
		if page == "" {
			continue
		}
		lines := strings.Split(page, "\n")
		for j, l := range lines {
			if strings.HasPrefix(l, "#") {
				lines[j] = `\` + l
			}
		}
		blocks = append(blocks, atxHeading(2, fmt.Sprintf("Page %d", i+1)), strings.Join(lines, "\n"))
	}
	return joinBlocks(blocks)
}
