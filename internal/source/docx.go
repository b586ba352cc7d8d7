package source

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// DOCXDecoder handles .docx files. Paragraphs styled as headings become
// Markdown headings; other paragraphs become plain text blocks.
type DOCXDecoder struct{}

func (d *DOCXDecoder) Decode(r io.Reader, filename string) (*Document, error) {
	// go-docx needs a ReadSeeker+size, so write to temp file.
	tmp, err := os.CreateTemp("", "mdview-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, size)
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w: %w", ErrMalformed, err)
	}

	return &Document{
		Title:    titleFromFilename(filename),
		Markdown: docxMarkdown(doc.Document.Body.Items),
	}, nil
}

func docxMarkdown(items []interface{}) string {
	var blocks []string
	for _, item := range items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}

		text := docxParagraphText(para)
		if text == "" {
			continue
		}
		if level := docxHeadingLevel(para); level > 0 {
			blocks = append(blocks, atxHeading(level, text))
		} else {
			blocks = append(blocks, text)
		}
	}
	return joinBlocks(blocks)
}

// docxHeadingLevel maps "Heading1" / "heading 1" style names to a level.
// Word defines nine heading styles.
func docxHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", ""))
	if !strings.HasPrefix(style, "heading") {
		return 0
	}
	rest := strings.TrimPrefix(style, "heading")
	if len(rest) != 1 || rest[0] < '1' || rest[0] > '9' {
		return 0
	}
	return int(rest[0] - '0')
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
