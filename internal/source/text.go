package source

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// TextDecoder handles Markdown and plain text files, which need no
// conversion beyond UTF-8 validation.
type TextDecoder struct{}

func (d *TextDecoder) Decode(r io.Reader, filename string) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("decode %s: %w", filename, ErrEncoding)
	}

	return &Document{
		Title:    titleFromFilename(filename),
		Markdown: string(data),
	}, nil
}
