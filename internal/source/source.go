package source

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupported is returned for file types no decoder handles.
	ErrUnsupported = errors.New("unsupported file type")
	// ErrEncoding is returned when a text upload is not valid UTF-8.
	ErrEncoding = errors.New("document is not valid UTF-8")
	// ErrMalformed is returned when a structured format cannot be parsed.
	ErrMalformed = errors.New("malformed document")
)

// Document is an upload decoded into Markdown text.
type Document struct {
	Title    string // From metadata when the format has it, else the filename
	Markdown string
}

// Decoder converts raw upload bytes into Markdown.
type Decoder interface {
	Decode(r io.Reader, filename string) (*Document, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
	".html":     true,
	".htm":      true,
	".csv":      true,
	".pdf":      true,
	".docx":     true,
}

// Options tunes decoders that shell out or guess structure.
type Options struct {
	PDFFallbackPdftotext bool
}

// ForFile returns the appropriate decoder for a filename.
func ForFile(filename string, opts Options) (Decoder, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown", ".txt":
		return &TextDecoder{}, nil
	case ".csv":
		return &CSVDecoder{}, nil
	case ".html", ".htm":
		return &HTMLDecoder{}, nil
	case ".pdf":
		return &PDFDecoder{FallbackPdftotext: opts.PDFFallbackPdftotext}, nil
	case ".docx":
		return &DOCXDecoder{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}

// Decode picks a decoder by filename and runs it.
func Decode(r io.Reader, filename string, opts Options) (*Document, error) {
	d, err := ForFile(filename, opts)
	if err != nil {
		return nil, err
	}
	return d.Decode(r, filename)
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// titleFromFilename strips the directory and extension.
func titleFromFilename(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// joinBlocks joins non-empty Markdown blocks with blank lines.
func joinBlocks(blocks []string) string {
	var out []string
	for _, b := range blocks {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n\n") + "\n"
}

// atxHeading formats a Markdown heading line.
func atxHeading(level int, title string) string {
	return strings.Repeat("#", level) + " " + strings.Join(strings.Fields(title), " ")
}
