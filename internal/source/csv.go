package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVDecoder renders CSV files as Markdown tables. Rows are grouped into
// sections so large files get a navigable outline.
type CSVDecoder struct {
	RowsPerSection int // 0 means 50
}

func (d *CSVDecoder) Decode(r io.Reader, filename string) (*Document, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w: %w", ErrMalformed, err)
	}

	doc := &Document{Title: titleFromFilename(filename)}
	if len(records) == 0 {
		return doc, nil
	}

	// First row is headers.
	headers := records[0]
	dataRows := records[1:]

	batchSize := d.RowsPerSection
	if batchSize <= 0 {
		batchSize = 50
	}

	blocks := []string{atxHeading(1, doc.Title)}
	if len(dataRows) <= batchSize {
		blocks = append(blocks, markdownTable(headers, dataRows))
	} else {
		for i := 0; i < len(dataRows); i += batchSize {
			end := min(i+batchSize, len(dataRows))
			blocks = append(blocks,
				atxHeading(2, fmt.Sprintf("Rows %d-%d", i+2, end+1)), // 1-indexed, skip header
				markdownTable(headers, dataRows[i:end]),
			)
		}
	}

	doc.Markdown = joinBlocks(blocks)
	return doc, nil
}

func markdownTable(headers []string, rows [][]string) string {
	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("|")
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(" " + escapeCell(cell) + " |")
		}
		b.WriteString("\n")
	}

	writeRow(headers)
	b.WriteString("|" + strings.Repeat(" --- |", len(headers)) + "\n")
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}

func escapeCell(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
