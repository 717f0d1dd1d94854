// Package ingest loads the campaign datasets (CSV tables and GeoJSON
// boundaries) from a pluggable source and decodes them into the row and
// feature types the domain layer consumes.
package ingest

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"

	"github.com/reachlab/geodash/pkg/errors"
	"github.com/reachlab/geodash/pkg/types/tabular"
)

// candidateDelimiters are tried against the header line; the one with the
// most occurrences wins. Exports from spreadsheet tools vary.
var candidateDelimiters = []rune{',', '\t', ';', '|'}

// DecodeCSV reads a delimited table into header-keyed rows. The first
// non-empty line is the header; every cell is kept as a string and left for
// the domain normalizers to interpret. Ragged rows are tolerated: missing
// trailing cells are simply absent from the row.
func DecodeCSV(r io.Reader) ([]tabular.Row, error) {
	br := bufio.NewReader(r)

	headerLine, err := peekLine(br)
	if err != nil {
		return nil, errors.New(errors.ErrCodeDatasetMalformed, "dataset has no header line").WithCause(err)
	}

	cr := csv.NewReader(br)
	cr.Comma = detectDelimiter(headerLine)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatasetMalformed, "failed to parse dataset")
	}
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeDatasetMalformed, "dataset is empty")
	}

	header := records[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows := make([]tabular.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		if isBlankRecord(record) {
			continue
		}
		row := make(tabular.Row, len(header))
		for i, cell := range record {
			if i >= len(header) || header[i] == "" {
				continue
			}
			row[header[i]] = cell
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// peekLine returns the first line without consuming it from the reader.
func peekLine(br *bufio.Reader) (string, error) {
	var line []byte
	for size := 1024; size <= 64*1024; size *= 2 {
		peeked, err := br.Peek(size)
		if idx := indexNewline(peeked); idx >= 0 {
			line = peeked[:idx]
			break
		}
		if err != nil {
			if len(peeked) == 0 {
				return "", io.ErrUnexpectedEOF
			}
			line = peeked
			break
		}
	}
	return string(line), nil
}

func indexNewline(b []byte) int {
	for i, c := range b {
		if c == '\n' || c == '\r' {
			return i
		}
	}
	return -1
}

// detectDelimiter counts candidate delimiters in the header line and picks
// the most frequent, defaulting to comma.
func detectDelimiter(header string) rune {
	best := ','
	bestCount := 0
	for _, d := range candidateDelimiters {
		count := strings.Count(header, string(d))
		if count > bestCount {
			best = d
			bestCount = count
		}
	}
	return best
}

func isBlankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
