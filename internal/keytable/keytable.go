// Copyright 2026 katsuya1128. All rights reserved.

// Package keytable loads the keyword to output-file mapping from a CSV file.
//
// Each row contributes keyword = column 1 and output name = column 2; any
// further columns are ignored. A keyword that appears again replaces the
// earlier output name but keeps its original position, so iteration order
// is the order in which keywords were first seen.
package keytable

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katsuya1128/pdfassort/pkg/types"
)

// DefaultEncoding is used when charset detection is off and no encoding is
// configured.
const DefaultEncoding = "utf-8"

// Options controls how a key table is read.
type Options struct {
	// SkipHeader discards the first row.
	SkipHeader bool
	// DetectCharset guesses the encoding from the raw bytes.
	DetectCharset bool
	// Encoding is the fixed charset used when DetectCharset is false.
	Encoding string
	// Comma is the field delimiter; zero means ','.
	Comma rune
}

// DefaultOptions returns the defaults: skip the header, UTF-8, comma
// separated.
func DefaultOptions() Options {
	return Options{SkipHeader: true, Encoding: DefaultEncoding, Comma: ','}
}

// MalformedRowError reports a CSV row that cannot produce a keyword entry.
type MalformedRowError struct {
	Line    int
	Columns int
	Reason  string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row at line %d (%d column(s)): %s", e.Line, e.Columns, e.Reason)
}

// Table is an ordered keyword to output-name mapping.
type Table struct {
	entries  []types.KeywordEntry
	index    map[string]int
	encoding string
}

// New returns an empty table.
func New() *Table {
	return &Table{index: make(map[string]int)}
}

// Set registers keyword with outputName. A known keyword keeps its position.
func (t *Table) Set(keyword, outputName string) {
	if i, ok := t.index[keyword]; ok {
		t.entries[i].OutputName = outputName
		return
	}
	t.index[keyword] = len(t.entries)
	t.entries = append(t.entries, types.KeywordEntry{Keyword: keyword, OutputName: outputName})
}

// Len returns the number of distinct keywords.
func (t *Table) Len() int { return len(t.entries) }

// Keywords returns the keywords in first-seen order.
func (t *Table) Keywords() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Keyword
	}
	return out
}

// Entries returns a copy of the entries in first-seen order.
func (t *Table) Entries() []types.KeywordEntry {
	out := make([]types.KeywordEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// OutputName returns the output file name registered for keyword.
func (t *Table) OutputName(keyword string) (string, bool) {
	i, ok := t.index[keyword]
	if !ok {
		return "", false
	}
	return t.entries[i].OutputName, true
}

// Encoding returns the charset the table was decoded with.
func (t *Table) Encoding() string { return t.encoding }

// Load reads and parses the CSV file at path.
func Load(path string, opts Options) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading key table %s: %w", path, err)
	}
	t, err := Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("parsing key table %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes raw CSV bytes into a table.
func Parse(data []byte, opts Options) (*Table, error) {
	r, name, err := decode(data, opts)
	if err != nil {
		return nil, err
	}

	// Blank lines are skipped by the reader; they are not short rows.
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}

	t := New()
	t.encoding = name

	first := true
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}
		if first {
			first = false
			if opts.SkipHeader {
				continue
			}
		}

		line, _ := cr.FieldPos(0)
		switch {
		case len(row) < 2:
			return nil, &MalformedRowError{Line: line, Columns: len(row), Reason: "need keyword and output file name"}
		case row[0] == "":
			return nil, &MalformedRowError{Line: line, Columns: len(row), Reason: "empty keyword"}
		}
		t.Set(row[0], row[1])
	}
	return t, nil
}

// decode wraps data in a reader that yields UTF-8 text.
func decode(data []byte, opts Options) (io.Reader, string, error) {
	name := opts.Encoding
	if opts.DetectCharset {
		detected, err := DetectCharset(data)
		if err != nil {
			return nil, "", err
		}
		name = detected
	}
	if name == "" {
		name = DefaultEncoding
	}

	dec, err := decoderFor(name)
	if err != nil {
		return nil, "", err
	}
	return dec.Reader(bytes.NewReader(data)), name, nil
}
