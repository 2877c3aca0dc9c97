// Copyright 2026 katsuya1128. All rights reserved.

// Package types defines shared data structures for the pdfassort pipeline:
// keyword table entries, stage configuration, and the records written to
// the YAML run report.
package types

// KeywordEntry maps a search keyword to the name of the PDF that collects
// its matching pages.
type KeywordEntry struct {
	// Keyword is the literal, case-sensitive substring searched for in page
	// text and file paths. Unique within a key table.
	Keyword string `json:"keyword" yaml:"keyword"`

	// OutputName is the output file name from the CSV's second column. The
	// ".pdf" suffix is enforced at assembly time, not here.
	OutputName string `json:"output_name" yaml:"output_name"`
}
