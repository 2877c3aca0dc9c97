// Copyright 2026 katsuya1128. All rights reserved.

package types

// KeyTableConfig holds settings for loading the keyword CSV.
type KeyTableConfig struct {
	// Path is the CSV file location.
	Path string `json:"path" yaml:"path"`

	// SkipHeader discards the first row (default true).
	SkipHeader bool `json:"skip_header" yaml:"skip_header"`

	// DetectCharset guesses the text encoding from the file contents
	// instead of using Encoding.
	DetectCharset bool `json:"detect_charset" yaml:"detect_charset"`

	// Encoding is the fixed charset name used when DetectCharset is off
	// (e.g. "utf-8", "shift_jis"; default "utf-8").
	Encoding string `json:"encoding" yaml:"encoding"`
}

// ExtractorBackend identifies the page text extraction library.
type ExtractorBackend string

const (
	ExtractorLedongthuc ExtractorBackend = "ledongthuc"
	ExtractorRSC        ExtractorBackend = "rsc"
	ExtractorPdftotext  ExtractorBackend = "pdftotext"
)

// ScanConfig holds settings for the page scanning stage.
type ScanConfig struct {
	// Patterns are the PDF paths or glob patterns given on the command line.
	Patterns []string `json:"patterns" yaml:"patterns"`

	// FastMode records every page of a document whose path contains a
	// keyword and skips text extraction for it (default true).
	FastMode bool `json:"fast_mode" yaml:"fast_mode"`

	// Extractor selects the text extraction backend (default ledongthuc).
	Extractor ExtractorBackend `json:"extractor" yaml:"extractor"`
}

// OutputConfig holds settings for the assembly stage.
type OutputConfig struct {
	// Dir is the directory receiving the per-keyword PDFs (default ".").
	Dir string `json:"dir" yaml:"dir"`

	// DryRun scans and reports without writing any PDF.
	DryRun bool `json:"dry_run" yaml:"dry_run"`

	// ReportPath, when set, receives a YAML report of the run.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`
}

// LogConfig holds settings for diagnostics.
type LogConfig struct {
	// Verbosity is the -v count: 1 dumps the match index, 2 enables debug logs.
	Verbosity int `json:"verbosity" yaml:"verbosity"`

	// ErrorLogPath duplicates warnings and errors into this file when set.
	ErrorLogPath string `json:"error_log_path,omitempty" yaml:"error_log_path,omitempty"`
}

// AssortConfig groups all stage configurations for one run.
type AssortConfig struct {
	KeyTable KeyTableConfig `json:"key_table" yaml:"key_table"`
	Scan     ScanConfig     `json:"scan" yaml:"scan"`
	Output   OutputConfig   `json:"output" yaml:"output"`
	Log      LogConfig      `json:"log" yaml:"log"`
}
