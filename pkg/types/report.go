// Copyright 2026 katsuya1128. All rights reserved.

package types

import "time"

// SourcePages lists the matched pages of one source document. Pages are
// 0-based and appear in the order they were recorded.
type SourcePages struct {
	Path  string `json:"path" yaml:"path"`
	Pages []int  `json:"pages" yaml:"pages,flow"`
}

// KeywordMatches is the serializable view of one keyword's entry in the
// match index.
type KeywordMatches struct {
	Keyword string        `json:"keyword" yaml:"keyword"`
	Sources []SourcePages `json:"sources" yaml:"sources"`
}

// OutputFile describes one assembled PDF.
type OutputFile struct {
	Keyword string `json:"keyword" yaml:"keyword"`
	Path    string `json:"path" yaml:"path"`
	Pages   int    `json:"pages" yaml:"pages"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// RunSummary holds the counts printed at the end of a run.
type RunSummary struct {
	Keywords    int      `json:"keywords" yaml:"keywords"`
	Inputs      int      `json:"inputs" yaml:"inputs"`
	Scanned     int      `json:"scanned" yaml:"scanned"`
	FastMatched int      `json:"fast_matched" yaml:"fast_matched"`
	Skipped     int      `json:"skipped" yaml:"skipped"`
	PageErrors  int      `json:"page_errors" yaml:"page_errors"`
	Written     int      `json:"written" yaml:"written"`
	Failed      int      `json:"failed" yaml:"failed"`
	Unmatched   []string `json:"unmatched,omitempty" yaml:"unmatched,omitempty"`
}

// Report is the on-disk record of a run, written with --report.
type Report struct {
	Config    AssortConfig     `json:"config" yaml:"config"`
	Matches   []KeywordMatches `json:"matches" yaml:"matches"`
	Outputs   []OutputFile     `json:"outputs,omitempty" yaml:"outputs,omitempty"`
	Summary   RunSummary       `json:"summary" yaml:"summary"`
	Timestamp time.Time        `json:"timestamp" yaml:"timestamp"`
}
