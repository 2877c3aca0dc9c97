// Copyright 2026 katsuya1128. All rights reserved.

// Package scan decides, for each input PDF, which pages match which
// keywords, and records the result in a match.Index.
//
// A document whose path contains a keyword is taken whole for that keyword
// without reading its text (fast mode). Other documents are read page by
// page and each page's text is tested for every keyword. Per-file and
// per-page failures are logged and skipped; they never stop the batch.
package scan

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/katsuya1128/pdfassort/internal/keytable"
	"github.com/katsuya1128/pdfassort/internal/match"
	"github.com/katsuya1128/pdfassort/internal/pdfdoc"
	"github.com/katsuya1128/pdfassort/internal/pdftext"
	"github.com/katsuya1128/pdfassort/internal/progress"
)

// Mode reports how a document was scanned.
type Mode string

const (
	ModeFast    Mode = "fast"
	ModeContent Mode = "content"
	ModeSkipped Mode = "skipped"
)

// FileResult holds the outcome of scanning one document.
type FileResult struct {
	Path       string
	Mode       Mode
	Pages      int
	Matches    int // newly recorded (keyword, page) pairs
	PageErrors int
}

// BatchResult holds the outcome of scanning every input.
type BatchResult struct {
	Scanned     int
	FastMatched int
	Skipped     int
	PageErrors  int
	Files       []FileResult
}

// Total returns the number of documents processed.
func (r BatchResult) Total() int {
	return r.Scanned + r.FastMatched + r.Skipped
}

// Scanner matches documents against a key table.
type Scanner struct {
	Prober    pdfdoc.Prober
	Extractor pdftext.Extractor
	// FastPath enables filename matching.
	FastPath bool
	Logger   *slog.Logger
	Progress *progress.Reporter
}

// ScanFile scans the document at path and records its matches in index.
// The returned error describes why the document was skipped; the caller
// decides whether to log it.
func (s *Scanner) ScanFile(path string, table *keytable.Table, index *match.Index) (FileResult, error) {
	res := FileResult{Path: path, Mode: ModeSkipped}

	info, err := s.Prober.Probe(path)
	if err != nil {
		return res, err
	}
	res.Pages = info.Pages

	if s.FastPath && s.scanFast(path, info.Pages, table, index, &res) {
		res.Mode = ModeFast
		return res, nil
	}

	if err := s.scanContent(path, info.Pages, table, index, &res); err != nil {
		return res, err
	}
	res.Mode = ModeContent
	return res, nil
}

// scanFast records every page for each keyword contained in path. It
// reports whether any keyword matched.
func (s *Scanner) scanFast(path string, pages int, table *keytable.Table, index *match.Index, res *FileResult) bool {
	found := false
	for _, kw := range table.Keywords() {
		if !strings.Contains(path, kw) {
			continue
		}
		found = true
		for p := 0; p < pages; p++ {
			if index.Record(kw, path, p) {
				res.Matches++
			}
		}
		s.logger().Info("matched by file name", "file", path, "keyword", kw, "pages", pages)
	}
	return found
}

func (s *Scanner) scanContent(path string, pages int, table *keytable.Table, index *match.Index, res *FileResult) error {
	doc, err := s.Extractor.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s for text extraction: %w", path, err)
	}
	defer doc.Close()

	keywords := table.Keywords()
	prog := s.progress()
	defer prog.Done()

	for p := 0; p < pages; p++ {
		prog.Page(path, p+1, pages)

		text, err := doc.PageText(p)
		if err != nil {
			res.PageErrors++
			s.logger().Warn("skipping page", "file", path, "page", p+1, "err", err)
			continue
		}

		for _, kw := range keywords {
			before := index.PageCount(kw)
			if index.RecordIfContains(kw, text, path, p) {
				res.Matches += index.PageCount(kw) - before
				s.logger().Debug("keyword found", "file", path, "page", p+1, "keyword", kw)
			}
		}
	}
	return nil
}

// ScanAll scans paths in order, logging and counting skipped documents.
func (s *Scanner) ScanAll(paths []string, table *keytable.Table, index *match.Index) BatchResult {
	var result BatchResult
	for _, path := range paths {
		res, err := s.ScanFile(path, table, index)
		if err != nil {
			s.logger().Error("skipping file", "file", path, "err", err)
		}

		switch res.Mode {
		case ModeFast:
			result.FastMatched++
		case ModeContent:
			result.Scanned++
			s.logger().Info("scanned", "file", path, "pages", res.Pages, "matches", res.Matches)
		case ModeSkipped:
			result.Skipped++
		}
		result.PageErrors += res.PageErrors
		result.Files = append(result.Files, res)
	}
	return result
}

func (s *Scanner) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func (s *Scanner) progress() *progress.Reporter {
	if s.Progress == nil {
		return progress.Discard()
	}
	return s.Progress
}
