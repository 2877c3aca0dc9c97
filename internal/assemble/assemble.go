// Copyright 2026 katsuya1128. All rights reserved.

// Package assemble writes one output PDF per matched keyword, built from
// the pages recorded in a match.Index.
package assemble

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/katsuya1128/pdfassort/internal/keytable"
	"github.com/katsuya1128/pdfassort/internal/match"
	"github.com/katsuya1128/pdfassort/pkg/types"
)

// Result holds the outcome of an assembly run.
type Result struct {
	Written int
	Failed  int
	Files   []types.OutputFile
}

// Total returns the number of outputs attempted.
func (r Result) Total() int {
	return r.Written + r.Failed
}

// Assembler turns index entries into output documents.
type Assembler struct {
	Builder Builder
	Logger  *slog.Logger
}

// Assemble builds one document per keyword in index, in index order, and
// writes it to outDir under the keyword's output name. A failed keyword is
// logged and counted; the remaining keywords are still built.
func (a *Assembler) Assemble(table *keytable.Table, index *match.Index, outDir string) (Result, error) {
	var result Result
	for _, kw := range index.Keywords() {
		name, ok := table.OutputName(kw)
		if !ok {
			return result, fmt.Errorf("keyword %q matched but has no output name", kw)
		}

		outPath := OutputPath(outDir, name)
		runs := Runs(index, kw)
		file := types.OutputFile{Keyword: kw, Path: outPath, Pages: index.PageCount(kw)}

		if err := a.Builder.Build(outPath, kw, runs); err != nil {
			a.logger().Error("writing output", "keyword", kw, "file", outPath, "err", err)
			file.Error = err.Error()
			result.Failed++
		} else {
			a.logger().Info("wrote", "keyword", kw, "file", outPath, "pages", file.Pages, "sources", len(runs))
			result.Written++
		}
		result.Files = append(result.Files, file)
	}
	return result, nil
}

// Runs returns the page runs recorded for keyword, one per source in
// discovery order.
func Runs(index *match.Index, keyword string) []PageRun {
	var runs []PageRun
	for _, src := range index.Sources(keyword) {
		runs = append(runs, PageRun{Path: src, Pages: index.Pages(keyword, src)})
	}
	return runs
}

// OutputPath joins dir and name, adding a .pdf extension unless name
// already has one in any letter case.
func OutputPath(dir, name string) string {
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name += ".pdf"
	}
	return filepath.Join(dir, name)
}

func (a *Assembler) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.Default()
	}
	return a.Logger
}
