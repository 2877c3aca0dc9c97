// Copyright 2026 katsuya1128. All rights reserved.

// Package assort runs the whole batch: load the key table, resolve the
// inputs, scan every document, then assemble one PDF per matched keyword.
package assort

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katsuya1128/pdfassort/internal/assemble"
	"github.com/katsuya1128/pdfassort/internal/inputs"
	"github.com/katsuya1128/pdfassort/internal/keytable"
	"github.com/katsuya1128/pdfassort/internal/match"
	"github.com/katsuya1128/pdfassort/internal/pdfdoc"
	"github.com/katsuya1128/pdfassort/internal/pdftext"
	"github.com/katsuya1128/pdfassort/internal/progress"
	"github.com/katsuya1128/pdfassort/internal/scan"
	"github.com/katsuya1128/pdfassort/pkg/types"
)

// Runner holds the collaborators of a run. Nil fields get production
// defaults.
type Runner struct {
	Prober    pdfdoc.Prober
	Extractor pdftext.Extractor
	Builder   assemble.Builder
	Progress  *progress.Reporter
	Logger    *slog.Logger
	// Out receives the human-readable summary.
	Out io.Writer
}

// Run executes a batch with default collaborators.
func Run(cfg types.AssortConfig, w io.Writer, logger *slog.Logger) (types.RunSummary, error) {
	r := &Runner{Out: w, Logger: logger}
	return r.Run(cfg)
}

// Run executes a batch. Only setup failures are returned as errors: an
// unreadable key table, a pattern that matches nothing, an unknown
// extractor, or an output directory that cannot be created. Problems with
// single files, pages or outputs are logged and counted in the summary.
func (r *Runner) Run(cfg types.AssortConfig) (types.RunSummary, error) {
	var summary types.RunSummary
	if err := r.defaults(cfg); err != nil {
		return summary, err
	}

	table, err := keytable.Load(cfg.KeyTable.Path, keytable.Options{
		SkipHeader:    cfg.KeyTable.SkipHeader,
		DetectCharset: cfg.KeyTable.DetectCharset,
		Encoding:      cfg.KeyTable.Encoding,
	})
	if err != nil {
		return summary, err
	}
	summary.Keywords = table.Len()
	r.Logger.Info("loaded key table", "file", cfg.KeyTable.Path, "keywords", table.Len(), "encoding", table.Encoding())

	paths, err := inputs.Expand(cfg.Scan.Patterns)
	if err != nil {
		return summary, err
	}
	summary.Inputs = len(paths)

	index := match.New()
	scanner := &scan.Scanner{
		Prober:    r.Prober,
		Extractor: r.Extractor,
		FastPath:  cfg.Scan.FastMode,
		Logger:    r.Logger,
		Progress:  r.Progress,
	}
	batch := scanner.ScanAll(paths, table, index)
	summary.Scanned = batch.Scanned
	summary.FastMatched = batch.FastMatched
	summary.Skipped = batch.Skipped
	summary.PageErrors = batch.PageErrors

	if cfg.Log.Verbosity >= 1 {
		DumpIndex(r.Out, index)
	}

	var outputs []types.OutputFile
	if cfg.Output.DryRun {
		for _, kw := range index.Keywords() {
			name, _ := table.OutputName(kw)
			outputs = append(outputs, types.OutputFile{
				Keyword: kw,
				Path:    assemble.OutputPath(cfg.Output.Dir, name),
				Pages:   index.PageCount(kw),
			})
		}
	} else {
		if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
			return summary, fmt.Errorf("creating output directory %s: %w", cfg.Output.Dir, err)
		}
		a := &assemble.Assembler{Builder: r.Builder, Logger: r.Logger}
		res, err := a.Assemble(table, index, cfg.Output.Dir)
		if err != nil {
			return summary, err
		}
		summary.Written = res.Written
		summary.Failed = res.Failed
		outputs = res.Files
	}
	summary.Unmatched = index.Missing(table.Keywords())

	r.printSummary(cfg, summary, outputs)

	if cfg.Output.ReportPath != "" {
		if err := WriteReport(cfg.Output.ReportPath, cfg, index, outputs, summary); err != nil {
			return summary, err
		}
		r.Logger.Info("wrote report", "file", cfg.Output.ReportPath)
	}
	return summary, nil
}

func (r *Runner) defaults(cfg types.AssortConfig) error {
	if r.Out == nil {
		r.Out = os.Stdout
	}
	if r.Logger == nil {
		r.Logger = slog.Default()
	}
	if r.Progress == nil {
		r.Progress = progress.New(os.Stderr)
	}
	if r.Prober == nil {
		r.Prober = pdfdoc.NewProber()
	}
	if r.Builder == nil {
		r.Builder = assemble.NewBuilder()
	}
	if r.Extractor == nil {
		ex, err := pdftext.New(cfg.Scan.Extractor)
		if err != nil {
			return err
		}
		r.Extractor = ex
	}
	return nil
}

func (r *Runner) printSummary(cfg types.AssortConfig, s types.RunSummary, outputs []types.OutputFile) {
	n := r.Progress.Number
	fmt.Fprintf(r.Out, "Batch summary: %s inputs, %s scanned, %s matched by name, %s skipped, %s page errors\n",
		n(s.Inputs), n(s.Scanned), n(s.FastMatched), n(s.Skipped), n(s.PageErrors))

	if cfg.Output.DryRun {
		for _, o := range outputs {
			fmt.Fprintf(r.Out, "would write: %s (%s pages)\n", o.Path, n(o.Pages))
		}
		fmt.Fprintf(r.Out, "files to write: %s/%s\n", n(len(outputs)), n(s.Keywords))
	} else {
		fmt.Fprintf(r.Out, "files written: %s/%s\n", n(s.Written), n(s.Keywords))
	}

	if len(s.Unmatched) > 0 {
		r.Logger.Warn("no pages matched", "keywords", strings.Join(s.Unmatched, ", "))
	}
}

// DumpIndex prints the match index, one keyword per block, with 1-based
// page numbers.
func DumpIndex(w io.Writer, index *match.Index) {
	for _, kw := range index.Keywords() {
		fmt.Fprintf(w, "%s: %d pages\n", kw, index.PageCount(kw))
		for _, src := range index.Sources(kw) {
			pages := index.Pages(kw, src)
			nums := make([]string, len(pages))
			for i, p := range pages {
				nums[i] = fmt.Sprint(p + 1)
			}
			fmt.Fprintf(w, "  %s: %s\n", src, strings.Join(nums, ", "))
		}
	}
}
