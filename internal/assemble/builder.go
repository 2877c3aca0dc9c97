// Copyright 2026 katsuya1128. All rights reserved.

package assemble

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/katsuya1128/pdfassort/internal/pdfdoc"
)

// PageRun is a sequence of pages (0-based) taken from one source document.
type PageRun struct {
	Path  string
	Pages []int
}

// Builder writes a new PDF made of the given page runs.
type Builder interface {
	// Build writes the pages of runs, in order, to outPath and sets the
	// document title. An existing file at outPath is replaced.
	Build(outPath, title string, runs []PageRun) error
}

// PDFCPUBuilder builds output documents with pdfcpu. Intermediate files are
// written to a scratch directory next to the output and the finished file
// is renamed into place, so a failed build never leaves a partial output.
type PDFCPUBuilder struct {
	conf *model.Configuration
}

// NewBuilder returns a Builder backed by pdfcpu.
func NewBuilder() *PDFCPUBuilder {
	return &PDFCPUBuilder{conf: pdfdoc.NewConfiguration()}
}

// Build implements Builder.
func (b *PDFCPUBuilder) Build(outPath, title string, runs []PageRun) error {
	if len(runs) == 0 {
		return fmt.Errorf("building %s: no pages", outPath)
	}

	scratch, err := os.MkdirTemp(filepath.Dir(outPath), ".pdfassort-*")
	if err != nil {
		return fmt.Errorf("creating scratch directory: %w", err)
	}
	defer os.RemoveAll(scratch)

	parts := make([]string, 0, len(runs))
	for i, run := range runs {
		part := filepath.Join(scratch, fmt.Sprintf("part-%03d.pdf", i))
		if err := api.CollectFile(run.Path, part, selection(run.Pages), b.conf); err != nil {
			return fmt.Errorf("collecting pages from %s: %w", run.Path, err)
		}
		parts = append(parts, part)
	}

	merged := parts[0]
	if len(parts) > 1 {
		merged = filepath.Join(scratch, "merged.pdf")
		if err := api.MergeCreateFile(parts, merged, false, b.conf); err != nil {
			return fmt.Errorf("merging %d sources: %w", len(parts), err)
		}
	}

	laidOut := filepath.Join(scratch, "layout.pdf")
	if err := api.SetPageLayoutFile(merged, laidOut, model.PageLayoutSinglePage, b.conf); err != nil {
		return fmt.Errorf("setting page layout: %w", err)
	}

	final := filepath.Join(scratch, "final.pdf")
	if err := api.AddPropertiesFile(laidOut, final, map[string]string{"Title": title}, b.conf); err != nil {
		return fmt.Errorf("setting title: %w", err)
	}

	if err := os.Rename(final, outPath); err != nil {
		return fmt.Errorf("renaming to %s: %w", outPath, err)
	}
	return nil
}

// selection converts 0-based page indices to pdfcpu page selectors.
func selection(pages []int) []string {
	out := make([]string, len(pages))
	for i, p := range pages {
		out[i] = strconv.Itoa(p + 1)
	}
	return out
}
