// Copyright 2026 katsuya1128. All rights reserved.

package assemble

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katsuya1128/pdfassort/internal/keytable"
	"github.com/katsuya1128/pdfassort/internal/logging"
	"github.com/katsuya1128/pdfassort/internal/match"
	"github.com/katsuya1128/pdfassort/internal/pdfdoc"
	"github.com/katsuya1128/pdfassort/internal/pdftext"
	"github.com/katsuya1128/pdfassort/internal/testpdf"
)

type buildCall struct {
	outPath string
	title   string
	runs    []PageRun
}

type fakeBuilder struct {
	calls []buildCall
	fail  map[string]error
}

func (f *fakeBuilder) Build(outPath, title string, runs []PageRun) error {
	f.calls = append(f.calls, buildCall{outPath, title, runs})
	return f.fail[title]
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"invoices", "out/invoices.pdf"},
		{"invoices.pdf", "out/invoices.pdf"},
		{"Receipts.PDF", "out/Receipts.PDF"},
		{"report.pdfx", "out/report.pdfx.pdf"},
		{"a.b", "out/a.b.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.want), OutputPath("out", tt.name))
		})
	}
}

func TestAssemble(t *testing.T) {
	table := keytable.New()
	table.Set("Invoice", "invoices")
	table.Set("Receipt", "receipts.pdf")
	table.Set("Memo", "memos")

	idx := match.New()
	idx.Record("Receipt", "b.pdf", 0)
	idx.Record("Invoice", "a.pdf", 2)
	idx.Record("Invoice", "b.pdf", 1)
	idx.Record("Invoice", "a.pdf", 0)

	fb := &fakeBuilder{}
	a := &Assembler{Builder: fb, Logger: logging.Discard()}

	got, err := a.Assemble(table, idx, "out")
	require.NoError(t, err)

	assert.Equal(t, 2, got.Written)
	assert.Zero(t, got.Failed)
	require.Len(t, fb.calls, 2)

	assert.Equal(t, filepath.Join("out", "receipts.pdf"), fb.calls[0].outPath)
	assert.Equal(t, "Receipt", fb.calls[0].title)

	assert.Equal(t, filepath.Join("out", "invoices.pdf"), fb.calls[1].outPath)
	assert.Equal(t, "Invoice", fb.calls[1].title)
	assert.Equal(t, []PageRun{
		{Path: "a.pdf", Pages: []int{2, 0}},
		{Path: "b.pdf", Pages: []int{1}},
	}, fb.calls[1].runs)

	require.Len(t, got.Files, 2)
	assert.Equal(t, 3, got.Files[1].Pages)
	assert.Empty(t, got.Files[1].Error)
}

func TestAssemble_FailureContinues(t *testing.T) {
	table := keytable.New()
	table.Set("A", "a")
	table.Set("B", "b")

	idx := match.New()
	idx.Record("A", "x.pdf", 0)
	idx.Record("B", "x.pdf", 1)

	fb := &fakeBuilder{fail: map[string]error{"A": errors.New("disk full")}}
	a := &Assembler{Builder: fb, Logger: logging.Discard()}

	got, err := a.Assemble(table, idx, "out")
	require.NoError(t, err)

	assert.Equal(t, 1, got.Written)
	assert.Equal(t, 1, got.Failed)
	assert.Equal(t, 2, got.Total())
	assert.Len(t, fb.calls, 2)
	assert.Equal(t, "disk full", got.Files[0].Error)
}

func TestAssemble_EmptyIndex(t *testing.T) {
	fb := &fakeBuilder{}
	a := &Assembler{Builder: fb, Logger: logging.Discard()}

	got, err := a.Assemble(keytable.New(), match.New(), "out")
	require.NoError(t, err)
	assert.Zero(t, got.Total())
	assert.Empty(t, fb.calls)
}

func TestAssemble_UnknownKeyword(t *testing.T) {
	idx := match.New()
	idx.Record("ghost", "x.pdf", 0)

	a := &Assembler{Builder: &fakeBuilder{}, Logger: logging.Discard()}
	_, err := a.Assemble(keytable.New(), idx, "out")
	require.Error(t, err)
}

func TestPDFCPUBuilder(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.pdf")
	b := filepath.Join(dir, "b.pdf")
	require.NoError(t, testpdf.WriteFile(a, "a1", "a2", "a3"))
	require.NoError(t, testpdf.WriteFile(b, "b1", "b2"))

	out := filepath.Join(dir, "out.pdf")
	require.NoError(t, os.WriteFile(out, []byte("stale"), 0o644))

	err := NewBuilder().Build(out, "Invoice", []PageRun{
		{Path: a, Pages: []int{2, 0}},
		{Path: b, Pages: []int{1}},
	})
	require.NoError(t, err)

	n, err := api.PageCountFile(out)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	ctx, err := api.ReadContextFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Invoice", ctx.Title)

	layout, err := api.PageLayoutFile(out, pdfdoc.NewConfiguration())
	require.NoError(t, err)
	require.NotNil(t, layout)
	assert.Equal(t, model.PageLayoutSinglePage, *layout)

	doc, err := pdftext.Ledongthuc{}.Open(out)
	require.NoError(t, err)
	defer doc.Close()
	for i, want := range []string{"a3", "a1", "b2"} {
		text, err := doc.PageText(i)
		require.NoError(t, err)
		assert.Contains(t, text, want)
	}

	leftovers, err := filepath.Glob(filepath.Join(dir, ".pdfassort-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestPDFCPUBuilder_SingleSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.pdf")
	require.NoError(t, testpdf.WriteFile(src, "one", "two"))

	out := filepath.Join(dir, "single.pdf")
	require.NoError(t, NewBuilder().Build(out, "one", []PageRun{{Path: src, Pages: []int{1}}}))

	n, err := api.PageCountFile(out)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPDFCPUBuilder_Errors(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.pdf")

	require.Error(t, NewBuilder().Build(out, "x", nil))

	err := NewBuilder().Build(out, "x", []PageRun{{Path: filepath.Join(dir, "missing.pdf"), Pages: []int{0}}})
	require.Error(t, err)
	assert.NoFileExists(t, out)
}
