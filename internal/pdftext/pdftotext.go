// Copyright 2026 katsuya1128. All rights reserved.

package pdftext

import (
	"fmt"
	"os/exec"
	"strconv"

	"github.com/katsuya1128/pdfassort/pkg/types"
)

const binPdftotext = "pdftotext"

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Output(name string, args ...string) ([]byte, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osExecutor) Output(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// Pdftotext runs poppler's pdftotext once per page.
type Pdftotext struct {
	bin  string
	exec executor
}

// NewPdftotext returns a Pdftotext extractor, or an error when the binary is
// not on PATH.
func NewPdftotext() (*Pdftotext, error) {
	return newPdftotext(osExecutor{})
}

func newPdftotext(e executor) (*Pdftotext, error) {
	bin, err := e.LookPath(binPdftotext)
	if err != nil {
		return nil, fmt.Errorf("%s not available: %w", binPdftotext, err)
	}
	return &Pdftotext{bin: bin, exec: e}, nil
}

// Name implements Extractor.
func (*Pdftotext) Name() string { return string(types.ExtractorPdftotext) }

// Open implements Extractor. The file is only read when pages are requested.
func (p *Pdftotext) Open(path string) (Document, error) {
	return &pdftotextDoc{bin: p.bin, exec: p.exec, path: path}, nil
}

type pdftotextDoc struct {
	bin  string
	exec executor
	path string
}

func (d *pdftotextDoc) PageText(index int) (string, error) {
	if index < 0 {
		return "", fmt.Errorf("page %d: %w", index+1, ErrPageRange)
	}
	n := strconv.Itoa(index + 1)
	out, err := d.exec.Output(d.bin, "-q", "-f", n, "-l", n, "-enc", "UTF-8", d.path, "-")
	if err != nil {
		return "", fmt.Errorf("%s page %s of %s: %w", binPdftotext, n, d.path, err)
	}
	return string(out), nil
}

func (d *pdftotextDoc) Close() error { return nil }
