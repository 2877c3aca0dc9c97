// Copyright 2026 katsuya1128. All rights reserved.

// Package pdfdoc inspects PDF files before they are scanned: it checks the
// file signature, reads the cross-reference structure, and reports the page
// count or why the file cannot be used.
package pdfdoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// sniffLen is how far into a file the %PDF- marker is searched for. Readers
// tolerate leading garbage before the header, so the check does too.
const sniffLen = 1024

var (
	// ErrNotPDF is returned for files without a PDF header or with a
	// structure that cannot be parsed as PDF.
	ErrNotPDF = errors.New("not a PDF file")

	// ErrEncrypted is returned for password-protected or encrypted files.
	ErrEncrypted = errors.New("encrypted PDF")
)

// Info describes a probed document.
type Info struct {
	Path      string
	Pages     int
	Encrypted bool
}

// Prober inspects a document before its pages are scanned.
type Prober interface {
	// Probe opens the file at path and returns its page count. Files that
	// cannot be used produce an error wrapping ErrNotPDF or ErrEncrypted.
	Probe(path string) (Info, error)
}

// PDFCPUProber probes documents with pdfcpu in relaxed validation mode.
type PDFCPUProber struct {
	conf *model.Configuration
}

// NewProber returns a Prober backed by pdfcpu.
func NewProber() *PDFCPUProber {
	return &PDFCPUProber{conf: NewConfiguration()}
}

var disableConfigDir sync.Once

// NewConfiguration returns the pdfcpu configuration shared by the probe and
// the assembler: relaxed validation and no on-disk pdfcpu config directory.
func NewConfiguration() *model.Configuration {
	disableConfigDir.Do(api.DisableConfigDir)
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// Probe implements Prober.
func (p *PDFCPUProber) Probe(path string) (Info, error) {
	info := Info{Path: path}

	f, err := os.Open(path)
	if err != nil {
		return info, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if err := SniffHeader(f); err != nil {
		return info, fmt.Errorf("%s: %w", path, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return info, fmt.Errorf("rewinding %s: %w", path, err)
	}

	ctx, err := api.ReadValidateAndOptimize(f, p.conf)
	if err != nil {
		classified := classify(err)
		info.Encrypted = errors.Is(classified, ErrEncrypted)
		return info, fmt.Errorf("reading %s: %w", path, classified)
	}
	if ctx.Encrypt != nil {
		info.Encrypted = true
		return info, fmt.Errorf("%s: %w", path, ErrEncrypted)
	}

	info.Pages = ctx.PageCount
	return info, nil
}

// SniffHeader checks that r starts with a PDF signature.
func SniffHeader(r io.Reader) error {
	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading header: %w", err)
	}
	if !bytes.Contains(buf[:n], []byte("%PDF-")) {
		return ErrNotPDF
	}
	return nil
}

// classify maps pdfcpu read failures onto the package sentinels. pdfcpu does
// not export typed errors for these cases, so the message is inspected.
func classify(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "password"), strings.Contains(msg, "encrypt"):
		return fmt.Errorf("%w: %v", ErrEncrypted, err)
	default:
		return fmt.Errorf("%w: %v", ErrNotPDF, err)
	}
}
