// Copyright 2026 katsuya1128. All rights reserved.

package pdftext

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/katsuya1128/pdfassort/pkg/types"
)

// Ledongthuc extracts page text with github.com/ledongthuc/pdf.
type Ledongthuc struct{}

// Name implements Extractor.
func (Ledongthuc) Name() string { return string(types.ExtractorLedongthuc) }

// Open implements Extractor.
func (Ledongthuc) Open(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	doc := &ledongthucDoc{file: f, fonts: make(map[string]*pdf.Font)}
	err = guardOpen(path, func() error {
		r, err := pdf.NewReader(f, fi.Size())
		if err != nil {
			return fmt.Errorf("open pdf %s: %w", path, err)
		}
		doc.reader = r
		doc.numPages = r.NumPage()
		return nil
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	return doc, nil
}

type ledongthucDoc struct {
	file     *os.File
	reader   *pdf.Reader
	numPages int
	// fonts is shared across pages; documents usually reuse a few fonts.
	fonts map[string]*pdf.Font
}

func (d *ledongthucDoc) PageText(index int) (string, error) {
	if err := checkRange(index, d.numPages); err != nil {
		return "", err
	}
	return guard(index, func() (string, error) {
		p := d.reader.Page(index + 1)
		if p.V.IsNull() {
			return "", nil
		}
		for _, name := range p.Fonts() {
			if _, ok := d.fonts[name]; !ok {
				f := p.Font(name)
				d.fonts[name] = &f
			}
		}
		text, err := p.GetPlainText(d.fonts)
		if err != nil {
			return "", fmt.Errorf("read pdf page %d: %w", index+1, err)
		}
		return text, nil
	})
}

func (d *ledongthucDoc) Close() error {
	return d.file.Close()
}
