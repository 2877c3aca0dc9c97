// Copyright 2026 katsuya1128. All rights reserved.

package pdftext

import (
	"fmt"
	"os"
	"strings"

	rpdf "rsc.io/pdf"

	"github.com/katsuya1128/pdfassort/pkg/types"
)

// RSC extracts page text with rsc.io/pdf, concatenating text runs in content
// stream order and starting a new line whenever the baseline moves.
type RSC struct{}

// Name implements Extractor.
func (RSC) Name() string { return string(types.ExtractorRSC) }

// Open implements Extractor.
func (RSC) Open(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	doc := &rscDoc{file: f}
	err = guardOpen(path, func() error {
		r, err := rpdf.NewReader(f, fi.Size())
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

type rscDoc struct {
	file     *os.File
	reader   *rpdf.Reader
	numPages int
}

func (d *rscDoc) PageText(index int) (string, error) {
	if err := checkRange(index, d.numPages); err != nil {
		return "", err
	}
	return guard(index, func() (string, error) {
		p := d.reader.Page(index + 1)
		if p.V.IsNull() {
			return "", nil
		}
		var b strings.Builder
		var lastY float64
		for i, t := range p.Content().Text {
			if i > 0 && t.Y != lastY {
				b.WriteByte('\n')
			}
			b.WriteString(t.S)
			lastY = t.Y
		}
		return b.String(), nil
	})
}

func (d *rscDoc) Close() error {
	return d.file.Close()
}
