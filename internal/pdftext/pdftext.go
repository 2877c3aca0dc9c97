// Copyright 2026 katsuya1128. All rights reserved.

// Package pdftext extracts the visible text of single PDF pages.
//
// Layout analysis is left to the backing library; callers receive each page
// as one flattened string. Backends are selected by name so the CLI can fall
// back to an external tool when a producer makes the pure-Go readers slow.
package pdftext

import (
	"errors"
	"fmt"

	"github.com/katsuya1128/pdfassort/pkg/types"
)

// ErrPageRange is returned for a page index outside the document.
var ErrPageRange = errors.New("page index out of range")

// Extractor opens documents for page text extraction.
type Extractor interface {
	// Name returns the backend name.
	Name() string

	// Open prepares the document at path for PageText calls.
	Open(path string) (Document, error)
}

// Document yields the text of individual pages.
type Document interface {
	// PageText returns the text of the page at index (0-based).
	PageText(index int) (string, error)

	// Close releases the underlying file.
	Close() error
}

// New returns the extractor for backend. An empty backend selects the
// default pure-Go reader.
func New(backend types.ExtractorBackend) (Extractor, error) {
	switch backend {
	case "", types.ExtractorLedongthuc:
		return Ledongthuc{}, nil
	case types.ExtractorRSC:
		return RSC{}, nil
	case types.ExtractorPdftotext:
		return NewPdftotext()
	default:
		return nil, fmt.Errorf("unknown extractor backend %q (want %s, %s, or %s)",
			backend, types.ExtractorLedongthuc, types.ExtractorRSC, types.ExtractorPdftotext)
	}
}

// guard runs fn and turns a panic into an error. The pure-Go PDF readers
// panic on malformed content streams instead of returning errors.
func guard(index int, fn func() (string, error)) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("page %d: malformed content: %v", index+1, r)
		}
	}()
	return fn()
}

// guardOpen runs fn and turns a panic into an open error. Readers panic on
// broken trailers and cross-reference tables as well as on content.
func guardOpen(path string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("open pdf %s: malformed document: %v", path, r)
		}
	}()
	return fn()
}

func checkRange(index, numPages int) error {
	if index < 0 || index >= numPages {
		return fmt.Errorf("page %d of %d: %w", index+1, numPages, ErrPageRange)
	}
	return nil
}
