// Copyright 2026 katsuya1128. All rights reserved.

// Package progress draws per-page progress lines. On a terminal the line is
// redrawn in place; on pipes and files nothing is drawn, so logs stay clean.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Reporter writes progress lines to a stream.
type Reporter struct {
	w     io.Writer
	live  bool
	dirty bool
	p     *message.Printer
}

// New returns a Reporter on w. Progress is only drawn when w is a terminal.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w, live: isTerminal(w), p: message.NewPrinter(language.English)}
}

// NewLive returns a Reporter that always draws, regardless of w's kind.
func NewLive(w io.Writer) *Reporter {
	return &Reporter{w: w, live: true, p: message.NewPrinter(language.English)}
}

// Discard returns a Reporter that draws nothing.
func Discard() *Reporter {
	return &Reporter{w: io.Discard, p: message.NewPrinter(language.English)}
}

// Page reports that page current (1-based) of total in path is being read.
func (r *Reporter) Page(path string, current, total int) {
	if !r.live {
		return
	}
	r.p.Fprintf(r.w, "\r%s: %d/%d", path, current, total)
	r.dirty = true
}

// Done ends the current progress line.
func (r *Reporter) Done() {
	if !r.dirty {
		return
	}
	fmt.Fprintln(r.w)
	r.dirty = false
}

// Number formats n with thousands separators.
func (r *Reporter) Number(n int) string {
	return r.p.Sprintf("%d", n)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
