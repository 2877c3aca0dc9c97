// Copyright 2026 katsuya1128. All rights reserved.

// Package match accumulates keyword matches as
// keyword -> source document -> page indices.
//
// The index is filled by the scanner and read once by the assembler. It
// keeps first-discovery order at every level so that output documents are
// assembled in the order pages were found. An Index is not safe for
// concurrent use.
package match

import (
	"strings"

	"github.com/katsuya1128/pdfassort/pkg/types"
)

type sourceEntry struct {
	path  string
	pages []int
	seen  map[int]struct{}
}

type keywordEntry struct {
	sources []*sourceEntry
	byPath  map[string]*sourceEntry
}

// Index maps keywords to the pages that matched them.
type Index struct {
	order     []string
	byKeyword map[string]*keywordEntry
}

// New returns an empty index.
func New() *Index {
	return &Index{byKeyword: make(map[string]*keywordEntry)}
}

// Record adds page (0-based) of source under keyword. It reports whether a
// new entry was created; recording the same triple again is a no-op.
func (x *Index) Record(keyword, source string, page int) bool {
	kw, ok := x.byKeyword[keyword]
	if !ok {
		kw = &keywordEntry{byPath: make(map[string]*sourceEntry)}
		x.byKeyword[keyword] = kw
		x.order = append(x.order, keyword)
	}

	src, ok := kw.byPath[source]
	if !ok {
		src = &sourceEntry{path: source, seen: make(map[int]struct{})}
		kw.byPath[source] = src
		kw.sources = append(kw.sources, src)
	}

	if _, dup := src.seen[page]; dup {
		return false
	}
	src.seen[page] = struct{}{}
	src.pages = append(src.pages, page)
	return true
}

// RecordIfContains records page of source under keyword when keyword occurs
// in text. It reports whether keyword was found, whether or not the page was
// already recorded.
func (x *Index) RecordIfContains(keyword, text, source string, page int) bool {
	if !strings.Contains(text, keyword) {
		return false
	}
	x.Record(keyword, source, page)
	return true
}

// Len returns the number of keywords with at least one match.
func (x *Index) Len() int {
	return len(x.order)
}

// Has reports whether keyword has any recorded page.
func (x *Index) Has(keyword string) bool {
	_, ok := x.byKeyword[keyword]
	return ok
}

// Keywords returns the matched keywords in discovery order.
func (x *Index) Keywords() []string {
	out := make([]string, len(x.order))
	copy(out, x.order)
	return out
}

// Sources returns the source paths recorded under keyword, in discovery order.
func (x *Index) Sources(keyword string) []string {
	kw, ok := x.byKeyword[keyword]
	if !ok {
		return nil
	}
	out := make([]string, len(kw.sources))
	for i, s := range kw.sources {
		out[i] = s.path
	}
	return out
}

// Pages returns the pages recorded for keyword in source, in recorded order.
func (x *Index) Pages(keyword, source string) []int {
	kw, ok := x.byKeyword[keyword]
	if !ok {
		return nil
	}
	src, ok := kw.byPath[source]
	if !ok {
		return nil
	}
	out := make([]int, len(src.pages))
	copy(out, src.pages)
	return out
}

// PageCount returns the total number of (source, page) pairs under keyword.
func (x *Index) PageCount(keyword string) int {
	kw, ok := x.byKeyword[keyword]
	if !ok {
		return 0
	}
	n := 0
	for _, s := range kw.sources {
		n += len(s.pages)
	}
	return n
}

// Missing returns the keywords from the given list that have no match,
// preserving their order.
func (x *Index) Missing(keywords []string) []string {
	var out []string
	for _, k := range keywords {
		if !x.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// Snapshot returns a copy of the index suitable for reporting.
func (x *Index) Snapshot() []types.KeywordMatches {
	out := make([]types.KeywordMatches, 0, len(x.order))
	for _, k := range x.order {
		kw := x.byKeyword[k]
		m := types.KeywordMatches{Keyword: k}
		for _, s := range kw.sources {
			pages := make([]int, len(s.pages))
			copy(pages, s.pages)
			m.Sources = append(m.Sources, types.SourcePages{Path: s.path, Pages: pages})
		}
		out = append(out, m)
	}
	return out
}
