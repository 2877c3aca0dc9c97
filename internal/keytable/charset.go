// Copyright 2026 katsuya1128. All rights reserved.

package keytable

import (
	"fmt"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// DetectCharset guesses the charset name of data. Pure ASCII input is
// reported as UTF-8.
func DetectCharset(data []byte) (string, error) {
	if isASCII(data) {
		return "UTF-8", nil
	}
	res, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return "", fmt.Errorf("detecting charset: %w", err)
	}
	return res.Charset, nil
}

// decoderFor resolves a charset name to a decoder. A byte order mark in the
// input overrides the named encoding.
func decoderFor(name string) (*encoding.Decoder, error) {
	enc, err := lookupEncoding(name)
	if err != nil {
		return nil, err
	}
	return &encoding.Decoder{Transformer: unicode.BOMOverride(enc.NewDecoder())}, nil
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	if enc, err := htmlindex.Get(name); err == nil {
		return enc, nil
	}
	// chardet reports a few names (e.g. "GB-18030") that the WHATWG index
	// does not know; retry without the dash and through the IANA registry.
	if enc, err := htmlindex.Get(strings.ReplaceAll(name, "-", "")); err == nil {
		return enc, nil
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", name)
}

func isASCII(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return false
		}
	}
	return true
}
