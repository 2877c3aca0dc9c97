// Copyright 2026 katsuya1128. All rights reserved.

package pdfdoc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katsuya1128/pdfassort/internal/testpdf"
)

func TestProbe(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "three.pdf")
	require.NoError(t, testpdf.WriteFile(path, "one", "two", "three"))

	info, err := NewProber().Probe(path)
	require.NoError(t, err)
	assert.Equal(t, 3, info.Pages)
	assert.Equal(t, path, info.Path)
	assert.False(t, info.Encrypted)
}

// writeEncrypted writes a two-page document encrypted with AES-256.
func writeEncrypted(t *testing.T, userPW, ownerPW string) string {
	t.Helper()
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain.pdf")
	require.NoError(t, testpdf.WriteFile(plain, "secret one", "secret two"))

	NewConfiguration()
	conf := model.NewAESConfiguration(userPW, ownerPW, 256)
	out := filepath.Join(dir, "locked.pdf")
	require.NoError(t, api.EncryptFile(plain, out, conf))
	return out
}

func TestProbe_Encrypted(t *testing.T) {
	tests := []struct {
		name    string
		userPW  string
		ownerPW string
	}{
		{name: "user password", userPW: "user", ownerPW: "owner"},
		{name: "owner password only", ownerPW: "owner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeEncrypted(t, tt.userPW, tt.ownerPW)

			info, err := NewProber().Probe(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrEncrypted)
			assert.True(t, info.Encrypted)
			assert.Zero(t, info.Pages)
		})
	}
}

func TestProbe_NotPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.pdf")
	require.NoError(t, os.WriteFile(path, []byte("just some text, no header"), 0o644))

	info, err := NewProber().Probe(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotPDF)
	assert.False(t, info.Encrypted)
}

func TestProbe_Truncated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog"), 0o644))

	_, err := NewProber().Probe(path)
	require.Error(t, err)
}

func TestProbe_MissingFile(t *testing.T) {
	_, err := NewProber().Probe(filepath.Join(t.TempDir(), "absent.pdf"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSniffHeader(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "plain header", input: "%PDF-1.7\n..."},
		{name: "leading garbage", input: "\x00\x00junk%PDF-1.3\n"},
		{name: "empty file", input: "", wantErr: ErrNotPDF},
		{name: "html", input: "<!doctype html><html>", wantErr: ErrNotPDF},
		{name: "header past sniff window", input: strings.Repeat(" ", sniffLen) + "%PDF-1.4", wantErr: ErrNotPDF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SniffHeader(strings.NewReader(tt.input))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClassify(t *testing.T) {
	assert.ErrorIs(t, classify(errors.New("pdfcpu: please provide the correct password")), ErrEncrypted)
	assert.ErrorIs(t, classify(errors.New("pdfcpu: unsupported encryption algorithm")), ErrEncrypted)
	assert.ErrorIs(t, classify(errors.New("pdfcpu: corrupt xref section")), ErrNotPDF)
}
