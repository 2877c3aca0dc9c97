// Copyright 2026 katsuya1128. All rights reserved.

package progress

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Live(t *testing.T) {
	var buf bytes.Buffer
	r := NewLive(&buf)

	r.Page("a.pdf", 1, 1200)
	r.Page("a.pdf", 2, 1200)
	r.Done()
	r.Done()

	assert.Equal(t, "\ra.pdf: 1/1,200\ra.pdf: 2/1,200\n", buf.String())
}

func TestReporter_NotATerminal(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Page("a.pdf", 1, 3)
	r.Done()
	assert.Empty(t, buf.String())
}

func TestReporter_RegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "progress.txt"))
	require.NoError(t, err)
	defer f.Close()

	r := New(f)
	assert.False(t, r.live, "a regular file is not a terminal")
}

func TestReporter_Number(t *testing.T) {
	assert.Equal(t, "1,234,567", Discard().Number(1234567))
	assert.Equal(t, "42", Discard().Number(42))
}
