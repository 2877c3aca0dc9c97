// Copyright 2026 katsuya1128. All rights reserved.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katsuya1128/pdfassort/pkg/types"
)

func parse(t *testing.T, v *viper.Viper, flags ...string) {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	registerFlags(cmd)
	require.NoError(t, bindFlags(v, cmd))
	require.NoError(t, cmd.ParseFlags(flags))
}

func TestLoadConfig_Defaults(t *testing.T) {
	v := viper.New()
	parse(t, v)

	cfg := loadConfig(v, []string{"keys.csv", "a.pdf", "in/*.pdf"})

	assert.Equal(t, types.KeyTableConfig{Path: "keys.csv", SkipHeader: true, Encoding: "utf-8"}, cfg.KeyTable)
	assert.Equal(t, []string{"a.pdf", "in/*.pdf"}, cfg.Scan.Patterns)
	assert.True(t, cfg.Scan.FastMode)
	assert.Equal(t, types.ExtractorLedongthuc, cfg.Scan.Extractor)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.False(t, cfg.Output.DryRun)
	assert.Zero(t, cfg.Log.Verbosity)
}

func TestLoadConfig_Flags(t *testing.T) {
	v := viper.New()
	parse(t, v,
		"-vv", "-o", "out", "-c", "--encoding", "shift_jis",
		"--no-skip-csv-header", "--no-fast-mode", "-e", "err.log",
		"--extractor", "rsc", "--report", "run.yaml", "--dry-run",
	)

	cfg := loadConfig(v, []string{"keys.csv", "a.pdf"})

	assert.False(t, cfg.KeyTable.SkipHeader)
	assert.True(t, cfg.KeyTable.DetectCharset)
	assert.Equal(t, "shift_jis", cfg.KeyTable.Encoding)
	assert.False(t, cfg.Scan.FastMode)
	assert.Equal(t, types.ExtractorRSC, cfg.Scan.Extractor)
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.True(t, cfg.Output.DryRun)
	assert.Equal(t, "run.yaml", cfg.Output.ReportPath)
	assert.Equal(t, 2, cfg.Log.Verbosity)
	assert.Equal(t, "err.log", cfg.Log.ErrorLogPath)
}

func TestLoadConfig_ConfigValuesUnderFlags(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader("encoding: euc-jp\noutput-dir: configured\n")))
	parse(t, v, "-o", "flagged")

	cfg := loadConfig(v, []string{"keys.csv", "a.pdf"})

	assert.Equal(t, "euc-jp", cfg.KeyTable.Encoding)
	assert.Equal(t, "flagged", cfg.Output.Dir)
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "pdfassort dev\n", buf.String())
}
