// Copyright 2026 katsuya1128. All rights reserved.

// Package main is the entry point for the pdfassort CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katsuya1128/pdfassort/internal/assort"
	"github.com/katsuya1128/pdfassort/internal/keytable"
	"github.com/katsuya1128/pdfassort/internal/logging"
	"github.com/katsuya1128/pdfassort/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdfassort CLI.
var rootCmd = &cobra.Command{
	Use:   "pdfassort [flags] <csv> <pdf>...",
	Short: "Sort PDF pages into per-keyword documents",
	Long: `pdfassort reads a CSV of keyword and output file name pairs, searches
every page of the given PDFs for each keyword, and writes one PDF per keyword
containing the matching pages.

A document whose path contains a keyword is taken whole for that keyword
without reading its text, unless --no-fast-mode is given. PDF arguments may
be glob patterns such as "scans/**/*.pdf".`,
	Args:         cobra.MinimumNArgs(2),
	SilenceUsage: true,
	RunE:         runAssort,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdfassort.yaml or ~/.config/pdfassort/config.yaml)")
	registerFlags(rootCmd)
	if err := bindFlags(viper.GetViper(), rootCmd); err != nil {
		panic(err)
	}
}

// registerFlags declares the assort flags on cmd.
func registerFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.CountP("verbose", "v", "print the match index (-v) and debug logs (-vv)")
	f.StringP("output-dir", "o", ".", "directory for the per-keyword PDFs")
	f.BoolP("auto-char-detect", "c", false, "detect the CSV character encoding")
	f.String("encoding", keytable.DefaultEncoding, "CSV character encoding when not detected")
	f.Bool("no-skip-csv-header", false, "treat the first CSV row as data")
	f.Bool("no-fast-mode", false, "always read page text, even when the file name contains a keyword")
	f.StringP("error-log", "e", "", "append warnings and errors to this file")
	f.String("extractor", string(types.ExtractorLedongthuc), "page text backend: ledongthuc, rsc, or pdftotext")
	f.String("report", "", "write a YAML report of the run to this file")
	f.Bool("dry-run", false, "scan and report without writing PDFs")
}

// bindFlags makes every flag of cmd readable through v, so config file and
// environment values apply when a flag is not given.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	return v.BindPFlags(cmd.Flags())
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdfassort")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdfassort"))
		}
	}

	viper.SetEnvPrefix("PDFASSORT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig builds the run configuration from v and the positional
// arguments (key table path, then PDF patterns).
func loadConfig(v *viper.Viper, args []string) types.AssortConfig {
	return types.AssortConfig{
		KeyTable: types.KeyTableConfig{
			Path:          args[0],
			SkipHeader:    !v.GetBool("no-skip-csv-header"),
			DetectCharset: v.GetBool("auto-char-detect"),
			Encoding:      v.GetString("encoding"),
		},
		Scan: types.ScanConfig{
			Patterns:  args[1:],
			FastMode:  !v.GetBool("no-fast-mode"),
			Extractor: types.ExtractorBackend(v.GetString("extractor")),
		},
		Output: types.OutputConfig{
			Dir:        v.GetString("output-dir"),
			DryRun:     v.GetBool("dry-run"),
			ReportPath: v.GetString("report"),
		},
		Log: types.LogConfig{
			Verbosity:    v.GetInt("verbose"),
			ErrorLogPath: v.GetString("error-log"),
		},
	}
}

func runAssort(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(viper.GetViper(), args)

	logger, closeLog, err := logging.Setup(logging.Config{
		Verbosity:    cfg.Log.Verbosity,
		ErrorLogPath: cfg.Log.ErrorLogPath,
		Console:      cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	defer closeLog()

	_, err = assort.Run(cfg, cmd.OutOrStdout(), logger)
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
