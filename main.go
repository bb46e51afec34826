// i18n-extract maintains the localization files of the linegrep CLI.
//
// It scans the Rust sources for user-facing string literals, assigns
// translation keys, and appends new entries to the per-language .ftl
// resource files under i18n/ (original text for en-US, TODO placeholders
// for every other language).
//
// Usage:
//
//	i18n-extract <subcommand> [flags]
//
// Run "i18n-extract" with no arguments for a list of subcommands.
package main

import (
	"fmt"
	"os"
)

var subcommands = map[string]func([]string) error{
	"scan":        runScan,
	"extract":     runExtract,
	"update":      runUpdate,
	"stats":       runStats,
	"validate":    runValidate,
	"interactive": runInteractive,
	"rewrite":     runRewrite,
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	name := os.Args[1]
	if name == "-h" || name == "--help" || name == "help" {
		printUsage()
		return
	}

	run, ok := subcommands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown subcommand: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := run(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", red("Error:"), err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: i18n-extract <subcommand> [flags]

Subcommands:
  scan         Find new translatable strings in the source tree (no writes)
  extract      Scan, then append new entries to all locale files
  update       scan + extract + stats
  stats        Entry and placeholder counts per locale
  validate     Duplicate keys, missing files, stale keys; non-zero on errors
  interactive  Review ranked candidates and extract the approved ones
  rewrite      Emit a JSON plan replacing literals with fl! macro calls

Run "i18n-extract <subcommand> -h" for subcommand-specific flags.`)
}
