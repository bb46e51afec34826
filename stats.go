package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// langStats holds the per-language report: how many entries the resource
// file has and how many of them are still placeholders.
type langStats struct {
	Lang         string `json:"lang"`
	Total        int    `json:"total"`
	Placeholders int    `json:"placeholders"`
}

func runStats(args []string) error {
	fs := pflag.NewFlagSet("stats", pflag.ExitOnError)
	format := fs.String("format", "text", "Output format: text, json")
	fs.Parse(args)

	root, cfg, err := loadEnv()
	if err != nil {
		return err
	}
	stats, err := collectStats(root, cfg)
	if err != nil {
		return err
	}
	return reportStats(stats, *format)
}

// collectStats reads every language's resource file and counts entries
// and placeholders. Read-only; unreadable files are reported to stderr
// and skipped.
func collectStats(root string, cfg config) ([]langStats, error) {
	langs, err := listLanguages(root, cfg)
	if err != nil {
		return nil, err
	}

	var stats []langStats
	for _, lang := range langs {
		path := resourcePath(root, lang, cfg.App)
		res, err := loadResource(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", yellow("warning:"), lang, err)
			continue
		}
		stats = append(stats, langStats{
			Lang:         lang,
			Total:        len(res.entries()),
			Placeholders: res.placeholderCount(cfg.Placeholder),
		})
	}
	return stats, nil
}

func reportStats(stats []langStats, format string) error {
	if format == "json" {
		return outputJSON(stats)
	}

	if len(stats) == 0 {
		fmt.Println("No resource files found.")
		return nil
	}

	fmt.Println("Translation stats:")
	for _, s := range stats {
		pending := fmt.Sprintf("%d placeholders", s.Placeholders)
		if s.Placeholders > 0 {
			pending = yellow(pending)
		} else {
			pending = green(pending)
		}
		fmt.Printf("  %-10s %4d entries  %s\n", s.Lang, s.Total, pending)
	}
	return nil
}
