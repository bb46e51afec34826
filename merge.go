package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

func runExtract(args []string) error {
	fs := pflag.NewFlagSet("extract", pflag.ExitOnError)
	fs.Parse(args)

	root, cfg, err := loadEnv()
	if err != nil {
		return err
	}
	cands, err := scanCandidates(root, cfg)
	if err != nil {
		return err
	}
	return mergeCandidates(root, cfg, cands)
}

func runUpdate(args []string) error {
	fs := pflag.NewFlagSet("update", pflag.ExitOnError)
	fs.Parse(args)

	root, cfg, err := loadEnv()
	if err != nil {
		return err
	}
	cands, err := scanCandidates(root, cfg)
	if err != nil {
		return err
	}
	if err := reportScan(newCandidates(cands), "text"); err != nil {
		return err
	}
	if err := mergeCandidates(root, cfg, cands); err != nil {
		return err
	}
	stats, err := collectStats(root, cfg)
	if err != nil {
		return err
	}
	return reportStats(stats, "text")
}

// mergeCandidates appends every new candidate to the per-language
// resource files: original text to the base language, placeholder
// entries everywhere else.
//
// The base file is read and written first; any base failure aborts the
// whole merge before other languages are touched. After the base write
// succeeds, per-language failures are reported and the loop continues —
// one broken locale does not block the rest. Languages whose directory
// exists but whose resource file is missing are skipped with a warning,
// never created.
func mergeCandidates(root string, cfg config, cands []candidate) error {
	langs, err := listLanguages(root, cfg)
	if err != nil {
		return err
	}

	basePath := resourcePath(root, cfg.BaseLang, cfg.App)
	if _, err := loadResource(basePath); err != nil {
		return fmt.Errorf("reading base resource %s: %w", basePath, err)
	}

	fresh := newCandidates(cands)
	if len(fresh) == 0 {
		fmt.Println("No new strings to extract.")
		return nil
	}

	newEntries := make([]entry, len(fresh))
	for i, c := range fresh {
		newEntries[i] = entry{key: c.Key, value: c.Text}
	}

	if err := appendEntries(basePath, newEntries); err != nil {
		return fmt.Errorf("writing base resource %s: %w", basePath, err)
	}
	fmt.Printf("Added %s entries to %s\n", green(len(newEntries)), basePath)

	placeholders := make([]entry, len(newEntries))
	for i, e := range newEntries {
		placeholders[i] = entry{key: e.key, value: cfg.Placeholder + e.value}
	}

	for _, lang := range langs {
		if lang == cfg.BaseLang {
			continue
		}
		path := resourcePath(root, lang, cfg.App)
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s %s: no resource file at %s, skipped\n", yellow("warning:"), lang, path)
			continue
		}
		if err := appendEntries(path, placeholders); err != nil {
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", red("error:"), lang, err)
			continue
		}
		fmt.Printf("Added %s placeholder entries to %s\n", green(len(placeholders)), path)
	}
	return nil
}
