package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/text/language"
)

const (
	levelError   = "error"
	levelWarning = "warning"
)

// validationIssue is one finding from validate, with enough context to
// act on manually.
type validationIssue struct {
	Lang    string `json:"lang"`
	Level   string `json:"level"`
	Message string `json:"message"`
}

func runValidate(args []string) error {
	fs := pflag.NewFlagSet("validate", pflag.ExitOnError)
	format := fs.String("format", "text", "Output format: text, json")
	fs.Parse(args)

	root, cfg, err := loadEnv()
	if err != nil {
		return err
	}
	issues, err := validateResources(root, cfg)
	if err != nil {
		return err
	}
	return reportValidation(issues, *format)
}

// validateResources checks every language's resource file for duplicate
// keys and missing files (errors), plus stale keys, outstanding
// placeholders, and malformed language codes (warnings). Nothing is ever
// auto-repaired.
func validateResources(root string, cfg config) ([]validationIssue, error) {
	langs, err := listLanguages(root, cfg)
	if err != nil {
		return nil, err
	}

	baseKeys := make(map[string]string)
	if base, err := loadResource(resourcePath(root, cfg.BaseLang, cfg.App)); err == nil {
		baseKeys = base.keys()
	}

	var issues []validationIssue
	for _, lang := range langs {
		if _, err := language.Parse(lang); err != nil {
			issues = append(issues, validationIssue{
				Lang:    lang,
				Level:   levelWarning,
				Message: fmt.Sprintf("%q is not a valid language tag", lang),
			})
		}

		path := resourcePath(root, lang, cfg.App)
		res, err := loadResource(path)
		if err != nil {
			msg := fmt.Sprintf("missing resource file %s", path)
			if !os.IsNotExist(err) {
				msg = fmt.Sprintf("unreadable resource file %s: %v", path, err)
			}
			issues = append(issues, validationIssue{Lang: lang, Level: levelError, Message: msg})
			continue
		}

		for _, key := range res.duplicates() {
			issues = append(issues, validationIssue{
				Lang:    lang,
				Level:   levelError,
				Message: fmt.Sprintf("duplicate key %q in %s", key, path),
			})
		}

		if lang == cfg.BaseLang {
			continue
		}

		if n := res.placeholderCount(cfg.Placeholder); n > 0 {
			issues = append(issues, validationIssue{
				Lang:    lang,
				Level:   levelWarning,
				Message: fmt.Sprintf("%d untranslated placeholder entries", n),
			})
		}
		for _, e := range res.entries() {
			if _, ok := baseKeys[e.key]; !ok {
				issues = append(issues, validationIssue{
					Lang:    lang,
					Level:   levelWarning,
					Message: fmt.Sprintf("stale key %q absent from %s", e.key, cfg.BaseLang),
				})
			}
		}
	}
	return issues, nil
}

func countLevel(issues []validationIssue, level string) int {
	n := 0
	for _, i := range issues {
		if i.Level == level {
			n++
		}
	}
	return n
}

func reportValidation(issues []validationIssue, format string) error {
	errs := countLevel(issues, levelError)

	if format == "json" {
		if err := outputJSON(issues); err != nil {
			return err
		}
	} else {
		for _, i := range issues {
			label := yellow("warning:")
			if i.Level == levelError {
				label = red("error:")
			}
			fmt.Printf("%s %s: %s\n", label, i.Lang, i.Message)
		}
		if errs == 0 {
			fmt.Println(green("All checks passed."))
		}
	}

	if errs > 0 {
		return fmt.Errorf("validation failed: %d errors, %d warnings", errs, countLevel(issues, levelWarning))
	}
	return nil
}
