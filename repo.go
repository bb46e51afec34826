package main

import (
	"fmt"
	"os"
	"path/filepath"
)

const i18nDir = "i18n"

// repoRoot returns the repository root by walking up from the current
// directory looking for Cargo.toml.
func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "Cargo.toml")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find repository root (no Cargo.toml found)")
		}
		dir = parent
	}
}

// resourcePath returns the path to a language's .ftl resource file.
func resourcePath(root, lang, app string) string {
	return filepath.Join(root, i18nDir, lang, app+".ftl")
}

// listLanguages returns the language codes that have a directory under
// i18n/, in lexical order. When the config restricts the language set,
// only configured languages are returned; a configured language with no
// directory is never invented.
func listLanguages(root string, cfg config) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(root, i18nDir))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Join(root, i18nDir), err)
	}

	allowed := make(map[string]bool, len(cfg.Languages))
	for _, l := range cfg.Languages {
		allowed[l] = true
	}

	var langs []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if len(allowed) > 0 && !allowed[e.Name()] {
			continue
		}
		langs = append(langs, e.Name())
	}
	return langs, nil
}

// loadEnv resolves the repository root and its configuration. Shared by
// every subcommand.
func loadEnv() (string, config, error) {
	root, err := repoRoot()
	if err != nil {
		return "", config{}, err
	}
	cfg, err := loadConfig(root)
	if err != nil {
		return "", config{}, err
	}
	return root, cfg, nil
}
