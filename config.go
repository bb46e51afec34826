package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "i18n-extract.yaml"

// config holds the tool settings. An i18n-extract.yaml at the repository
// root overrides the defaults; absent fields keep their default value.
type config struct {
	// App is the resource file stem: i18n/<lang>/<app>.ftl.
	App string `yaml:"app"`
	// BaseLang is the language whose file holds the original text.
	BaseLang string `yaml:"base_lang"`
	// SourceDirs are scanned for .rs files, relative to the repo root.
	SourceDirs []string `yaml:"source_dirs"`
	// MinLength drops literals shorter than this many bytes.
	MinLength int `yaml:"min_length"`
	// Placeholder is the sentinel prefix marking untranslated entries.
	Placeholder string `yaml:"placeholder"`
	// Languages, when non-empty, restricts which i18n/ subdirectories
	// are considered.
	Languages []string `yaml:"languages"`
}

func defaultConfig() config {
	return config{
		App:         "linegrep",
		BaseLang:    "en-US",
		SourceDirs:  []string{"crates/core", "crates/matcher", "src"},
		MinLength:   3,
		Placeholder: "TODO: ",
	}
}

// loadConfig reads i18n-extract.yaml from the repo root if present.
func loadConfig(root string) (config, error) {
	cfg := defaultConfig()
	path := filepath.Join(root, configFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.App == "" || cfg.BaseLang == "" {
		return cfg, fmt.Errorf("%s: app and base_lang must not be empty", path)
	}
	if cfg.MinLength < 1 {
		cfg.MinLength = 1
	}
	return cfg, nil
}
