package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeLocaleTree(t *testing.T, files map[string]string, dirs ...string) (string, config) {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, i18nDir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, i18nDir, d), 0755); err != nil {
			t.Fatal(err)
		}
	}
	return root, defaultConfig()
}

func findIssue(issues []validationIssue, level, substr string) bool {
	for _, i := range issues {
		if i.Level == level && strings.Contains(i.Message, substr) {
			return true
		}
	}
	return false
}

func TestValidateDuplicateKeys(t *testing.T) {
	root, cfg := writeLocaleTree(t, map[string]string{
		"en-US/linegrep.ftl": "foo = 1\nbar = x\nfoo = 2\n",
	})

	issues, err := validateResources(root, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !findIssue(issues, levelError, `duplicate key "foo"`) {
		t.Errorf("duplicate key not reported: %+v", issues)
	}
	if err := reportValidation(issues, "json"); err == nil {
		t.Error("expected failing status for duplicate keys")
	}
}

func TestValidateMissingResourceFile(t *testing.T) {
	root, cfg := writeLocaleTree(t, map[string]string{
		"en-US/linegrep.ftl": "foo = 1\n",
	}, "fr")

	issues, err := validateResources(root, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !findIssue(issues, levelError, "missing resource file") {
		t.Errorf("missing file not reported: %+v", issues)
	}
	if err := reportValidation(issues, "json"); err == nil {
		t.Error("expected failing status for missing resource file")
	}
}

func TestValidateWarningsDoNotFail(t *testing.T) {
	root, cfg := writeLocaleTree(t, map[string]string{
		"en-US/linegrep.ftl": "foo = one\n",
		"de/linegrep.ftl":    "foo = TODO: one\nold_key = was removed upstream\n",
	})

	issues, err := validateResources(root, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !findIssue(issues, levelWarning, "untranslated placeholder") {
		t.Errorf("placeholder warning missing: %+v", issues)
	}
	if !findIssue(issues, levelWarning, `stale key "old_key"`) {
		t.Errorf("stale key warning missing: %+v", issues)
	}
	if err := reportValidation(issues, "json"); err != nil {
		t.Errorf("warnings alone must not fail validation: %v", err)
	}
}

func TestValidateBadLanguageTag(t *testing.T) {
	root, cfg := writeLocaleTree(t, map[string]string{
		"en-US/linegrep.ftl": "foo = one\n",
		"12345/linegrep.ftl": "foo = TODO: one\n",
	})

	issues, err := validateResources(root, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !findIssue(issues, levelWarning, "not a valid language tag") {
		t.Errorf("language tag warning missing: %+v", issues)
	}
}

func TestValidateCleanTreePasses(t *testing.T) {
	root, cfg := writeLocaleTree(t, map[string]string{
		"en-US/linegrep.ftl": "foo = one\nbar = two\n",
		"de/linegrep.ftl":    "foo = eins\nbar = zwei\n",
	})

	issues, err := validateResources(root, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if n := countLevel(issues, levelError); n != 0 {
		t.Errorf("clean tree produced %d errors: %+v", n, issues)
	}
	if err := reportValidation(issues, "json"); err != nil {
		t.Errorf("clean tree must pass: %v", err)
	}
}
