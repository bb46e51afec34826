package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/pflag"
)

// Candidate categories, in decreasing order of translation confidence.
const (
	catError   = "error"
	catMessage = "message"
	catFormat  = "format"
	catLiteral = "literal"
)

// candidate is a translatable string literal found in the source tree.
type candidate struct {
	Text       string  `json:"text"`
	File       string  `json:"file"`
	Line       int     `json:"line"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Context    string  `json:"context"`
	Key        string  `json:"key"`
	New        bool    `json:"new"`
}

type matchRule struct {
	re         *regexp.Regexp
	category   string
	confidence float64
}

// quoted matches the body of a Rust string literal. Escaped characters
// (including \") never terminate the literal, and the body may span
// multiple lines.
const quoted = `"((?:[^"\\]|\\[\s\S])*)"`

// matchRules is evaluated in order; the first rule to match a literal
// decides its category (later matches at the same location are dropped).
var matchRules = []matchRule{
	{regexp.MustCompile(`anyhow::bail!\s*\(\s*` + quoted), catError, 0.9},
	{regexp.MustCompile(`eprintln!\s*\(\s*` + quoted), catError, 0.8},
	{regexp.MustCompile(`return\s+Err\s*\([^"]*` + quoted), catError, 0.8},
	{regexp.MustCompile(`println!\s*\(\s*` + quoted), catMessage, 0.7},
	{regexp.MustCompile(`print!\s*\(\s*` + quoted), catMessage, 0.7},
	{regexp.MustCompile(`format!\s*\(\s*` + quoted), catFormat, 0.6},
	{regexp.MustCompile(`"([A-Z](?:[^"\\]|\\[\s\S]){10,})"`), catLiteral, 0.5},
}

// excludeRules drop matched literals that are not user-facing text.
var excludeRules = []*regexp.Regexp{
	regexp.MustCompile(`^[a-z_]+$`),           // identifier
	regexp.MustCompile(`^[A-Z_]+$`),           // SCREAMING_CONSTANT
	regexp.MustCompile(`^\w+::\w+`),           // Rust path
	regexp.MustCompile(`^/`),                  // file path
	regexp.MustCompile(`^\d+$`),               // digits only
	regexp.MustCompile(`^[^a-zA-Z]*$`),        // no letters (covers pure punctuation)
	regexp.MustCompile(`(?i)^\[?(debug|trace)\b`), // debug tag
}

func excluded(text string, minLength int) bool {
	if len(text) < minLength {
		return true
	}
	for _, re := range excludeRules {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// scanFile extracts candidates from one source file's content. Rules run
// in order over the whole content so multi-line literals produce a single
// candidate at the literal's start line. A (line, text) location yields
// at most one candidate, which keeps overlapping rules (println!
// matching inside eprintln!) from double-reporting.
func scanFile(relPath, content string, minLength int) []candidate {
	lines := strings.Split(content, "\n")
	seen := make(map[string]bool)
	var out []candidate

	for _, r := range matchRules {
		for _, loc := range r.re.FindAllStringSubmatchIndex(content, -1) {
			text := content[loc[2]:loc[3]]
			if excluded(text, minLength) {
				continue
			}
			lineNum := 1 + strings.Count(content[:loc[2]], "\n")
			id := fmt.Sprintf("%d\x00%s", lineNum, text)
			if seen[id] {
				continue
			}
			seen[id] = true

			context := ""
			if lineNum <= len(lines) {
				context = strings.TrimSpace(lines[lineNum-1])
			}
			out = append(out, candidate{
				Text:       text,
				File:       relPath,
				Line:       lineNum,
				Category:   r.category,
				Confidence: r.confidence,
				Context:    context,
			})
		}
	}
	return out
}

// sourceFiles walks the configured source directories and returns .rs
// file paths in lexical order.
func sourceFiles(root string, cfg config) ([]string, error) {
	var files []string
	for _, dir := range cfg.SourceDirs {
		srcDir := filepath.Join(root, dir)
		if _, err := os.Stat(srcDir); err != nil {
			continue
		}
		err := filepath.WalkDir(srcDir, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if d.Name() == ".git" || d.Name() == "target" {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(d.Name()) == ".rs" {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// scanTree scans all configured source directories and returns one
// candidate per distinct literal text, ordered by confidence descending
// (scan order breaks ties, so results are deterministic).
func scanTree(root string, cfg config) ([]candidate, error) {
	files, err := sourceFiles(root, cfg)
	if err != nil {
		return nil, err
	}

	var all []candidate
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			continue
		}
		relPath, _ := filepath.Rel(root, file)
		all = append(all, scanFile(relPath, string(data), cfg.MinLength)...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Confidence > all[j].Confidence
	})

	seen := make(map[string]bool, len(all))
	var uniq []candidate
	for _, c := range all {
		if seen[c.Text] {
			continue
		}
		seen[c.Text] = true
		uniq = append(uniq, c)
	}
	return uniq, nil
}

// scanCandidates scans the tree and assigns every candidate a key that is
// unique against the base resource file. Candidates whose text is already
// present in the base file come back with New set to false.
func scanCandidates(root string, cfg config) ([]candidate, error) {
	cands, err := scanTree(root, cfg)
	if err != nil {
		return nil, err
	}

	keys := make(map[string]string)
	basePath := resourcePath(root, cfg.BaseLang, cfg.App)
	base, err := loadResource(basePath)
	if err == nil {
		keys = base.keys()
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading base resource %s: %w", basePath, err)
	}

	for i := range cands {
		cands[i].Key, cands[i].New = assignKey(cands[i].Text, cands[i].Category, keys)
	}
	return cands, nil
}

func newCandidates(cands []candidate) []candidate {
	var out []candidate
	for _, c := range cands {
		if c.New {
			out = append(out, c)
		}
	}
	return out
}

func runScan(args []string) error {
	fs := pflag.NewFlagSet("scan", pflag.ExitOnError)
	format := fs.String("format", "text", "Output format: text, json")
	fs.Parse(args)

	root, cfg, err := loadEnv()
	if err != nil {
		return err
	}
	cands, err := scanCandidates(root, cfg)
	if err != nil {
		return err
	}
	return reportScan(newCandidates(cands), *format)
}

func reportScan(fresh []candidate, format string) error {
	if format == "json" {
		return outputJSON(fresh)
	}

	if len(fresh) == 0 {
		fmt.Println("No new translatable strings found.")
		return nil
	}

	fmt.Printf("Found %s new translatable strings:\n\n", cyan(len(fresh)))
	for _, c := range fresh {
		fmt.Printf("  %s %s\n", green(c.Key), fmt.Sprintf("[%s %.1f]", c.Category, c.Confidence))
		fmt.Printf("    Text: %q\n", c.Text)
		fmt.Printf("    File: %s:%d\n", c.File, c.Line)
	}
	return nil
}
