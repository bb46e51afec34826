package main

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

// The .ftl resource format is an external contract shared with the Rust
// loader: "key = value" entries, "#" comments, indented continuation
// lines for multi-line values, blank lines. Lines that fit none of those
// shapes pass through untouched, and writes are strictly append-only so
// existing bytes round-trip byte-for-byte.

type lineKind int

const (
	lineBlank lineKind = iota
	lineComment
	lineEntry
	lineContinuation
	lineOther
)

// ftlLine is one classified line of a resource file.
type ftlLine struct {
	kind  lineKind
	text  string // raw line, without trailing newline
	key   string // lineEntry only
	value string // lineEntry only, first-line value
}

// entry is a key-value pair in a resource file, continuations joined in.
type entry struct {
	key   string
	value string
}

var entryKeyPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_-]*)\s*=\s*(.*)$`)

// classifyLine assigns a line to exactly one of the format's shapes.
// Indentation wins: any non-empty line starting with whitespace is a
// continuation, even when the rest is blank or looks like a comment —
// multi-line values may legitimately contain empty lines or lines
// starting with "#", and both must survive a reparse intact.
func classifyLine(line string) ftlLine {
	switch {
	case line == "":
		return ftlLine{kind: lineBlank, text: line}
	case line[0] == ' ' || line[0] == '\t':
		return ftlLine{kind: lineContinuation, text: line}
	case line[0] == '#':
		return ftlLine{kind: lineComment, text: line}
	}
	if m := entryKeyPattern.FindStringSubmatch(line); m != nil {
		return ftlLine{kind: lineEntry, text: line, key: m[1], value: m[2]}
	}
	return ftlLine{kind: lineOther, text: line}
}

// resourceFile is a parsed per-language .ftl file.
type resourceFile struct {
	path  string
	lines []ftlLine
}

// loadResource reads and classifies a resource file.
func loadResource(path string) (*resourceFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw := strings.Split(string(data), "\n")
	// A trailing newline produces one empty trailing element; drop it so
	// line counts match what an editor shows.
	if n := len(raw); n > 0 && raw[n-1] == "" {
		raw = raw[:n-1]
	}
	res := &resourceFile{path: path, lines: make([]ftlLine, 0, len(raw))}
	for _, line := range raw {
		res.lines = append(res.lines, classifyLine(line))
	}
	return res, nil
}

// entries returns the file's key-value pairs in order. Continuation lines
// directly following an entry are folded into its value; the standard
// four-space continuation indent is stripped.
func (r *resourceFile) entries() []entry {
	var out []entry
	open := false
	for _, l := range r.lines {
		switch l.kind {
		case lineEntry:
			out = append(out, entry{key: l.key, value: l.value})
			open = true
		case lineContinuation:
			if open {
				body := strings.TrimPrefix(l.text, "    ")
				if body == l.text {
					body = strings.TrimLeft(l.text, " \t")
				}
				out[len(out)-1].value += "\n" + body
			}
		default:
			open = false
		}
	}
	return out
}

// keys returns key -> value for the file; the first occurrence of a
// duplicated key wins.
func (r *resourceFile) keys() map[string]string {
	m := make(map[string]string)
	for _, e := range r.entries() {
		if _, ok := m[e.key]; !ok {
			m[e.key] = e.value
		}
	}
	return m
}

var numericKeyPrefix = regexp.MustCompile(`^\d+_`)

// normalizeKey strips a leading numeric prefix convention ("042_") so
// duplicate detection compares the meaningful part of the key.
func normalizeKey(k string) string {
	return numericKeyPrefix.ReplaceAllString(k, "")
}

// duplicates returns the normalized keys that occur more than once,
// sorted.
func (r *resourceFile) duplicates() []string {
	counts := make(map[string]int)
	for _, l := range r.lines {
		if l.kind == lineEntry {
			counts[normalizeKey(l.key)]++
		}
	}
	var dups []string
	for k, n := range counts {
		if n > 1 {
			dups = append(dups, k)
		}
	}
	sort.Strings(dups)
	return dups
}

// placeholderCount returns how many entries still carry the placeholder
// marker.
func (r *resourceFile) placeholderCount(marker string) int {
	n := 0
	for _, e := range r.entries() {
		if strings.HasPrefix(e.value, marker) {
			n++
		}
	}
	return n
}

// appendEntries appends new entries to an existing resource file. The
// file is opened O_APPEND so lines already present are never rewritten.
// Multi-line values are emitted with the four-space continuation indent.
func appendEntries(path string, entries []entry) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("\n# Auto-generated translations\n")
	for _, e := range entries {
		lines := strings.Split(e.value, "\n")
		fmt.Fprintf(&b, "%s = %s\n", e.key, lines[0])
		for _, l := range lines[1:] {
			fmt.Fprintf(&b, "    %s\n", l)
		}
	}

	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
