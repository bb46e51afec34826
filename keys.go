package main

import (
	"fmt"
	"regexp"
	"strings"
)

// maxSlugWords bounds key length: only the first few meaningful words of
// the literal make it into the slug.
const maxSlugWords = 4

var slugStrip = regexp.MustCompile(`[^a-z0-9\s]+`)

// slugWords lowercases the text, strips non-alphanumerics, and returns at
// most maxSlugWords words.
func slugWords(text string) []string {
	clean := slugStrip.ReplaceAllString(strings.ToLower(text), "")
	words := strings.Fields(clean)
	if len(words) > maxSlugWords {
		words = words[:maxSlugWords]
	}
	return words
}

func categoryPrefix(category string) string {
	switch category {
	case catError:
		return "error_"
	case catMessage:
		return "msg_"
	case catFormat:
		return "fmt_"
	}
	return ""
}

// assignKey returns a key for text that is unique within keys, which
// accumulates both the base file's existing entries and keys assigned
// earlier in this run (threaded explicitly by the caller).
//
// If some existing key already holds exactly this text, that key is
// reused and isNew is false; reruns over an unchanged tree therefore
// assign identical keys and add nothing. A genuine collision (same slug,
// different text) gets a numeric suffix starting at 2.
func assignKey(text, category string, keys map[string]string) (key string, isNew bool) {
	words := slugWords(text)
	if len(words) == 0 {
		words = []string{"text"}
	}
	base := categoryPrefix(category) + strings.Join(words, "_")

	key = base
	for n := 2; ; n++ {
		held, exists := keys[key]
		if !exists {
			keys[key] = text
			return key, true
		}
		if held == text {
			return key, false
		}
		key = fmt.Sprintf("%s_%d", base, n)
	}
}
