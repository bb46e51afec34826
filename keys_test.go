package main

import (
	"reflect"
	"testing"
)

func TestSlugWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"simple", "invalid pattern provided", []string{"invalid", "pattern", "provided"}},
		{"punctuation stripped", "Cannot open file: {}!", []string{"cannot", "open", "file"}},
		{"truncated to four words", "one two three four five six", []string{"one", "two", "three", "four"}},
		{"mixed case", "Search Finished Cleanly", []string{"search", "finished", "cleanly"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := slugWords(tc.text)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("slugWords(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestAssignKey(t *testing.T) {
	keys := map[string]string{}

	key, isNew := assignKey("invalid pattern provided", catError, keys)
	if key != "error_invalid_pattern_provided" || !isNew {
		t.Errorf("got (%q, %v), want (error_invalid_pattern_provided, true)", key, isNew)
	}

	// Same text again: the existing key is reused, nothing new minted.
	key, isNew = assignKey("invalid pattern provided", catError, keys)
	if key != "error_invalid_pattern_provided" || isNew {
		t.Errorf("rerun got (%q, %v), want (error_invalid_pattern_provided, false)", key, isNew)
	}

	// Different text with the same slug collides into a _2 suffix.
	key, isNew = assignKey("Invalid pattern provided!", catError, keys)
	if key != "error_invalid_pattern_provided_2" || !isNew {
		t.Errorf("collision got (%q, %v), want (error_invalid_pattern_provided_2, true)", key, isNew)
	}

	// And the next collision takes _3.
	key, isNew = assignKey("invalid... pattern... provided...", catError, keys)
	if key != "error_invalid_pattern_provided_3" || !isNew {
		t.Errorf("second collision got (%q, %v), want (error_invalid_pattern_provided_3, true)", key, isNew)
	}
}

func TestAssignKeyCategoryPrefixes(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{catError, "error_search_failed_badly"},
		{catMessage, "msg_search_failed_badly"},
		{catFormat, "fmt_search_failed_badly"},
		{catLiteral, "search_failed_badly"},
	}

	for _, tc := range tests {
		t.Run(tc.category, func(t *testing.T) {
			key, isNew := assignKey("search failed badly", tc.category, map[string]string{})
			if key != tc.want || !isNew {
				t.Errorf("got (%q, %v), want (%q, true)", key, isNew, tc.want)
			}
		})
	}
}

func TestAssignKeySeededFromResourceFile(t *testing.T) {
	// Keys already in the base file participate in uniqueness.
	keys := map[string]string{"msg_search_done": "different text entirely"}
	key, isNew := assignKey("search done", catMessage, keys)
	if key != "msg_search_done_2" || !isNew {
		t.Errorf("got (%q, %v), want (msg_search_done_2, true)", key, isNew)
	}

	// A base-file key that already holds this exact text is reused.
	keys = map[string]string{"msg_search_done": "search done"}
	key, isNew = assignKey("search done", catMessage, keys)
	if key != "msg_search_done" || isNew {
		t.Errorf("got (%q, %v), want (msg_search_done, false)", key, isNew)
	}
}
