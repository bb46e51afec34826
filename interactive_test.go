package main

import (
	"io"
	"strings"
	"testing"
)

func reviewFixture() []candidate {
	return []candidate{
		{Text: "short", Key: "k1", Confidence: 0.5},
		{Text: "a much longer literal", Key: "k2", Confidence: 0.9},
		{Text: "medium text here", Key: "k3", Confidence: 0.9},
		{Text: "another one", Key: "k4", Confidence: 0.7},
	}
}

func TestRankCandidates(t *testing.T) {
	ranked := rankCandidates(reviewFixture())
	want := []string{"k2", "k3", "k4", "k1"}
	for i, key := range want {
		if ranked[i].Key != key {
			t.Errorf("ranked[%d].Key = %q, want %q", i, ranked[i].Key, key)
		}
	}
}

func TestApproveCandidates(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"approve some", "y\nn\ny\nn\n", []string{"k2", "k4"}},
		{"approve all at once", "n\na\n", []string{"k3", "k4", "k1"}},
		{"quit early", "y\nq\n", []string{"k2"}},
		{"eof stops review", "y\n", []string{"k2"}},
		{"unknown answers skip", "x\nmaybe\ny\nn\n", []string{"k4"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ranked := rankCandidates(reviewFixture())
			got := approveCandidates(ranked, strings.NewReader(tc.input), io.Discard)

			if len(got) != len(tc.want) {
				t.Fatalf("approved %d candidates, want %d: %+v", len(got), len(tc.want), got)
			}
			for i, key := range tc.want {
				if got[i].Key != key {
					t.Errorf("approved[%d].Key = %q, want %q", i, got[i].Key, key)
				}
			}
		})
	}
}
