//nolint:testpackage // using package name 'fuzzy' to access unexported helpers
package fuzzy

import "testing"

var finalizeOptions = []string{"-h", "--help", "-o", "--no-finalize"}

func TestMatcher_FindBest(t *testing.T) {
	matcher := NewMatcher(2)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "exact match excluded", input: "--help", expected: ""},
		{name: "simple typo", input: "--hlep", expected: "--help"},
		{name: "british spelling", input: "--no-finalise", expected: "--no-finalize"},
		{name: "single dash long option", input: "-help", expected: "--help"},
		{name: "too far", input: "--bogus", expected: ""},
		{name: "too short", input: "-x", expected: ""},
		{name: "case insensitive", input: "--NO-FINALIZE", expected: "--no-finalize"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matcher.FindBest(tt.input, finalizeOptions)
			if got != tt.expected {
				t.Errorf("FindBest(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMatcher_FindMatchesOrdering(t *testing.T) {
	matcher := NewMatcher(2)
	matches := matcher.FindMatches("--outptu", []string{"--output", "--outer", "--input"})
	if len(matches) == 0 {
		t.Fatal("expected matches")
	}
	if matches[0].Value != "--output" {
		t.Fatalf("expected --output first, got %q", matches[0].Value)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i-1].Score < matches[i].Score {
			t.Fatalf("matches not sorted by score: %+v", matches)
		}
	}
}

func TestMatcher_distance(t *testing.T) {
	m := NewMatcher(3)
	tests := []struct {
		a, b string
		want int
	}{
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"help", "help", 0},
		{"help", "hlep", 2},
		{"a", "abcdefgh", 4}, // length gap over the limit short-circuits
	}
	for _, tt := range tests {
		if got := m.distance(tt.a, tt.b); got != tt.want {
			t.Errorf("distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFindBestOption(t *testing.T) {
	if got := FindBestOption("--no-finalze", finalizeOptions, 2); got != "--no-finalize" {
		t.Fatalf("got %q", got)
	}
	if got := FindBestOption("--zzzzzzzz", finalizeOptions, 2); got != "" {
		t.Fatalf("expected no suggestion, got %q", got)
	}
}
