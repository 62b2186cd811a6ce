// Package fuzzy ranks option names by edit distance.
// Used by driver/errors.go to suggest a spelling for an unrecognized option.
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher finds close spellings among a fixed set of option names
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher accepting candidates up to maxDistance edits away
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // "-x" style typos are too short to guess
	}
}

// Match is one ranked candidate
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better
}

// FindBest returns the closest option, or "" when nothing is close enough.
// Leading dashes are ignored on both sides so "--no-finalise" still finds
// "--no-finalize" and "-help" finds "--help".
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns every candidate within the distance limit, best first
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	in := normalize(input)
	if len(in) < m.minLength {
		return nil
	}

	var matches []Match
	for _, candidate := range candidates {
		c := normalize(candidate)
		if c == "" {
			continue
		}
		// an exact match differing only in dashes is still worth suggesting
		// ("-help" for "--help"), a byte-identical one is not
		if input == candidate {
			continue
		}
		d := m.distance(in, c)
		if d > m.maxDistance {
			continue
		}
		matches = append(matches, Match{Value: candidate, Distance: d, Score: m.score(in, c, d)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Score > matches[j].Score
	})
	return matches
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimLeft(s, "-"))
}

// score weighs edit distance first and a shared prefix second
func (m *Matcher) score(a, b string, d int) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1.0
	}
	s := 1.0 - float64(d)/float64(longest)
	if p := prefixLen(a, b); p > 0 {
		s += float64(p) / float64(min(len(a), len(b))) * 0.3
	}
	if s > 1.0 {
		s = 1.0
	}
	return s
}

// distance is a two-row Levenshtein that bails out once every cell in a
// row exceeds maxDistance
func (m *Matcher) distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if diff := len(a) - len(b); diff > m.maxDistance || -diff > m.maxDistance {
		return m.maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}
	for i := 1; i <= len(b); i++ {
		cur[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			cur[j] = min(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
			if cur[j] < rowMin {
				rowMin = cur[j]
			}
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(a)]
}

func prefixLen(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// FindBestOption finds the best matching option name
func FindBestOption(input string, options []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, options)
}
