// Package similarity provides the lexical-distance primitives behind
// typosquatting and homoglyph detection.
package similarity

import (
	"math"
	"strings"
)

// homoglyphs maps digits commonly substituted for letters in look-alike
// domains.
var homoglyphs = map[rune]rune{
	'0': 'o',
	'1': 'l',
	'3': 'e',
	'5': 's',
	'8': 'b',
	'9': 'g',
}

// levenshtein computes the classic edit distance (insert, delete, substitute
// each cost 1) over the full dynamic-programming matrix. Inputs are
// domain-length so no early-exit optimization is needed.
func levenshtein(a, b []rune) int {
	m, n := len(a), len(b)
	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}
	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[n]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// Similarity returns a percentage in [0,100] where 100 means identical after
// lowercasing and trimming whitespace. An empty string compared against a
// non-empty one scores 0. The result is rounded to two decimals.
func Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	dist := levenshtein(ra, rb)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}

	sim := float64(maxLen-dist) / float64(maxLen) * 100
	return math.Round(sim*100) / 100
}

// IsTyposquatting reports whether candidate is suspiciously close to a
// legitimate name: similarity strictly above threshold but below 100. Exact
// matches are never typosquatting.
func IsTyposquatting(candidate, legitimate string, threshold float64) bool {
	sim := Similarity(candidate, legitimate)
	return sim > threshold && sim < 100
}

// NormalizeHomoglyphs lowercases the input and replaces digit look-alikes
// with the letters they imitate, so a second similarity pass can catch
// substitution attacks that plain edit distance under-scores.
func NormalizeHomoglyphs(s string) string {
	return strings.Map(func(r rune) rune {
		if sub, ok := homoglyphs[r]; ok {
			return sub
		}
		return r
	}, strings.ToLower(s))
}

// ContainsDigits reports whether s has at least one ASCII digit
func ContainsDigits(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}
