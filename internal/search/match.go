// Package search holds the listing search pipeline used by the frontend:
// sampling for the initial view, name filtering and match highlighting.
package search

import (
	"strings"
	"unicode/utf8"
)

// indexFold returns the byte range of the first case-insensitive occurrence
// of term in s at or after byte offset from, or (-1, -1).
//
// Matching walks s one rune at a time and compares a window of as many runes
// as term has using simple Unicode case folding, so the term is always taken
// literally and offsets stay valid in s.
func indexFold(s, term string, from int) (int, int) {
	n := utf8.RuneCountInString(term)
	if n == 0 {
		return -1, -1
	}
	for i := from; i < len(s); {
		end := i
		for k := 0; k < n && end < len(s); k++ {
			_, w := utf8.DecodeRuneInString(s[end:])
			end += w
		}
		if utf8.RuneCountInString(s[i:end]) < n {
			break
		}
		if strings.EqualFold(s[i:end], term) {
			return i, end
		}
		_, w := utf8.DecodeRuneInString(s[i:])
		i += w
	}
	return -1, -1
}

// ContainsFold reports whether term occurs in s, ignoring case.
// An empty term is contained in every string.
func ContainsFold(s, term string) bool {
	if term == "" {
		return true
	}
	start, _ := indexFold(s, term, 0)
	return start >= 0
}
