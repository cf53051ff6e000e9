package token

import "strings"

// levenshtein computes the classic edit distance between a and b. No pack
// example imports a string-distance library for this; it is a small enough
// self-contained algorithm that hand-writing it is the grounded choice (see
// DESIGN.md).
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = minOf3(del, ins, sub)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func minOf3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

type suggestion struct {
	word string
	dist int
}

// Suggest returns up to maxItems entries from vocabulary within maxDistance
// edits of word (case-insensitive), ordered by increasing distance and then
// lexically.
func Suggest(word string, vocabulary []string, maxDistance, maxItems int) []string {
	lower := strings.ToLower(word)
	var candidates []suggestion
	for _, v := range vocabulary {
		d := levenshtein(lower, strings.ToLower(v))
		if d <= maxDistance {
			candidates = append(candidates, suggestion{word: v, dist: d})
		}
	}
	sortSuggestions(candidates)
	if len(candidates) > maxItems {
		candidates = candidates[:maxItems]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.word
	}
	return out
}

func sortSuggestions(s []suggestion) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0; j-- {
			if s[j].dist < s[j-1].dist || (s[j].dist == s[j-1].dist && s[j].word < s[j-1].word) {
				s[j], s[j-1] = s[j-1], s[j]
			} else {
				break
			}
		}
	}
}
