// Package frequency aggregates token counts for visualization.
package frequency

import (
	"sort"

	"github.com/kailas-cloud/docmatch/internal/domain/text"
)

// Summary maps a term to its number of occurrences in one document.
type Summary map[string]int

// TermCount is a single (term, count) pair.
type TermCount struct {
	Term  string
	Count int
}

// Summarize counts each distinct term of seq. The counts sum to seq.Len().
func Summarize(seq text.TokenSequence) Summary {
	s := make(Summary, len(seq))
	for _, t := range seq {
		s[t]++
	}
	return s
}

// Total returns the sum of all counts.
func (s Summary) Total() int {
	total := 0
	for _, c := range s {
		total += c
	}
	return total
}

// Top returns the n most frequent terms, count descending then term ascending.
// n <= 0 returns every term.
func (s Summary) Top(n int) []TermCount {
	out := make([]TermCount, 0, len(s))
	for t, c := range s {
		out = append(out, TermCount{Term: t, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Term < out[j].Term
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
