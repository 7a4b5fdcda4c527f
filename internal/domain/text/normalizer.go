// Package text turns raw document text into normalized token sequences.
package text

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/kailas-cloud/docmatch/internal/domain"
)

// TokenSequence is the ordered, normalized token stream of one document.
// Duplicates are retained.
type TokenSequence []string

// Len returns the number of tokens.
func (s TokenSequence) Len() int { return len(s) }

// StopwordSet is the read-only stopword resource.
type StopwordSet interface {
	IsStopword(w string) bool
	Len() int
}

// Normalizer lower-cases, tokenizes and filters text.
// It holds no mutable state and is safe for concurrent use.
type Normalizer struct {
	stopwords StopwordSet
}

// NewNormalizer creates a Normalizer over a loaded stopword set.
func NewNormalizer(stopwords StopwordSet) (*Normalizer, error) {
	if stopwords == nil || stopwords.Len() == 0 {
		return nil, fmt.Errorf("%w: stopword set not loaded", domain.ErrResourceUnavailable)
	}
	return &Normalizer{stopwords: stopwords}, nil
}

// Normalize returns the alphabetic, non-stopword tokens of raw in input order.
// Empty or whitespace-only input yields an empty sequence.
func (n *Normalizer) Normalize(raw string) (TokenSequence, error) {
	if n == nil || n.stopwords == nil {
		return nil, fmt.Errorf("%w: normalizer has no stopword set", domain.ErrResourceUnavailable)
	}

	// cases.Caser is stateful, so one per call.
	lower := cases.Lower(language.Und).String(norm.NFC.String(raw))

	seq := TokenSequence{}
	for _, tok := range Tokenize(lower) {
		if !IsAlpha(tok) || n.stopwords.IsStopword(tok) {
			continue
		}
		seq = append(seq, tok)
	}
	return seq, nil
}

// Stopwords returns the number of loaded stopwords.
func (n *Normalizer) Stopwords() int {
	if n == nil || n.stopwords == nil {
		return 0
	}
	return n.stopwords.Len()
}
