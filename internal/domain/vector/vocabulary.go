// Package vector builds the TF-IDF model of a document pair and scores it.
package vector

// Vocabulary maps each distinct term of a document pair to a zero-based index.
// Terms are sorted lexicographically, so the index of a term is reproducible.
type Vocabulary struct {
	terms []string
	index map[string]int
}

func newVocabulary(terms []string) Vocabulary {
	index := make(map[string]int, len(terms))
	for i, t := range terms {
		index[t] = i
	}
	return Vocabulary{terms: terms, index: index}
}

// Len returns the number of distinct terms.
func (v Vocabulary) Len() int { return len(v.terms) }

// Index returns the position of term, or false when it is not in the vocabulary.
func (v Vocabulary) Index(term string) (int, bool) {
	i, ok := v.index[term]
	return i, ok
}

// Terms returns a copy of the terms in index order.
func (v Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}
