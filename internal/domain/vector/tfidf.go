package vector

import (
	"math"
	"sort"

	"github.com/kailas-cloud/docmatch/internal/domain/text"
)

// corpusSize is the number of documents a vocabulary is built from.
// The model is defined for exactly one pair; batches are out of scope.
const corpusSize = 2

// TfidfVector is a dense, L2-normalized weight vector aligned to a Vocabulary.
type TfidfVector []float64

// Norm returns the Euclidean length of v.
func (v TfidfVector) Norm() float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// Build computes the shared vocabulary of a and b and their TF-IDF vectors.
//   - TF: raw term count in the document.
//   - IDF: smoothed, ln((1 + N) / (1 + df)) + 1 with N = 2.
//
// Both vectors are L2-normalized; an all-zero vector stays zero.
func Build(a, b text.TokenSequence) (Vocabulary, TfidfVector, TfidfVector) {
	countsA := termCounts(a)
	countsB := termCounts(b)

	terms := make([]string, 0, len(countsA)+len(countsB))
	for t := range countsA {
		terms = append(terms, t)
	}
	for t := range countsB {
		if _, ok := countsA[t]; !ok {
			terms = append(terms, t)
		}
	}
	sort.Strings(terms)
	vocab := newVocabulary(terms)

	vecA := make(TfidfVector, len(terms))
	vecB := make(TfidfVector, len(terms))
	for i, t := range terms {
		ca, cb := countsA[t], countsB[t]
		df := 0
		if ca > 0 {
			df++
		}
		if cb > 0 {
			df++
		}
		w := idf(df)
		vecA[i] = float64(ca) * w
		vecB[i] = float64(cb) * w
	}

	normalize(vecA)
	normalize(vecB)
	return vocab, vecA, vecB
}

func idf(df int) float64 {
	return math.Log(float64(1+corpusSize)/float64(1+df)) + 1
}

func termCounts(seq text.TokenSequence) map[string]int {
	counts := make(map[string]int, len(seq))
	for _, t := range seq {
		counts[t]++
	}
	return counts
}

func normalize(v TfidfVector) {
	n := v.Norm()
	if n == 0 {
		return
	}
	for i := range v {
		v[i] /= n
	}
}
