package vector

import (
	"math"
	"strconv"
)

// Similarity is a cosine similarity in [0, 1].
type Similarity float64

// Rounded returns the similarity rounded to 3 decimals for display.
func (s Similarity) Rounded() float64 {
	return math.Round(float64(s)*1000) / 1000
}

// String formats the similarity with 3 decimals.
func (s Similarity) String() string {
	return strconv.FormatFloat(float64(s), 'f', 3, 64)
}

// Score returns the cosine similarity of a and b, clamped to [0, 1].
// Vectors of different length, empty vectors, or a zero norm score 0.
func Score(a, b TfidfVector) Similarity {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	s := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	switch {
	case s < 0:
		return 0
	case s > 1:
		return 1
	}
	return Similarity(s)
}
