package docmatch

import (
	"github.com/kailas-cloud/docmatch/internal/domain/comparison"
	"github.com/kailas-cloud/docmatch/internal/domain/frequency"
	"github.com/kailas-cloud/docmatch/internal/extract"
)

// File is an uploaded document. The format is picked from the Name
// extension, then from ContentType.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Result is the outcome of one comparison.
type Result struct {
	Similarity     float64 // cosine similarity in [0, 1]
	Display        string  // Similarity with 3 decimals
	JobDescription Summary
	Resume         Summary
	SharedTerms    []TermCount // terms in both documents, by combined count
	MissingTerms   []TermCount // job description terms absent from the resume
	VocabularySize int
}

// Summary describes the normalized tokens of one document.
type Summary struct {
	TokenCount int
	Terms      []TermCount // most frequent first
}

// TermCount is one entry of a frequency table.
type TermCount struct {
	Term  string
	Count int
}

func resultFromDomain(r comparison.Result, maxTerms int) Result {
	return Result{
		Similarity:     float64(r.Similarity()),
		Display:        r.Similarity().String(),
		JobDescription: summaryFromDomain(r.JobDescription(), maxTerms),
		Resume:         summaryFromDomain(r.Resume(), maxTerms),
		SharedTerms:    termsFromDomain(r.SharedTerms(), maxTerms),
		MissingTerms:   termsFromDomain(r.MissingTerms(), maxTerms),
		VocabularySize: r.VocabularySize(),
	}
}

func summaryFromDomain(s frequency.Summary, maxTerms int) Summary {
	return Summary{
		TokenCount: s.Total(),
		Terms:      termsFromDomain(s.Top(maxTerms), maxTerms),
	}
}

func termsFromDomain(tc []frequency.TermCount, maxTerms int) []TermCount {
	if maxTerms > 0 && len(tc) > maxTerms {
		tc = tc[:maxTerms]
	}
	out := make([]TermCount, len(tc))
	for i, c := range tc {
		out[i] = TermCount{Term: c.Term, Count: c.Count}
	}
	return out
}

func (f File) source() extract.Source {
	return extract.Source{Name: f.Name, ContentType: f.ContentType, Data: f.Data}
}
