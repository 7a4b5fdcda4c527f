// Package comparison holds the outcome of comparing a job description with a resume.
package comparison

import (
	"github.com/kailas-cloud/docmatch/internal/domain/frequency"
	"github.com/kailas-cloud/docmatch/internal/domain/vector"
)

// Result is the full outcome of one comparison (immutable value object).
type Result struct {
	similarity     vector.Similarity
	jobDescription frequency.Summary
	resume         frequency.Summary
	vocabularySize int
}

// New creates a Result.
func New(
	similarity vector.Similarity,
	jobDescription, resume frequency.Summary,
	vocabularySize int,
) Result {
	return Result{
		similarity:     similarity,
		jobDescription: jobDescription,
		resume:         resume,
		vocabularySize: vocabularySize,
	}
}

// Similarity returns the cosine similarity of the two documents.
func (r Result) Similarity() vector.Similarity { return r.similarity }

// JobDescription returns the job description term frequencies.
func (r Result) JobDescription() frequency.Summary { return r.jobDescription }

// Resume returns the resume term frequencies.
func (r Result) Resume() frequency.Summary { return r.resume }

// VocabularySize returns the number of distinct terms across both documents.
func (r Result) VocabularySize() int { return r.vocabularySize }

// SharedTerms returns the terms present in both documents, sorted by combined count.
func (r Result) SharedTerms() []frequency.TermCount {
	shared := make(frequency.Summary)
	for t, c := range r.jobDescription {
		if rc, ok := r.resume[t]; ok {
			shared[t] = c + rc
		}
	}
	return shared.Top(0)
}

// MissingTerms returns job description terms absent from the resume, most frequent first.
func (r Result) MissingTerms() []frequency.TermCount {
	missing := make(frequency.Summary)
	for t, c := range r.jobDescription {
		if _, ok := r.resume[t]; !ok {
			missing[t] = c
		}
	}
	return missing.Top(0)
}
