package chi

import (
	"github.com/kailas-cloud/docmatch/internal/domain/comparison"
	"github.com/kailas-cloud/docmatch/internal/domain/frequency"
)

// ErrorCode is a machine-readable error kind in API responses.
type ErrorCode string

const (
	ErrorCodeBadRequest          ErrorCode = "bad_request"
	ErrorCodeUnauthorized        ErrorCode = "unauthorized"
	ErrorCodeNotFound            ErrorCode = "not_found"
	ErrorCodeMethodNotAllowed    ErrorCode = "method_not_allowed"
	ErrorCodeRateLimited         ErrorCode = "rate_limited"
	ErrorCodeInvalidInput        ErrorCode = "invalid_input"
	ErrorCodeDocumentTooLarge    ErrorCode = "document_too_large"
	ErrorCodeUnsupportedFormat   ErrorCode = "unsupported_format"
	ErrorCodeCorruptDocument     ErrorCode = "corrupt_document"
	ErrorCodeResourceUnavailable ErrorCode = "resource_unavailable"
	ErrorCodeInternalError       ErrorCode = "internal_error"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// CompareRequest is the body of POST /api/v1/compare.
type CompareRequest struct {
	JobDescription *string `json:"job_description"`
	Resume         *string `json:"resume"`
	TopTerms       *int    `json:"top_terms,omitempty"`
}

// CompareResponse is the comparison outcome.
type CompareResponse struct {
	Similarity        float64         `json:"similarity"`
	SimilarityDisplay string          `json:"similarity_display"`
	JobDescription    DocumentSummary `json:"job_description"`
	Resume            DocumentSummary `json:"resume"`
	SharedTerms       []TermCount     `json:"shared_terms"`
	MissingTerms      []TermCount     `json:"missing_terms"`
	VocabularySize    int             `json:"vocabulary_size"`
}

// DocumentSummary describes the normalized tokens of one document.
type DocumentSummary struct {
	TokenCount  int         `json:"token_count"`
	UniqueTerms int         `json:"unique_terms"`
	Terms       []TermCount `json:"terms"`
}

// TermCount is one entry of a frequency table.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func compareResponse(res comparison.Result, topTerms int) CompareResponse {
	return CompareResponse{
		Similarity:        float64(res.Similarity()),
		SimilarityDisplay: res.Similarity().String(),
		JobDescription:    documentSummary(res.JobDescription(), topTerms),
		Resume:            documentSummary(res.Resume(), topTerms),
		SharedTerms:       termCounts(limit(res.SharedTerms(), topTerms)),
		MissingTerms:      termCounts(limit(res.MissingTerms(), topTerms)),
		VocabularySize:    res.VocabularySize(),
	}
}

func documentSummary(s frequency.Summary, topTerms int) DocumentSummary {
	return DocumentSummary{
		TokenCount:  s.Total(),
		UniqueTerms: len(s),
		Terms:       termCounts(s.Top(topTerms)),
	}
}

func limit(tc []frequency.TermCount, n int) []frequency.TermCount {
	if n > 0 && len(tc) > n {
		return tc[:n]
	}
	return tc
}

func termCounts(tc []frequency.TermCount) []TermCount {
	out := make([]TermCount, len(tc))
	for i, c := range tc {
		out[i] = TermCount{Term: c.Term, Count: c.Count}
	}
	return out
}
