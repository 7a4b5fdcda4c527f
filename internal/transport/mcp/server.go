// Package mcp exposes the comparator as a Model Context Protocol tool.
package mcp

import (
	"context"
	"fmt"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docmatch/internal/domain/frequency"
	logpkg "github.com/kailas-cloud/docmatch/internal/logger"
	compareuc "github.com/kailas-cloud/docmatch/internal/usecase/compare"
)

// ToolCompare is the name of the comparison tool.
const ToolCompare = "resume_match"

const defaultMaxTerms = 20

// allTerms as top_terms returns every term, uncapped.
const allTerms = -1

// CompareInput is the input of resume_match.
type CompareInput struct {
	JobDescription string `json:"job_description" jsonschema:"full text of the job description"`
	Resume         string `json:"resume" jsonschema:"full text of the resume"`
	TopTerms       int    `json:"top_terms,omitempty" jsonschema:"number of terms per list: 0 for the server default, -1 for all terms"`
}

// CompareOutput is the structured output of resume_match.
type CompareOutput struct {
	Similarity          float64     `json:"similarity"`
	SimilarityDisplay   string      `json:"similarity_display"`
	JobDescriptionWords int         `json:"job_description_tokens"`
	ResumeWords         int         `json:"resume_tokens"`
	JobDescriptionTerms []TermCount `json:"job_description_terms"`
	ResumeTerms         []TermCount `json:"resume_terms"`
	SharedTerms         []TermCount `json:"shared_terms"`
	MissingTerms        []TermCount `json:"missing_terms"`
}

// TermCount is one entry of a frequency table.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// NewServer builds an MCP server with the comparison tool registered.
func NewServer(comparer compareuc.Comparer, version string, maxTerms int, logger *zap.Logger) *gomcp.Server {
	if maxTerms <= 0 {
		maxTerms = defaultMaxTerms
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	server := gomcp.NewServer(&gomcp.Implementation{
		Name:    "docmatch",
		Version: version,
	}, nil)

	gomcp.AddTool(server, &gomcp.Tool{
		Name: ToolCompare,
		Description: "Score how well a resume matches a job description with TF-IDF cosine similarity " +
			"(0 = no shared vocabulary, 1 = identical term profile). Returns the score and the " +
			"shared and missing keywords.",
		Annotations: &gomcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *gomcp.CallToolRequest, input CompareInput) (*gomcp.CallToolResult, CompareOutput, error) {
		var top int
		switch {
		case input.TopTerms == 0:
			top = maxTerms
		case input.TopTerms == allTerms:
			top = 0
		case input.TopTerms < 0:
			return nil, CompareOutput{}, fmt.Errorf("top_terms must be positive, 0 or %d, got %d", allTerms, input.TopTerms)
		default:
			top = min(input.TopTerms, maxTerms)
		}

		ctx = logpkg.ContextWithLogger(ctx, logger.With(zap.String("tool", ToolCompare)))
		res, err := comparer.Compare(ctx, input.JobDescription, input.Resume)
		if err != nil {
			return nil, CompareOutput{}, fmt.Errorf("compare: %w", err)
		}

		return nil, CompareOutput{
			Similarity:          float64(res.Similarity()),
			SimilarityDisplay:   res.Similarity().String(),
			JobDescriptionWords: res.JobDescription().Total(),
			ResumeWords:         res.Resume().Total(),
			JobDescriptionTerms: termCounts(res.JobDescription().Top(top), top),
			ResumeTerms:         termCounts(res.Resume().Top(top), top),
			SharedTerms:         termCounts(res.SharedTerms(), top),
			MissingTerms:        termCounts(res.MissingTerms(), top),
		}, nil
	})

	return server
}

// termCounts converts at most n entries; n <= 0 keeps all.
func termCounts(tc []frequency.TermCount, n int) []TermCount {
	if n > 0 && len(tc) > n {
		tc = tc[:n]
	}
	out := make([]TermCount, len(tc))
	for i, c := range tc {
		out[i] = TermCount{Term: c.Term, Count: c.Count}
	}
	return out
}
