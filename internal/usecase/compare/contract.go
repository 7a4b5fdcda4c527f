package compare

import (
	"context"

	"github.com/kailas-cloud/docmatch/internal/domain/comparison"
	"github.com/kailas-cloud/docmatch/internal/domain/text"
	"github.com/kailas-cloud/docmatch/internal/extract"
)

// Normalizer turns raw text into a token sequence.
type Normalizer interface {
	Normalize(raw string) (text.TokenSequence, error)
}

// Comparer compares a job description with a resume.
// Implemented by *Service and by caching decorators around it.
type Comparer interface {
	Compare(ctx context.Context, jobDescription, resume string) (comparison.Result, error)
}

// Extractor reads plain text out of an uploaded document container.
type Extractor interface {
	Extract(ctx context.Context, src extract.Source) (string, error)
}
