package compare

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/docmatch/internal/domain/comparison"
	"github.com/kailas-cloud/docmatch/internal/extract"
)

// DocumentService compares uploaded document containers.
// Extraction failures reject the request before the comparison runs.
type DocumentService struct {
	extractor Extractor
	comparer  Comparer
}

// NewDocumentService creates a DocumentService.
func NewDocumentService(extractor Extractor, comparer Comparer) *DocumentService {
	return &DocumentService{extractor: extractor, comparer: comparer}
}

// CompareDocuments extracts both uploads and compares their text.
func (d *DocumentService) CompareDocuments(
	ctx context.Context, jobDescription, resume extract.Source,
) (comparison.Result, error) {
	jdText, err := d.extractor.Extract(ctx, jobDescription)
	if err != nil {
		return comparison.Result{}, fmt.Errorf("job description: %w", err)
	}
	cvText, err := d.extractor.Extract(ctx, resume)
	if err != nil {
		return comparison.Result{}, fmt.Errorf("resume: %w", err)
	}

	res, err := d.comparer.Compare(ctx, jdText, cvText)
	if err != nil {
		return comparison.Result{}, fmt.Errorf("compare: %w", err)
	}
	return res, nil
}
