package compare

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/docmatch/internal/domain"
	"github.com/kailas-cloud/docmatch/internal/domain/comparison"
	"github.com/kailas-cloud/docmatch/internal/domain/document"
	"github.com/kailas-cloud/docmatch/internal/domain/frequency"
	"github.com/kailas-cloud/docmatch/internal/domain/vector"
	logpkg "github.com/kailas-cloud/docmatch/internal/logger"
	"github.com/kailas-cloud/docmatch/internal/metrics"
)

// Service runs the comparison pipeline: normalize both texts, then
// build the TF-IDF pair and score it, and summarize term frequencies.
// It keeps no per-request state; concurrent calls need no coordination.
// Input size is not limited here; work grows linearly with text length.
type Service struct {
	normalizer Normalizer
	logger     *zap.Logger
}

var _ Comparer = (*Service)(nil)

// New creates a comparison service.
func New(normalizer Normalizer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		normalizer: normalizer,
		logger:     logger,
	}
}

// Compare scores jobDescription against resume. It either returns a complete
// Result or an error, never a partial result.
func (s *Service) Compare(ctx context.Context, jobDescription, resume string) (comparison.Result, error) {
	start := time.Now()
	log := logpkg.FromContextOr(ctx, s.logger)

	res, err := s.compare(jobDescription, resume)
	duration := time.Since(start)
	if err != nil {
		metrics.ComparisonsTotal.WithLabelValues("error").Inc()
		log.Warn("Comparison failed", zap.Duration("duration", duration), zap.Error(err))
		return comparison.Result{}, err
	}

	metrics.ComparisonsTotal.WithLabelValues("ok").Inc()
	metrics.ComparisonDuration.Observe(duration.Seconds())
	metrics.SimilarityScore.Observe(float64(res.Similarity()))
	metrics.DocumentTokens.WithLabelValues(string(document.JobDescription)).
		Observe(float64(res.JobDescription().Total()))
	metrics.DocumentTokens.WithLabelValues(string(document.Resume)).
		Observe(float64(res.Resume().Total()))

	log.Debug("Comparison done",
		zap.Float64("similarity", res.Similarity().Rounded()),
		zap.Int("jd_tokens", res.JobDescription().Total()),
		zap.Int("resume_tokens", res.Resume().Total()),
		zap.Int("vocabulary", res.VocabularySize()),
		zap.Duration("duration", duration),
	)
	return res, nil
}

func (s *Service) compare(jobDescription, resume string) (comparison.Result, error) {
	jd, err := newDocument(document.JobDescription, jobDescription)
	if err != nil {
		return comparison.Result{}, err
	}
	cv, err := newDocument(document.Resume, resume)
	if err != nil {
		return comparison.Result{}, err
	}

	jdSeq, err := s.normalizer.Normalize(jd.Text())
	if err != nil {
		return comparison.Result{}, fmt.Errorf("normalize job description: %w", err)
	}
	cvSeq, err := s.normalizer.Normalize(cv.Text())
	if err != nil {
		return comparison.Result{}, fmt.Errorf("normalize resume: %w", err)
	}

	vocab, jdVec, cvVec := vector.Build(jdSeq, cvSeq)
	similarity := vector.Score(jdVec, cvVec)

	return comparison.New(
		similarity,
		frequency.Summarize(jdSeq),
		frequency.Summarize(cvSeq),
		vocab.Len(),
	), nil
}

func newDocument(kind document.Kind, raw string) (document.Document, error) {
	doc, err := document.New(kind, raw)
	if err != nil {
		return document.Document{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	return doc, nil
}
