package docmatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/docmatch/internal/db"
	dbRedis "github.com/kailas-cloud/docmatch/internal/db/redis"
	"github.com/kailas-cloud/docmatch/internal/domain/comparison"
	"github.com/kailas-cloud/docmatch/internal/domain/text"
	"github.com/kailas-cloud/docmatch/internal/domain/text/lexicon"
	"github.com/kailas-cloud/docmatch/internal/extract"
	"github.com/kailas-cloud/docmatch/internal/repository/resultcache"
	compareuc "github.com/kailas-cloud/docmatch/internal/usecase/compare"
	healthuc "github.com/kailas-cloud/docmatch/internal/usecase/health"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultMaxTerms         = 200
	cacheKeyPrefix          = "docmatch:"
)

// Internal interfaces, swapped in tests.
type compareUseCase interface {
	Compare(ctx context.Context, jobDescription, resume string) (comparison.Result, error)
}

type documentUseCase interface {
	CompareDocuments(ctx context.Context, jobDescription, resume extract.Source) (comparison.Result, error)
}

// Client is the docmatch SDK entry point. Safe for concurrent use.
type Client struct {
	store      db.Store
	compareSvc compareUseCase
	docSvc     documentUseCase
	healthSvc  healthUseCase
	maxTerms   int
	obs        *observer
}

// New creates a Client. The stopword list is loaded once here; when a cache
// is configured the provided context bounds the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{maxTerms: defaultMaxTerms}
	for _, o := range opts {
		o.apply(cfg)
	}

	lex, err := lexicon.Load(cfg.stopwordsFile)
	if err != nil {
		return nil, fmt.Errorf("docmatch: load stopwords: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	var store db.Store
	if cfg.driver != "" {
		store, err = createStore(cfg)
		if err != nil {
			return nil, err
		}
		if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			store.Close()
			return nil, fmt.Errorf("docmatch: cache not ready: %w", err)
		}
	}

	return wireClient(lex, store, cfg, obs)
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "valkey", "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:      cfg.addrs,
			Password:   cfg.password,
			Standalone: cfg.standalone,
		})
		if err != nil {
			return nil, fmt.Errorf("docmatch: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("docmatch: unknown driver %q", cfg.driver)
	}
}

func wireClient(lex *lexicon.Lexicon, store db.Store, cfg *clientConfig, obs *observer) (*Client, error) {
	normalizer, err := text.NewNormalizer(lex)
	if err != nil {
		return nil, fmt.Errorf("docmatch: %w", err)
	}

	svc := compareuc.New(normalizer, zap.NewNop())

	var cmp compareuc.Comparer = svc
	var pinger healthuc.CachePinger
	if store != nil {
		cmp = resultcache.New(svc, store, cacheKeyPrefix, lex.Fingerprint(), cfg.cacheTTL, nil, zap.NewNop())
		pinger = store
	}

	return &Client{
		store:      store,
		compareSvc: cmp,
		docSvc:     compareuc.NewDocumentService(extract.New(nil), cmp),
		healthSvc:  healthuc.New(lex, pinger),
		maxTerms:   cfg.maxTerms,
		obs:        obs,
	}, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Compare scores a resume against a job description.
// Empty or stopword-only texts are valid and score 0.
func (c *Client) Compare(ctx context.Context, jobDescription, resume string) (res Result, err error) {
	start := time.Now()
	defer func() { c.obs.observe("compare", start, err, "similarity", res.Display) }()

	r, err := c.compareSvc.Compare(ctx, jobDescription, resume)
	if err != nil {
		return Result{}, fmt.Errorf("compare: %w", err)
	}
	c.obs.observeScore(float64(r.Similarity()))
	return resultFromDomain(r, c.maxTerms), nil
}

// CompareFiles extracts text from both files and compares it.
// Unreadable files fail with ErrUnsupportedFormat or ErrCorruptDocument.
func (c *Client) CompareFiles(ctx context.Context, jobDescription, resume File) (res Result, err error) {
	start := time.Now()
	defer func() { c.obs.observe("compare_files", start, err, "similarity", res.Display) }()

	if c.docSvc == nil {
		return Result{}, errors.New("docmatch: client not initialized")
	}
	r, err := c.docSvc.CompareDocuments(ctx, jobDescription.source(), resume.source())
	if err != nil {
		return Result{}, fmt.Errorf("compare files: %w", err)
	}
	c.obs.observeScore(float64(r.Similarity()))
	return resultFromDomain(r, c.maxTerms), nil
}
