// Package resultcache caches comparison results in a key-value store.
package resultcache

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docmatch/internal/db"
	"github.com/kailas-cloud/docmatch/internal/domain/comparison"
	"github.com/kailas-cloud/docmatch/internal/domain/frequency"
	"github.com/kailas-cloud/docmatch/internal/domain/vector"
	"github.com/kailas-cloud/docmatch/internal/usecase/compare"
)

// DefaultTTL bounds how long a cached result lives.
const DefaultTTL = time.Hour

// store is the consumer interface for the result cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// CachedComparer caches comparison results keyed by the content of both texts.
type CachedComparer struct {
	inner       compare.Comparer
	store       store
	prefix      string
	fingerprint string
	ttl         time.Duration
	cacheTotal  *prometheus.CounterVec
	logger      *zap.Logger
}

var _ compare.Comparer = (*CachedComparer)(nil)

// New creates a caching decorator.
// fingerprint identifies the normalizer setup (e.g. stopword list) so results
// computed under a different lexicon are never served.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), may be nil.
func New(
	inner compare.Comparer,
	s store,
	prefix, fingerprint string,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedComparer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedComparer{
		inner:       inner,
		store:       s,
		prefix:      prefix + "cmp:",
		fingerprint: fingerprint,
		ttl:         ttl,
		cacheTotal:  cacheTotal,
		logger:      logger,
	}
}

// Compare returns a cached result or calls the inner comparer.
// Errors are never cached.
func (c *CachedComparer) Compare(ctx context.Context, jobDescription, resume string) (comparison.Result, error) {
	key := c.cacheKey(jobDescription, resume)

	if res, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return res, nil
	}

	c.incCache("miss")

	res, err := c.inner.Compare(ctx, jobDescription, resume)
	if err != nil {
		return comparison.Result{}, err
	}

	c.putToCache(ctx, key, res)
	return res, nil
}

func (c *CachedComparer) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

// cacheKey length-prefixes every part so ("ab", "c") and ("a", "bc") differ.
func (c *CachedComparer) cacheKey(jobDescription, resume string) string {
	h := sha256.New()
	for _, part := range []string{c.fingerprint, jobDescription, resume} {
		var n [8]byte
		binary.BigEndian.PutUint64(n[:], uint64(len(part)))
		h.Write(n[:])
		h.Write([]byte(part))
	}
	return c.prefix + hex.EncodeToString(h.Sum(nil))
}

func (c *CachedComparer) getFromCache(ctx context.Context, key string) (comparison.Result, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached result", zap.String("key", key), zap.Error(err))
		}
		return comparison.Result{}, false
	}
	if len(data) == 0 {
		return comparison.Result{}, false
	}

	res, err := fromCacheBytes(data)
	if err != nil {
		c.logger.Warn("Evicting unreadable cached result", zap.String("key", key), zap.Error(err))
		if err := c.store.Del(ctx, key); err != nil {
			c.logger.Warn("Failed to evict cached result", zap.String("key", key), zap.Error(err))
		}
		return comparison.Result{}, false
	}
	return res, true
}

func (c *CachedComparer) putToCache(ctx context.Context, key string, res comparison.Result) {
	data, err := toCacheBytes(res)
	if err != nil {
		c.logger.Warn("Failed to encode result", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache result", zap.String("key", key), zap.Error(err))
	}
}

type resultDTO struct {
	Similarity     float64        `json:"similarity"`
	JobDescription map[string]int `json:"job_description"`
	Resume         map[string]int `json:"resume"`
	VocabularySize int            `json:"vocabulary_size"`
}

func toCacheBytes(res comparison.Result) ([]byte, error) {
	data, err := json.Marshal(resultDTO{
		Similarity:     float64(res.Similarity()),
		JobDescription: res.JobDescription(),
		Resume:         res.Resume(),
		VocabularySize: res.VocabularySize(),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return data, nil
}

func fromCacheBytes(data []byte) (comparison.Result, error) {
	var dto resultDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return comparison.Result{}, fmt.Errorf("unmarshal result: %w", err)
	}
	if dto.Similarity < 0 || dto.Similarity > 1 {
		return comparison.Result{}, fmt.Errorf("invalid cached similarity %f", dto.Similarity)
	}
	jd := frequency.Summary(dto.JobDescription)
	if jd == nil {
		jd = frequency.Summary{}
	}
	cv := frequency.Summary(dto.Resume)
	if cv == nil {
		cv = frequency.Summary{}
	}
	return comparison.New(vector.Similarity(dto.Similarity), jd, cv, dto.VocabularySize), nil
}
