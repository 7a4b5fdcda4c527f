package docmatch

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	stopwordsFile string
	maxTerms      int

	driver     string // "valkey" or "redis"; empty = no cache
	addrs      []string
	password   string
	standalone bool
	cacheTTL   time.Duration

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithStopwordsFile replaces the built-in English stopword list with a file:
// one word per line, '#' starts a comment.
func WithStopwordsFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.stopwordsFile = path
	})
}

// WithMaxTerms caps the term lists in a Result. Default: 200.
func WithMaxTerms(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxTerms = n
	})
}

// WithValkeyCache caches results in a Valkey instance.
func WithValkeyCache(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "valkey"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedisCache caches results in a Redis instance.
func WithRedisCache(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithStandalone disables cluster topology discovery for the cache.
func WithStandalone() Option {
	return optionFunc(func(c *clientConfig) {
		c.standalone = true
	})
}

// WithCacheTTL sets how long cached results live. Default: 1h.
func WithCacheTTL(ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.cacheTTL = ttl
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
