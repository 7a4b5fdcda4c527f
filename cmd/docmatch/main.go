package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docmatch/internal/config"
	"github.com/kailas-cloud/docmatch/internal/db"
	dbRedis "github.com/kailas-cloud/docmatch/internal/db/redis"
	"github.com/kailas-cloud/docmatch/internal/domain/text"
	"github.com/kailas-cloud/docmatch/internal/domain/text/lexicon"
	"github.com/kailas-cloud/docmatch/internal/extract"
	logpkg "github.com/kailas-cloud/docmatch/internal/logger"
	"github.com/kailas-cloud/docmatch/internal/metrics"
	"github.com/kailas-cloud/docmatch/internal/repository/resultcache"
	chiTransport "github.com/kailas-cloud/docmatch/internal/transport/chi"
	mcpTransport "github.com/kailas-cloud/docmatch/internal/transport/mcp"
	compareuc "github.com/kailas-cloud/docmatch/internal/usecase/compare"
	healthuc "github.com/kailas-cloud/docmatch/internal/usecase/health"
	"github.com/kailas-cloud/docmatch/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting docmatch API server",
		zap.String("build", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Bool("cache_enabled", cfg.Database.Enabled()),
	)

	// Stopwords are loaded once; without them no comparison can run.
	lex, err := lexicon.Load(cfg.Compare.StopwordsFile)
	if err != nil {
		logger.Fatal("Failed to load stopwords", zap.Error(err))
	}
	normalizer, err := text.NewNormalizer(lex)
	if err != nil {
		logger.Fatal("Failed to create normalizer", zap.Error(err))
	}
	logger.Info("Stopwords loaded",
		zap.String("source", lex.Name()),
		zap.Int("count", lex.Len()),
		zap.String("fingerprint", lex.Fingerprint()),
	)

	// Register metrics explicitly (no init())
	metrics.RegisterComparisonMetrics(prometheus.DefaultRegisterer)
	metrics.RegisterHTTPMetrics(prometheus.DefaultRegisterer)

	// Optional result cache
	ctx := context.Background()
	store := openStore(ctx, cfg.Database, logger)
	if store != nil {
		defer store.Close()
	}

	// Build comparer chain (composition root)
	compareSvc := compareuc.New(normalizer, logger)

	var comparer compareuc.Comparer = compareSvc
	// Pass nil interface (not typed nil pointer!) when the cache is off.
	var cachePinger healthuc.CachePinger
	if store != nil {
		comparer = resultcache.New(
			compareSvc, store, cfg.Cache.KeyPrefix, lex.Fingerprint(),
			time.Duration(cfg.Cache.TTLSec)*time.Second,
			metrics.ResultCacheTotal, logger,
		)
		cachePinger = store
	}

	documentSvc := compareuc.NewDocumentService(extract.New(metrics.ExtractTotal), comparer)
	healthSvc := healthuc.New(lex, cachePinger)

	server := chiTransport.NewServer(comparer, documentSvc, healthSvc, logger).
		WithLimits(cfg.Compare.MaxTerms, cfg.Compare.MaxUploadBytes, cfg.Compare.MaxDocumentBytes)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(chiTransport.RateLimitMiddleware(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst))
	r.Use(metrics.Middleware())
	server.Routes(r)

	if cfg.MCP.Enabled {
		mcpServer := mcpTransport.NewServer(comparer, version.Version, cfg.Compare.MaxTerms, logger)
		r.Handle(cfg.MCP.Path, gomcp.NewStreamableHTTPHandler(
			func(*http.Request) *gomcp.Server { return mcpServer }, nil,
		))
		logger.Info("MCP endpoint enabled", zap.String("path", cfg.MCP.Path))
	}

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadTimeout:       time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// openStore connects the result cache store. Returns nil when no address is
// configured; an unreachable store is fatal.
func openStore(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) db.Store {
	if !cfg.Enabled() {
		logger.Info("Result cache disabled")
		return nil
	}

	// Valkey and Redis speak the same protocol for GET/SET.
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:      cfg.Addrs,
		Username:   cfg.Username,
		Password:   cfg.Password,
		DB:         cfg.DB,
		Standalone: cfg.Standalone,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.String("driver", cfg.Driver), zap.Error(err))
	}

	if err := store.WaitForReady(ctx, time.Duration(cfg.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database",
		zap.String("driver", cfg.Driver),
		zap.Strings("addrs", cfg.Addrs),
	)
	return store
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if rvr == http.ErrAbortHandler {
						panic(rvr)
					}
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(chiTransport.ErrorResponse{
						Code:    chiTransport.ErrorCodeInternalError,
						Message: "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
