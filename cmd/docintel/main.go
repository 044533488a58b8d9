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
	"go.uber.org/zap"

	"github.com/docintel-cloud/docintel/internal/config"
	"github.com/docintel-cloud/docintel/internal/db"
	dbRedis "github.com/docintel-cloud/docintel/internal/db/redis"
	"github.com/docintel-cloud/docintel/internal/domain/analysis"
	"github.com/docintel-cloud/docintel/internal/extract"
	logpkg "github.com/docintel-cloud/docintel/internal/logger"
	"github.com/docintel-cloud/docintel/internal/metrics"
	"github.com/docintel-cloud/docintel/internal/repository/analysiscache"
	documentrepo "github.com/docintel-cloud/docintel/internal/repository/document"
	chiTransport "github.com/docintel-cloud/docintel/internal/transport/chi"
	openaiAnalysis "github.com/docintel-cloud/docintel/internal/transport/openai"
	documentuc "github.com/docintel-cloud/docintel/internal/usecase/document"
	healthuc "github.com/docintel-cloud/docintel/internal/usecase/health"
	intakeuc "github.com/docintel-cloud/docintel/internal/usecase/intake"
	searchuc "github.com/docintel-cloud/docintel/internal/usecase/search"
	"github.com/docintel-cloud/docintel/internal/version"
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

	logger.Info("Starting docintel API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// Wait for database to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register analysis metrics explicitly (no init())
	metrics.RegisterAnalysisMetrics()

	analyzer, analysisHealth := buildAnalyzer(cfg, store, logger)

	docRepo := documentrepo.New(store)
	extractor := extract.New()

	docSvc := documentuc.New(docRepo).
		WithPagination(cfg.Pagination.DefaultPageSize, cfg.Pagination.MaxPageSize)
	intakeSvc := intakeuc.New(docRepo, extractor, analyzer)
	searchSvc := searchuc.New(docRepo).
		WithLimits(cfg.Search.DefaultTopK, cfg.Search.MaxTopK)
	healthSvc := healthuc.New(store, analysisHealth)

	server := chiTransport.NewServer(
		docSvc, intakeSvc, searchSvc, healthSvc, cfg.Intake.MaxUploadBytes, logger,
	)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
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

// buildAnalyzer assembles the analyzer chain: OpenAI -> Cached.
// Returns nil when no API key is configured; intake then stores fallback
// records and uploads still succeed.
func buildAnalyzer(
	cfg config.Config,
	store db.Store,
	logger *zap.Logger,
) (intakeuc.Analyzer, healthuc.AnalysisChecker) {
	if cfg.Analysis.APIKey == "" {
		logger.Warn("No analysis API key configured, documents will be stored without AI metadata")
		return nil, nil
	}

	base := openaiAnalysis.NewAnalyzer(&openaiAnalysis.Config{
		APIKey:        cfg.Analysis.APIKey,
		BaseURL:       cfg.Analysis.BaseURL,
		Model:         cfg.Analysis.Model,
		TruncateChars: cfg.Analysis.TruncateChars,
		Logger:        logger,
	})
	logger.Info("Analyzer created", zap.String("model", cfg.Analysis.Model))

	var analyzer analysis.Analyzer = base
	if cfg.Analysis.CacheResults && store != nil {
		analyzer = analysiscache.New(base, store, metrics.AnalysisCacheTotal, logger)
	}

	return analyzer, base
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
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

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
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
