// Package main is the entry point for the API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/moodcart/shopping-assistant/internal/catalog"
	"github.com/moodcart/shopping-assistant/internal/config"
	"github.com/moodcart/shopping-assistant/internal/dialogue"
	"github.com/moodcart/shopping-assistant/internal/handler"
	"github.com/moodcart/shopping-assistant/internal/image"
	"github.com/moodcart/shopping-assistant/internal/middleware"
	natsclient "github.com/moodcart/shopping-assistant/internal/nats"
	"github.com/moodcart/shopping-assistant/internal/session"
	"github.com/moodcart/shopping-assistant/pkg/clock"
	"github.com/moodcart/shopping-assistant/pkg/logger"
	"github.com/moodcart/shopping-assistant/pkg/tracing"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("starting API server")

	// Initialize tracing if enabled
	ctx := context.Background()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "shopping-assistant", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing", zap.Error(err))
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Connect the optional NATS conversation mirror
	var natsConn *natsclient.Client
	var recorder dialogue.Recorder
	if cfg.NATSURL != "" {
		natsConn, err = natsclient.Connect(natsclient.Config{
			URL:      cfg.NATSURL,
			CAFile:   cfg.NATSCAFile,
			CertFile: cfg.NATSCertFile,
			KeyFile:  cfg.NATSKeyFile,
			Token:    cfg.NATSToken,
		}, log)
		if err != nil {
			log.Error("failed to connect to NATS", zap.Error(err))
			os.Exit(1)
		}
		defer natsConn.Close()

		mirror := natsclient.NewMirror(natsConn)
		if err := mirror.EnsureStream(ctx); err != nil {
			log.Error("failed to ensure stream", zap.Error(err))
			os.Exit(1)
		}
		recorder = mirror
	}

	// Assemble the dialogue engine dependencies
	clk := clock.New()
	taxonomy := catalog.Topics(cfg.TopicSet)
	resolver := catalog.NewResolver(taxonomy, clk, cfg.CatalogLatency, log)
	fetcher := image.NewStaticFetcher(clk, cfg.ImageLatencyMin, cfg.ImageLatencyMax, cfg.ImageFailureRate)
	pipeline := image.NewPipeline(fetcher, cfg.EnrichConcurrency, log)

	sessionSvc := session.NewService(dialogue.Deps{
		Taxonomy:    taxonomy,
		Resolver:    resolver,
		Pipeline:    pipeline,
		Clock:       clk,
		TypingDelay: cfg.TypingDelay,
		Logger:      log,
		Recorder:    recorder,
	}, log)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(natsConn)
	sessionHandler := handler.NewSessionHandler(sessionSvc, log)
	intentHandler := handler.NewIntentHandler(sessionSvc, log)
	streamHandler := handler.NewStreamHandler(sessionSvc, log)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Correlation-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health endpoints (no auth required)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.AuthEnabled {
			r.Use(middleware.Auth(cfg.JWTSecret))
		}
		r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))

		// Sessions
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessionHandler.Create)
			r.Get("/", sessionHandler.List)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", sessionHandler.Get)
				r.Delete("/", sessionHandler.Delete)

				// Intents
				r.Post("/messages", intentHandler.SubmitText)
				r.Post("/topic", intentHandler.SelectTopic)
				r.Post("/resubmit", intentHandler.Resubmit)

				// Streaming
				r.Get("/stream", streamHandler.Stream)
			})
		})
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("server listening", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
