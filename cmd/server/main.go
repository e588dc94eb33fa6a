package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/pyqlens/backend/internal/analysis"
	"github.com/pyqlens/backend/internal/api"
	"github.com/pyqlens/backend/internal/drafter"
	"github.com/pyqlens/backend/internal/infrastructure/config"
	"github.com/pyqlens/backend/internal/scheduler"
	"github.com/pyqlens/backend/internal/service"
	"github.com/pyqlens/backend/internal/store"

	_ "github.com/pyqlens/backend/docs" // generated swagger docs
)

// @title           PYQ Lens API
// @version         1.0
// @description     Previous-year question analysis: repeated questions, important chapters, weightage prediction and mock tests.

// @host      localhost:8080
// @BasePath  /

const snapshotTimeout = 5 * time.Minute

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	analyzer, err := newAnalyzer(cfg.VocabularyPath)
	if err != nil {
		logger.Error("failed to load vocabulary", "path", cfg.VocabularyPath, "error", err)
		os.Exit(1)
	}

	var llm drafter.Drafter
	if cfg.LLMEnabled {
		llm = drafter.NewOpenAIDrafter(cfg.LLMURL, cfg.LLMModel)
		logger.Info("question drafting enabled", "url", cfg.LLMURL, "model", cfg.LLMModel)
	}

	analysisSvc := service.NewAnalysisService(db, analyzer, llm, cfg.DraftWorkers, logger)
	handler := api.NewHandler(db, analysisSvc, logger)

	// ── Scheduled snapshot refresh ──────────────────────────────────
	if cfg.SnapshotSchedule != "" {
		sched, err := scheduler.New(cfg.SnapshotTimezone)
		if err != nil {
			logger.Error("invalid snapshot timezone", "error", err)
			os.Exit(1)
		}
		if err := sched.Schedule(cfg.SnapshotSchedule, scheduler.SnapshotJob(analysisSvc, snapshotTimeout, logger)); err != nil {
			logger.Error("invalid snapshot schedule", "error", err)
			os.Exit(1)
		}
		sched.Start()
		defer sched.Stop()
		logger.Info("snapshot refresh scheduled", "schedule", cfg.SnapshotSchedule, "next", sched.Next())
	}

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      5 * time.Minute, // drafted mock tests wait on the model
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

func newAnalyzer(vocabularyPath string) (*analysis.Analyzer, error) {
	if vocabularyPath == "" {
		return analysis.NewDefault(), nil
	}
	v, err := analysis.LoadVocabulary(vocabularyPath)
	if err != nil {
		return nil, err
	}
	return analysis.NewFromVocabulary(v)
}
