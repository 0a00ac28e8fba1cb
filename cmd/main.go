//go:generate go run github.com/swaggo/swag/cmd/swag init -d ../ -g cmd/main.go -o ../docs
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"review-verify/ai"
	"review-verify/api"
	"review-verify/heuristic"
	"review-verify/internal"
	"review-verify/observability"
	"review-verify/services"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	_ "review-verify/docs"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// @title        Review Verify API
// @version      1.0
// @description  Scores product reviews for fakeness and AI authorship.
// @BasePath     /
func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and serves until a termination signal arrives.
// Returning instead of exiting lets deferred cleanup run.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	gin.SetMode(config.GinMode)

	// 2. Model bundle, loaded once and shared read-only
	var classifier services.Scorer
	var predictor services.LabelPredictor
	modelLoaded := false
	if config.ModelBundlePath != "" {
		bundle, err := ai.LoadBundle(config.ModelBundlePath)
		if err != nil {
			return exitRuntime, fmt.Errorf("model bundle loading failed: %w", err)
		}
		if !bundle.Consistent() {
			log.Warn("Vectorizer and classifier disagree on feature count, predictions will fail",
				"dimension", bundle.Vectorizer().Dimension(),
				"n_features", bundle.Forest().NFeatures())
		}
		analysis, err := ai.NewAnalysis(bundle)
		if err != nil {
			return exitRuntime, fmt.Errorf("model bundle unusable: %w", err)
		}
		classifier, predictor, modelLoaded = analysis, analysis, true
		log.Info("Model bundle loaded", "path", config.ModelBundlePath, "version", bundle.Version())
	} else {
		log.Warn("No model bundle configured, /predict will answer 500")
	}

	// 3. Heuristic scorers
	policies, err := heuristic.LoadPolicies(config.HeuristicPolicyPath)
	if err != nil {
		return exitConfig, fmt.Errorf("heuristic policy error: %w", err)
	}
	src := heuristic.NewSource()
	if config.HeuristicSeed != nil {
		src = heuristic.NewSeededSource(uint64(*config.HeuristicSeed))
	}
	fakeHeuristic, err := heuristic.NewScorer("fake", policies.Fake, src, log)
	if err != nil {
		return exitConfig, err
	}
	aiScorer, err := heuristic.NewScorer("ai", policies.AI, src, log)
	if err != nil {
		return exitConfig, err
	}
	fakeScorer, err := services.SelectFakeScorer(config.FakeScorer, classifier, fakeHeuristic)
	if err != nil {
		return exitConfig, err
	}

	// 4. Service & HTTP layer
	service := services.NewScoringService(log, fakeScorer, aiScorer, predictor)
	probe, err := observability.NewProcessProbe(log)
	if err != nil {
		return exitRuntime, fmt.Errorf("process probe failed: %w", err)
	}
	handler := api.NewHandler(service, probe, config.FakeScorer, modelLoaded)
	server := &http.Server{
		Addr:         config.Address(),
		Handler:      api.NewRouter(log, handler, config.AllowedOrigins()),
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  2 * config.ReadTimeout,
	}

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", server.Addr, "fake_scorer", config.FakeScorer, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 7. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return exitRuntime, fmt.Errorf("shutdown failed: %w", err)
	}
	log.Info("Program stopped cleanly")
	return exitOK, nil
}
