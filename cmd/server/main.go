package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/QualiaKit/QualiaKit/internal/actuator"
	"github.com/QualiaKit/QualiaKit/internal/domain"
	"github.com/QualiaKit/QualiaKit/internal/emotion"
	"github.com/QualiaKit/QualiaKit/internal/haptics"
	"github.com/QualiaKit/QualiaKit/internal/inference"
	"github.com/QualiaKit/QualiaKit/internal/langid"
	"github.com/QualiaKit/QualiaKit/internal/platform/config"
	"github.com/QualiaKit/QualiaKit/internal/platform/logging"
	"github.com/QualiaKit/QualiaKit/internal/ruletag"
	"github.com/QualiaKit/QualiaKit/internal/scorer"
	"github.com/QualiaKit/QualiaKit/internal/server"
	"github.com/QualiaKit/QualiaKit/internal/tokenizer"
	"github.com/QualiaKit/QualiaKit/internal/vocab"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupInference(cfg *config.Config, clock clockwork.Clock) domain.Inference {
	if cfg.InferenceURL == "" {
		slog.Info("No inference URL configured, model branch scores neutral")
		return inference.NewNeutralStatic()
	}

	backend, err := inference.NewHTTPBackend(cfg.InferenceURL, nil, clock)
	if err != nil {
		slog.Error("Failed to create inference backend", "error", err)
		os.Exit(1)
	}
	return backend
}

func feedbackFromConfig(cfg *config.Config) domain.FeedbackConfig {
	feedback := domain.DefaultFeedbackConfig()
	feedback.AutoPlayHaptics = cfg.HapticAutoPlay
	feedback.EnableHeartbeat = cfg.HapticHeartbeat
	feedback.Intensity = cfg.HapticIntensity
	feedback.DelaySeconds = cfg.HapticDelaySeconds
	if len(cfg.IntenseKeywords) > 0 {
		feedback.IntenseKeywords = cfg.IntenseKeywords
	}
	if len(cfg.MysteriousKeywords) > 0 {
		feedback.MysteriousKeywords = cfg.MysteriousKeywords
	}
	if err := feedback.Validate(); err != nil {
		slog.Error("Invalid feedback configuration", "error", err)
		os.Exit(1)
	}
	return feedback
}

func runGracefulShutdown(srv *server.Server, dispatcher *haptics.Dispatcher) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		dispatcher.Stop()
		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	vocabulary, err := vocab.LoadFile(cfg.VocabPath)
	if err != nil {
		slog.Error("Failed to load vocabulary", "error", err)
		os.Exit(1)
	}
	slog.Info("Vocabulary loaded", "tokens", vocabulary.Size())

	encoder := tokenizer.New(vocabulary, cfg.MaxSequenceLength)
	scoring := scorer.New(encoder, setupInference(cfg, clock), ruletag.NewLexicon(), cfg.ModelLang)
	analyzer := emotion.NewAnalyzer(scoring, langid.NewScriptDetector())

	feedback := feedbackFromConfig(cfg)
	act := actuator.NewLog()
	dispatcher := haptics.New(act, feedback, clock)

	srv := server.NewServer(cfg, analyzer, dispatcher, act, feedback, clock)
	done := runGracefulShutdown(srv, dispatcher)

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
