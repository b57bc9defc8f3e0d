// Package server exposes the analysis pipeline over HTTP and WebSocket.
package server

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/QualiaKit/QualiaKit/internal/domain"
	"github.com/QualiaKit/QualiaKit/internal/haptics"
	"github.com/QualiaKit/QualiaKit/internal/platform/config"
)

// Classifier is the analyzer surface the server depends on.
type Classifier interface {
	Classify(ctx context.Context, text string, cfg domain.FeedbackConfig) domain.Classification
}

type Server struct {
	echo       *echo.Echo
	config     *config.Config
	classifier Classifier
	dispatcher *haptics.Dispatcher
	actuator   domain.Actuator
	feedback   domain.FeedbackConfig
	clock      clockwork.Clock
	startTime  time.Time

	wsConnections atomic.Int64
}

// NewServer wires the shared dispatcher used by the REST endpoints. Each
// WebSocket connection gets its own dispatcher and debounced session.
func NewServer(cfg *config.Config, classifier Classifier, dispatcher *haptics.Dispatcher, act domain.Actuator, feedback domain.FeedbackConfig, clock clockwork.Clock) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	srv := &Server{
		echo:       e,
		config:     cfg,
		classifier: classifier,
		dispatcher: dispatcher,
		actuator:   act,
		feedback:   feedback,
		clock:      clock,
		startTime:  time.Now(),
	}

	srv.registerRoutes()
	return srv
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
