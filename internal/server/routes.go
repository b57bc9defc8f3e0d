package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability
	s.echo.GET("/healthz", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Analysis API
	s.echo.POST("/api/analyze", s.handleAnalyze)
	s.echo.POST("/api/haptics/play", s.handlePlay)

	// Live typing stream (debounced per connection)
	s.echo.GET("/ws/type", s.handleTypeStream)
}
