package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/QualiaKit/QualiaKit/internal/domain"
)

type analyzeRequest struct {
	Text string `json:"text"`
}

type playRequest struct {
	Category string `json:"category"`
}

// handleAnalyze classifies the submitted text and, when auto-play is
// configured, drives the shared dispatcher with the result.
func (s *Server) handleAnalyze(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	result := s.classifier.Classify(c.Request().Context(), req.Text, s.feedback)
	s.dispatcher.DispatchIfConfigured(result.Category)

	return c.JSON(http.StatusOK, result)
}

// handlePlay triggers an explicit actuation, bypassing the auto-play gate.
func (s *Server) handlePlay(c echo.Context) error {
	var req playRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	s.dispatcher.DispatchExplicit(category)
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": time.Since(s.startTime).Seconds(),
	})
}
