package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QualiaKit/QualiaKit/internal/actuator"
	"github.com/QualiaKit/QualiaKit/internal/domain"
	"github.com/QualiaKit/QualiaKit/internal/haptics"
	"github.com/QualiaKit/QualiaKit/internal/platform/config"
)

type fixedClassifier struct {
	result domain.Classification
}

func (f fixedClassifier) Classify(_ context.Context, _ string, _ domain.FeedbackConfig) domain.Classification {
	return f.result
}

func newTestServer(t *testing.T, result domain.Classification) *Server {
	t.Helper()
	cfg := &config.Config{Port: "0", MaxWebSocketConnections: 10, DebounceInterval: 300 * time.Millisecond}
	feedback := domain.DefaultFeedbackConfig()
	clock := clockwork.NewFakeClock()
	dispatcher := haptics.New(actuator.NewNoop(), feedback, clock)
	t.Cleanup(dispatcher.Stop)

	return NewServer(cfg, fixedClassifier{result: result}, dispatcher, actuator.NewNoop(), feedback, clock)
}

func TestHandleAnalyze(t *testing.T) {
	srv := newTestServer(t, domain.Classification{Category: domain.CategoryPositive, Score: 0.8})

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"text":"great day"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	srv.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Classification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, domain.CategoryPositive, got.Category)
	assert.Equal(t, 0.8, got.Score)
}

func TestHandleAnalyze_InvalidBody(t *testing.T) {
	srv := newTestServer(t, domain.Classification{})

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{not json`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePlay(t *testing.T) {
	srv := newTestServer(t, domain.Classification{})

	req := httptest.NewRequest(http.MethodPost, "/api/haptics/play", strings.NewReader(`{"category":"intense"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, srv.dispatcher.HeartbeatActive())
}

func TestHandlePlay_UnknownCategory(t *testing.T) {
	srv := newTestServer(t, domain.Classification{})

	req := httptest.NewRequest(http.MethodPost, "/api/haptics/play", strings.NewReader(`{"category":"elated"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, domain.Classification{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	srv.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
