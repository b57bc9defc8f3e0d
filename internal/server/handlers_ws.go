package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/QualiaKit/QualiaKit/internal/domain"
	"github.com/QualiaKit/QualiaKit/internal/haptics"
	"github.com/QualiaKit/QualiaKit/internal/input"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // embedded clients connect from arbitrary origins
	},
}

type typeFrame struct {
	Text string `json:"text"`
}

// handleTypeStream upgrades the connection and feeds every received text
// frame through a per-connection debounced session. Each connection owns its
// own dispatcher so heartbeat state never leaks between clients.
func (s *Server) handleTypeStream(c echo.Context) error {
	if s.wsConnections.Load() >= int64(s.config.MaxWebSocketConnections) {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "connection limit reached"})
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	s.wsConnections.Add(1)
	defer s.wsConnections.Add(-1)
	defer conn.Close()

	// Serialize writes: classification results arrive from timer goroutines.
	var writeMu sync.Mutex
	onResult := func(result domain.Classification) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(result); err != nil {
			slog.Debug("type stream write failed", "error", err)
		}
	}

	dispatcher := haptics.New(s.actuator, s.feedback, s.clock)
	session := input.NewSession(s.classifier, dispatcher, s.feedback, s.clock, s.config.DebounceInterval, onResult)
	defer dispatcher.Stop()
	defer session.Close()

	slog.Info("type stream connected", "session_id", session.ID().String())

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			break
		}
		var frame typeFrame
		if err := json.Unmarshal(payload, &frame); err != nil {
			// Tolerate raw text frames from minimal clients.
			frame.Text = string(payload)
		}
		session.Submit(frame.Text)
	}

	slog.Info("type stream disconnected", "session_id", session.ID().String())
	return nil
}
