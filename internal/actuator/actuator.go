// Package actuator provides Actuator implementations: a logging actuator for
// environments without a physical device, and a no-op actuator.
package actuator

import (
	"log/slog"

	"github.com/QualiaKit/QualiaKit/internal/domain"
)

// Log writes every actuation to the structured log. It stands in for a real
// tactile device when the service runs headless.
type Log struct{}

func NewLog() Log { return Log{} }

func (Log) Prepare() error {
	slog.Info("actuator ready")
	return nil
}

func (Log) Play(category domain.Category, intensity float64) error {
	slog.Info("haptic play", "category", string(category), "intensity", intensity)
	return nil
}

func (Log) StartLoop() error {
	slog.Info("haptic heartbeat loop started")
	return nil
}

func (Log) StopLoop() error {
	slog.Info("haptic heartbeat loop stopped")
	return nil
}

// Noop discards all actuations.
type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) Prepare() error                      { return nil }
func (Noop) Play(domain.Category, float64) error { return nil }
func (Noop) StartLoop() error                    { return nil }
func (Noop) StopLoop() error                     { return nil }
