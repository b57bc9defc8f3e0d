// Package metrics defines the Prometheus instrumentation for the analysis
// pipeline and the haptic dispatcher.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Classification pipeline metrics
var (
	// ClassificationsTotal tracks classifications by resulting category and
	// the rule that produced them (stopword, idiom, intense_keyword,
	// mysterious_keyword, scorer).
	ClassificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emotion_classifications_total",
			Help: "Classifications by category and deciding rule",
		},
		[]string{"category", "rule"},
	)

	// ScorerErrorsTotal tracks backend failures converted to neutral scores.
	ScorerErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scorer_backend_errors_total",
			Help: "Scorer backend failures by backend (inference/ruletag)",
		},
		[]string{"backend"},
	)

	// ScorerDuration tracks scoring latency in seconds by branch.
	ScorerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scorer_duration_seconds",
			Help:    "Scoring duration in seconds by language branch",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"branch"},
	)
)

// Haptic dispatcher metrics
var (
	// ActuationsTotal tracks actuator plays by category.
	ActuationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "haptic_actuations_total",
			Help: "Actuator plays by emotion category",
		},
		[]string{"category"},
	)

	// ActuatorErrorsTotal tracks swallowed actuator failures.
	ActuatorErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "haptic_actuator_errors_total",
			Help: "Actuator failures (logged and swallowed)",
		},
	)

	// HeartbeatActive reports whether the heartbeat loop is running (0/1).
	HeartbeatActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "haptic_heartbeat_active",
			Help: "Whether the heartbeat loop is currently running",
		},
	)
)

// Input session metrics
var (
	// InputSessionsActive tracks currently open debounced input sessions.
	InputSessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "input_sessions_active",
			Help: "Currently open debounced input sessions",
		},
	)

	// DebounceSupersededTotal tracks debounce timers cancelled by newer input.
	DebounceSupersededTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "input_debounce_superseded_total",
			Help: "Debounce timers cancelled by newer input before firing",
		},
	)
)
