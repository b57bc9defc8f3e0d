// Package input owns the debounce discipline between a stream of raw text
// values (one per keystroke burst) and the classification pipeline. Each
// session guarantees at most one live classification from the debounce path:
// a new submission cooperatively cancels the previous timer before arming
// its own, and a superseded timer never invokes the pipeline at all.
package input

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/QualiaKit/QualiaKit/internal/domain"
	"github.com/QualiaKit/QualiaKit/internal/metrics"
)

// DefaultInterval is the quiescent interval after the last keystroke before
// the pipeline runs.
const DefaultInterval = 300 * time.Millisecond

// Classifier is the slice of the analyzer the session needs.
type Classifier interface {
	Classify(ctx context.Context, text string, cfg domain.FeedbackConfig) domain.Classification
}

// Dispatcher is the slice of the haptic dispatcher the session needs.
type Dispatcher interface {
	DispatchIfConfigured(category domain.Category)
}

// Session debounces text submissions for one client. Safe for concurrent
// Submit calls.
type Session struct {
	id         uuid.UUID
	classifier Classifier
	dispatcher Dispatcher
	cfg        domain.FeedbackConfig
	clock      clockwork.Clock
	interval   time.Duration
	onResult   func(domain.Classification)

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	generation uint64
	closed     bool
}

// NewSession creates a debounced session. onResult, if non-nil, receives
// every classification produced by the debounce path (after dispatch).
func NewSession(classifier Classifier, dispatcher Dispatcher, cfg domain.FeedbackConfig, clock clockwork.Clock, interval time.Duration, onResult func(domain.Classification)) *Session {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		id:         uuid.New(),
		classifier: classifier,
		dispatcher: dispatcher,
		cfg:        cfg,
		clock:      clock,
		interval:   interval,
		onResult:   onResult,
		ctx:        ctx,
		cancel:     cancel,
	}
	metrics.InputSessionsActive.Inc()
	return s
}

// ID identifies the session in logs.
func (s *Session) ID() uuid.UUID { return s.id }

// Submit registers a new text value. Any armed timer is superseded before
// the new one starts; classification runs only after the text stream has
// been quiet for the full interval.
func (s *Session) Submit(text string) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	go s.waitAndClassify(gen, text)
}

func (s *Session) waitAndClassify(gen uint64, text string) {
	select {
	case <-s.clock.After(s.interval):
	case <-s.ctx.Done():
		return
	}

	s.mu.Lock()
	stale := gen != s.generation || s.closed
	s.mu.Unlock()
	if stale {
		// Superseded by newer input; the pipeline is never invoked.
		metrics.DebounceSupersededTotal.Inc()
		return
	}

	result := s.classifier.Classify(s.ctx, text, s.cfg)
	s.dispatcher.DispatchIfConfigured(result.Category)
	if s.onResult != nil {
		s.onResult(result)
	}
}

// Close cancels any pending debounce timer and releases the session.
// Cancellation is cooperative: a pending timer that has not fired will not
// invoke the pipeline. Close is idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	metrics.InputSessionsActive.Dec()
}
