// Package haptics converts classification results into timed actuation
// requests and owns the heartbeat sub-state. All state transitions are
// serialized through a single actor goroutine so that concurrent dispatches
// can never issue conflicting heartbeat start/stop commands out of order.
package haptics

import (
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/QualiaKit/QualiaKit/internal/domain"
	"github.com/QualiaKit/QualiaKit/internal/metrics"
)

// --- Command types ---

type dispatcherCmd interface{ dispatcherCmd() }

type cmdDispatch struct {
	category domain.Category
	explicit bool
}

func (cmdDispatch) dispatcherCmd() {}

type cmdReplaceConfig struct {
	cfg domain.FeedbackConfig
}

func (cmdReplaceConfig) dispatcherCmd() {}

type cmdHeartbeatState struct {
	replyCh chan bool
}

func (cmdHeartbeatState) dispatcherCmd() {}

type cmdStop struct {
	doneCh chan struct{}
}

func (cmdStop) dispatcherCmd() {}

// --- Dispatcher ---

// Dispatcher drives an Actuator from classification results. The heartbeat
// boolean is owned exclusively by the actor goroutine; delayed actuations are
// fire-and-forget and deliberately not cancelled by newer dispatches.
type Dispatcher struct {
	cmdCh    chan dispatcherCmd
	actuator domain.Actuator
	clock    clockwork.Clock
	cfg      domain.FeedbackConfig

	heartbeatOn bool
	stopCh      chan struct{}
}

// New creates and starts a Dispatcher. The actuator's Prepare is invoked
// best-effort: a failure is logged, not returned, since Play must work
// without it.
func New(act domain.Actuator, cfg domain.FeedbackConfig, clock clockwork.Clock) *Dispatcher {
	if err := act.Prepare(); err != nil {
		slog.Warn("actuator prepare failed, continuing best-effort", "error", err)
	}

	d := &Dispatcher{
		cmdCh:    make(chan dispatcherCmd, 64),
		actuator: act,
		clock:    clock,
		cfg:      cfg,
		stopCh:   make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	for cmd := range d.cmdCh {
		switch c := cmd.(type) {
		case cmdDispatch:
			d.handleDispatch(c)

		case cmdReplaceConfig:
			d.cfg = c.cfg

		case cmdHeartbeatState:
			c.replyCh <- d.heartbeatOn

		case cmdStop:
			close(d.stopCh)
			if d.heartbeatOn {
				d.heartbeatOn = false
				if err := d.actuator.StopLoop(); err != nil {
					slog.Warn("stop heartbeat loop failed", "error", err)
				}
				metrics.HeartbeatActive.Set(0)
			}
			close(c.doneCh)
			return
		}
	}
}

func (d *Dispatcher) handleDispatch(c cmdDispatch) {
	cfg := d.cfg

	// Heartbeat tracks the category regardless of the play/no-play gate:
	// a suppressed dispatch still stops a running loop.
	if cfg.EnableHeartbeat {
		d.updateHeartbeat(c.category == domain.CategoryIntense)
	}

	if !c.explicit && !cfg.AutoPlayHaptics {
		return
	}

	if cfg.DelaySeconds > 0 {
		delay := time.Duration(cfg.DelaySeconds * float64(time.Second))
		go func() {
			select {
			case <-d.clock.After(delay):
				d.play(c.category, cfg.Intensity)
			case <-d.stopCh:
			}
		}()
		return
	}
	d.play(c.category, cfg.Intensity)
}

func (d *Dispatcher) updateHeartbeat(on bool) {
	if on == d.heartbeatOn {
		return
	}
	d.heartbeatOn = on

	var err error
	if on {
		err = d.actuator.StartLoop()
		metrics.HeartbeatActive.Set(1)
	} else {
		err = d.actuator.StopLoop()
		metrics.HeartbeatActive.Set(0)
	}
	if err != nil {
		slog.Warn("heartbeat loop transition failed", "running", on, "error", err)
		metrics.ActuatorErrorsTotal.Inc()
	}
}

func (d *Dispatcher) play(category domain.Category, intensity float64) {
	if err := d.actuator.Play(category, intensity); err != nil {
		slog.Warn("actuator play failed", "category", string(category), "error", err)
		metrics.ActuatorErrorsTotal.Inc()
		return
	}
	metrics.ActuationsTotal.WithLabelValues(string(category)).Inc()
}

// --- Public API ---

// DispatchIfConfigured plays the category only when AutoPlayHaptics is set.
// The heartbeat state is updated either way.
func (d *Dispatcher) DispatchIfConfigured(category domain.Category) {
	d.cmdCh <- cmdDispatch{category: category}
}

// DispatchExplicit always plays, ignoring AutoPlayHaptics. Explicit
// dispatches are not debounced; ordering with respect to each other is
// guaranteed only for the heartbeat transition, not for actuator timing.
func (d *Dispatcher) DispatchExplicit(category domain.Category) {
	d.cmdCh <- cmdDispatch{category: category, explicit: true}
}

// ReplaceConfig swaps the configuration wholesale.
func (d *Dispatcher) ReplaceConfig(cfg domain.FeedbackConfig) {
	d.cmdCh <- cmdReplaceConfig{cfg: cfg}
}

// HeartbeatActive reports whether the loop is currently running. It also
// acts as a synchronization barrier: all previously sent dispatches have
// been processed when it returns.
func (d *Dispatcher) HeartbeatActive() bool {
	replyCh := make(chan bool, 1)
	d.cmdCh <- cmdHeartbeatState{replyCh: replyCh}
	return <-replyCh
}

// Stop drains the actor, stops any running heartbeat loop, and drops
// pending delayed actuations.
func (d *Dispatcher) Stop() {
	doneCh := make(chan struct{})
	d.cmdCh <- cmdStop{doneCh: doneCh}
	<-doneCh
}
