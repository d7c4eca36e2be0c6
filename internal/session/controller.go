// internal/session/controller.go
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/tamzrod/tcm-scripter/internal/catalog"
	"github.com/tamzrod/tcm-scripter/internal/simulator"
	"go.uber.org/zap"
)

// stopWait bounds how long Stop waits for the watchdog to exit.
const stopWait = time.Second

// Config is the runtime configuration for one session.
type Config struct {
	Timeouts     simulator.Timeouts
	PollInterval time.Duration    // watchdog re-check interval
	Clock        func() time.Time // session clock; nil means time.Now
	OnTimeout    func(reason string)
}

// Controller owns one simulator state and the watchdog goroutine that
// enforces its timeouts. Sessions are single-use: once closed, a
// controller never runs again.
//
// One lock serializes the watchdog's check-and-flip against every
// caller-side operation. Whichever side acquires first wins; once the
// closed state is visible it is terminal and no later input is applied.
type Controller struct {
	mu      sync.Mutex
	state   *simulator.State
	running bool
	closed  bool
	done    chan struct{}

	interval  time.Duration
	onTimeout func(string)
	log       *zap.Logger
}

// New builds a controller over the given definitions.
// Zero-valued Config fields fall back to defaults.
func New(defs []catalog.Definition, cfg Config, log *zap.Logger) (*Controller, error) {
	if cfg.Timeouts == (simulator.Timeouts{}) {
		cfg.Timeouts = simulator.DefaultTimeouts
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = 100 * time.Millisecond
	}
	if cfg.PollInterval < 0 {
		return nil, errors.New("session: poll interval must be > 0")
	}
	if log == nil {
		log = zap.NewNop()
	}

	state, err := simulator.NewState(defs, cfg.Timeouts, cfg.Clock)
	if err != nil {
		return nil, err
	}

	return &Controller{
		state:     state,
		interval:  cfg.PollInterval,
		onTimeout: cfg.OnTimeout,
		log:       log,
	}, nil
}

// Start transitions Initial -> Running and launches the watchdog.
// Starting a closed or already-running controller is an error.
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.New("session: already closed")
	}
	if c.running {
		return errors.New("session: already running")
	}

	c.running = true
	c.done = make(chan struct{})
	go c.watch(c.done)
	return nil
}

// watch polls the lock-guarded running flag and the timeout state until
// the session closes. On timeout it flips the flag itself and invokes
// the callback outside the lock.
func (c *Controller) watch(done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		if !c.running {
			c.mu.Unlock()
			return
		}
		out, reason := c.state.TimedOut()
		if !out {
			c.mu.Unlock()
			continue
		}
		c.running = false
		c.closed = true
		c.mu.Unlock()

		c.log.Info("session timed out", zap.String("reason", reason))
		if c.onTimeout != nil {
			c.onTimeout(reason)
		}
		return
	}
}

// Stop closes the session and waits (bounded) for the watchdog to
// exit. Idempotent: stopping a stopped or timed-out controller is a
// no-op, and a watchdog that already exited on its own does not block.
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.running {
		c.running = false
		c.closed = true
	}
	done := c.done
	c.mu.Unlock()

	if done == nil {
		return
	}
	select {
	case <-done:
	case <-time.After(stopWait):
		c.log.Warn("watchdog did not exit within stop wait")
	}
}

// Running reports whether the session is accepting input.
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// HandleInput applies one input. A closed (or never-started) session
// ignores input and returns false without mutating state; callers are
// not trusted to check first.
func (c *Controller) HandleInput(in simulator.Input) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return false
	}
	return c.state.HandleInput(in)
}

// SettingView is a read-only snapshot of one session setting.
type SettingView struct {
	Name     string
	Value    float64
	Min      float64
	Max      float64
	Inverted bool
	Selected bool
}

// View snapshots all settings without side effects.
func (c *Controller) View() []SettingView {
	c.mu.Lock()
	defer c.mu.Unlock()

	settings := c.state.Settings()
	out := make([]SettingView, 0, len(settings))
	for i, p := range settings {
		d := p.Definition()
		out = append(out, SettingView{
			Name:     p.Name(),
			Value:    p.Value(),
			Min:      d.Min,
			Max:      d.Max,
			Inverted: d.Inverted,
			Selected: i == c.state.Index(),
		})
	}
	return out
}

// Current returns the selected setting's name and clamped value.
func (c *Controller) Current() (string, float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.state.Current()
	return cur.Name(), cur.Value()
}
