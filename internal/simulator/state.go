// internal/simulator/state.go
package simulator

import (
	"errors"
	"time"

	"github.com/tamzrod/tcm-scripter/internal/catalog"
)

// Timeout reasons reported by TimedOut.
const (
	ReasonInactivity = "no input received within the inactivity limit"
	ReasonMaxAge     = "session open longer than the maximum duration"
)

// Timeouts holds the two independent session thresholds.
type Timeouts struct {
	Inactivity time.Duration // no-input limit, checked first
	MaxAge     time.Duration // absolute session age limit
}

// DefaultTimeouts mirrors the in-game settings screen behavior.
var DefaultTimeouts = Timeouts{
	Inactivity: 10 * time.Second,
	MaxAge:     30 * time.Second,
}

// State is the pure state machine of one simulator session: an ordered
// sequence of settings, a selection cursor and two activity timestamps.
// No concurrency; callers serialize access.
type State struct {
	settings []*ProSetting
	index    int

	timeouts  Timeouts
	now       func() time.Time
	started   time.Time
	lastInput time.Time
}

// NewState builds session state over the given definitions, which must
// already be in canonical order. The now func is the session clock;
// pass time.Now outside tests.
func NewState(defs []catalog.Definition, timeouts Timeouts, now func() time.Time) (*State, error) {
	if len(defs) == 0 {
		return nil, errors.New("simulator: at least one setting required")
	}
	if timeouts.Inactivity <= 0 || timeouts.MaxAge <= 0 {
		return nil, errors.New("simulator: timeouts must be > 0")
	}
	if now == nil {
		now = time.Now
	}

	settings := make([]*ProSetting, 0, len(defs))
	for _, d := range defs {
		settings = append(settings, NewProSetting(d))
	}

	t := now()
	return &State{
		settings:  settings,
		timeouts:  timeouts,
		now:       now,
		started:   t,
		lastInput: t,
	}, nil
}

// Current returns the selected setting. Never nil.
func (s *State) Current() *ProSetting {
	return s.settings[s.index]
}

// Index returns the selection cursor.
func (s *State) Index() int {
	return s.index
}

// Settings returns the session's settings in order. The slice is
// shared; callers must not reorder it.
func (s *State) Settings() []*ProSetting {
	return s.settings
}

// HandleInput applies one input and reports whether state changed.
// Every input, including a no-op at a boundary, refreshes the activity
// timestamp: activity and state change are deliberately distinct.
func (s *State) HandleInput(in Input) bool {
	s.lastInput = s.now()

	switch in {
	case InputUp:
		if s.index > 0 {
			s.index--
			return true
		}
		return false
	case InputDown:
		if s.index < len(s.settings)-1 {
			s.index++
			return true
		}
		return false
	default:
		return s.Current().Adjust(in)
	}
}

// TimedOut evaluates the two thresholds in order: inactivity first,
// then absolute age. At most one reason is reported.
func (s *State) TimedOut() (bool, string) {
	t := s.now()
	if t.Sub(s.lastInput) > s.timeouts.Inactivity {
		return true, ReasonInactivity
	}
	if t.Sub(s.started) > s.timeouts.MaxAge {
		return true, ReasonMaxAge
	}
	return false, ""
}
