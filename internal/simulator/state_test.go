// internal/simulator/state_test.go
package simulator

import (
	"math"
	"testing"
	"time"

	"github.com/tamzrod/tcm-scripter/internal/catalog"
)

// fakeClock is a manually advanced session clock.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func deltaDef(name string, min, max float64) catalog.Definition {
	return catalog.Definition{
		Name:      name,
		Min:       min,
		Max:       max,
		Increment: catalog.StepSize,
		Kind:      catalog.KindDelta,
	}
}

func fixedStartDef(name string, min, max float64) catalog.Definition {
	return catalog.Definition{
		Name:      name,
		Min:       min,
		Max:       max,
		Increment: catalog.StepSize,
		Default:   0.40,
		Start:     max,
		Inverted:  true,
		Kind:      catalog.KindFixedStart,
	}
}

func testDefs() []catalog.Definition {
	return []catalog.Definition{
		deltaDef("final_drive", -0.20, 0),
		fixedStartDef("front_power_distrib", 0.20, 0.60),
		deltaDef("grip_front", -0.20, 0),
		fixedStartDef("front_brake_balance", 0.40, 0.80),
	}
}

func newTestState(t *testing.T, clk *fakeClock) *State {
	t.Helper()
	s, err := NewState(testDefs(), DefaultTimeouts, clk.Now)
	if err != nil {
		t.Fatalf("NewState err=%v", err)
	}
	return s
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewState_Defaults(t *testing.T) {
	s := newTestState(t, &fakeClock{})

	if got := s.Current().Name(); got != "final_drive" {
		t.Fatalf("initial setting=%q", got)
	}
	if v := s.Current().Value(); v != 0 {
		t.Fatalf("final_drive default=%v, want 0", v)
	}

	s.HandleInput(InputDown)
	if got := s.Current().Name(); got != "front_power_distrib" {
		t.Fatalf("second setting=%q", got)
	}
	if v := s.Current().Value(); !approx(v, 0.40) {
		t.Fatalf("front_power_distrib default=%v, want 0.40", v)
	}
}

func TestNewState_RequiresSettings(t *testing.T) {
	if _, err := NewState(nil, DefaultTimeouts, nil); err == nil {
		t.Fatalf("expected error for empty settings")
	}
}

func TestAdjust_Direction(t *testing.T) {
	s := newTestState(t, &fakeClock{})

	// final_drive starts at its max (0); increase input saturates.
	if s.HandleInput(InputRight) {
		t.Fatalf("increase at upper bound should be a no-op")
	}
	if !s.HandleInput(InputLeft) {
		t.Fatalf("decrease from upper bound should change value")
	}
	if v := s.Current().Value(); !approx(v, -0.01) {
		t.Fatalf("value=%v, want -0.01", v)
	}

	// Inverted setting: increase input lowers the stored value.
	s.HandleInput(InputDown)
	if !s.HandleInput(InputRight) {
		t.Fatalf("inverted adjust from default should change value")
	}
	if v := s.Current().Value(); !approx(v, 0.39) {
		t.Fatalf("inverted value=%v, want 0.39", v)
	}
}

func TestAdjust_Reversibility(t *testing.T) {
	s := newTestState(t, &fakeClock{})
	s.HandleInput(InputDown) // front_power_distrib, default 0.40

	before := s.Current().Value()
	s.HandleInput(InputRight)
	s.HandleInput(InputLeft)
	if v := s.Current().Value(); !approx(v, before) {
		t.Fatalf("value=%v after round trip, want %v", v, before)
	}
}

func TestAdjust_Clamping(t *testing.T) {
	s := newTestState(t, &fakeClock{})

	for i := 0; i < 50; i++ {
		s.HandleInput(InputLeft)
	}
	cur := s.Current()
	if v := cur.Value(); !approx(v, cur.Definition().Min) {
		t.Fatalf("value=%v, want min %v", v, cur.Definition().Min)
	}
	if s.HandleInput(InputLeft) {
		t.Fatalf("adjust at min should report no change")
	}
}

func TestNavigation_NoWraparound(t *testing.T) {
	s := newTestState(t, &fakeClock{})

	if s.HandleInput(InputUp) {
		t.Fatalf("up at first setting should be a no-op")
	}
	if s.Index() != 0 {
		t.Fatalf("index=%d, want 0", s.Index())
	}

	for i := 0; i < 10; i++ {
		s.HandleInput(InputDown)
	}
	last := len(s.Settings()) - 1
	if s.Index() != last {
		t.Fatalf("index=%d, want %d", s.Index(), last)
	}
	if s.HandleInput(InputDown) {
		t.Fatalf("down at last setting should be a no-op")
	}
}

func TestTimedOut_Inactivity(t *testing.T) {
	clk := &fakeClock{}
	s := newTestState(t, clk)

	clk.advance(9 * time.Second)
	if out, _ := s.TimedOut(); out {
		t.Fatalf("timed out before inactivity limit")
	}

	clk.advance(2 * time.Second)
	out, reason := s.TimedOut()
	if !out {
		t.Fatalf("expected inactivity timeout")
	}
	if reason != ReasonInactivity {
		t.Fatalf("reason=%q", reason)
	}
}

func TestTimedOut_MaxAgeDespiteInput(t *testing.T) {
	clk := &fakeClock{}
	s := newTestState(t, clk)

	// Continuous input every 5s keeps inactivity satisfied, but the
	// absolute limit still trips past 30s.
	for i := 0; i < 6; i++ {
		clk.advance(5 * time.Second)
		s.HandleInput(InputRight)
	}
	clk.advance(1 * time.Second)

	out, reason := s.TimedOut()
	if !out {
		t.Fatalf("expected max-age timeout")
	}
	if reason != ReasonMaxAge {
		t.Fatalf("reason=%q", reason)
	}
}

func TestTimedOut_InactivityCheckedFirst(t *testing.T) {
	clk := &fakeClock{}
	s := newTestState(t, clk)

	// Both thresholds tripped; only the inactivity reason is reported.
	clk.advance(40 * time.Second)
	out, reason := s.TimedOut()
	if !out || reason != ReasonInactivity {
		t.Fatalf("out=%v reason=%q", out, reason)
	}
}

func TestHandleInput_NoOpRefreshesActivity(t *testing.T) {
	clk := &fakeClock{}
	s := newTestState(t, clk)

	// Saturated adjustments change nothing but still count as activity.
	for i := 0; i < 3; i++ {
		clk.advance(8 * time.Second)
		if changed := s.HandleInput(InputRight); changed {
			t.Fatalf("expected saturated no-op")
		}
		if out, _ := s.TimedOut(); out {
			t.Fatalf("inactivity tripped despite no-op input at step %d", i)
		}
	}
}
