// internal/tui/model_test.go
package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tamzrod/tcm-scripter/internal/catalog"
	"github.com/tamzrod/tcm-scripter/internal/session"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func testController(t *testing.T) *session.Controller {
	t.Helper()

	cat, err := catalog.Default(zap.NewNop())
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	defs := cat.Select([]string{"final_drive", "front_power_distrib"})

	ctl, err := session.New(defs, session.Config{PollInterval: 5 * time.Millisecond}, zap.NewNop())
	if err != nil {
		t.Fatalf("building controller: %v", err)
	}
	if err := ctl.Start(); err != nil {
		t.Fatalf("starting controller: %v", err)
	}
	return ctl
}

func keyMsg(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// ---- tests ----

func TestUpdate_AdjustChangesValue(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctl := testController(t)
	defer ctl.Stop()

	m := New(ctl)
	_, before := ctl.Current()

	// final_drive starts at its upper bound, so decrease is the
	// direction with room to move.
	model, _ := m.Update(keyMsg(tea.KeyLeft))
	m = model.(Model)

	_, after := ctl.Current()
	if after == before {
		t.Fatalf("value unchanged after adjust input: %v", after)
	}
}

func TestUpdate_NavigationMovesSelection(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctl := testController(t)
	defer ctl.Stop()

	m := New(ctl)
	if name, _ := ctl.Current(); name != "final_drive" {
		t.Fatalf("unexpected initial selection: %s", name)
	}

	model, _ := m.Update(keyMsg(tea.KeyDown))
	m = model.(Model)

	if name, _ := ctl.Current(); name != "front_power_distrib" {
		t.Fatalf("selection did not move down: %s", name)
	}
}

func TestUpdate_QuitStopsSession(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctl := testController(t)
	defer ctl.Stop()

	m := New(ctl)
	model, cmd := m.Update(keyMsg(tea.KeyEsc))
	m = model.(Model)

	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg, got %T", cmd())
	}
	if ctl.Running() {
		t.Fatalf("controller still running after quit")
	}
	if m.View() != "" {
		t.Fatalf("closed model should render nothing")
	}
}

func TestUpdate_TickQuitsWhenSessionClosed(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctl := testController(t)
	ctl.Stop()

	m := New(ctl)
	_, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatalf("expected quit command after session close")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestView_RendersRows(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctl := testController(t)
	defer ctl.Stop()

	out := New(ctl).View()
	if !strings.Contains(out, "Final Drive") || !strings.Contains(out, "Front Power Distrib") {
		t.Fatalf("missing setting rows:\n%s", out)
	}
	if !strings.Contains(out, "> ") {
		t.Fatalf("missing selection marker:\n%s", out)
	}
}

func TestBar_InvertedFillsFromOppositeEnd(t *testing.T) {
	plain := session.SettingView{Value: 0.75, Min: 0, Max: 1}
	flipped := session.SettingView{Value: 0.75, Min: 0, Max: 1, Inverted: true}

	p := bar(plain)
	f := bar(flipped)
	if p == f {
		t.Fatalf("inverted bar should differ: %s vs %s", p, f)
	}
	if strings.Count(p, "█") != barWidth-strings.Count(f, "█") {
		t.Fatalf("fill counts should mirror: %s vs %s", p, f)
	}
}
