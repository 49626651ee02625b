package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pixelmask.klederson.com/internal/animator"
	"pixelmask.klederson.com/internal/config"
	"pixelmask.klederson.com/internal/demo"
	"pixelmask.klederson.com/internal/masking"
)

// loopback delivers ticks straight back into the model, standing in for
// tea.Program.Send.
type loopback struct {
	model *AppModel
}

func (l *loopback) Send(msg tea.Msg) {
	next, _ := l.model.Update(msg)
	*l.model = next.(AppModel)
}

func newTestModel(t *testing.T, text string, alg masking.Algorithm) (*AppModel, *animator.ManualScheduler) {
	t.Helper()
	sched := animator.NewManualScheduler(time.UnixMilli(5_000_000))
	m := New(Options{Text: text, Algorithm: alg, Scheduler: sched})
	if err := m.Start(&loopback{model: &m}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return &m, sched
}

func update(m *AppModel, msg tea.Msg) {
	next, _ := m.Update(msg)
	*m = next.(AppModel)
}

func TestInitConfirmsInitialText(t *testing.T) {
	m, _ := newTestModel(t, "hello", masking.Block{})
	update(m, ConfirmMsg{Text: m.initialText, Algorithm: m.initialAlg})

	d := m.Driver()
	if d.Text() != "HELLO" {
		t.Errorf("Expected upper-cased text, got %q", d.Text())
	}
	if d.State() != animator.StateActive {
		t.Errorf("Expected active driver, got %s", d.State())
	}
	if got := d.Snapshot().Size().Width; got != 39 {
		t.Errorf("Expected width 39, got %d", got)
	}
}

func TestEnterConfirmsInput(t *testing.T) {
	m, _ := newTestModel(t, "", masking.Random{})
	update(m, ConfirmMsg{Text: "", Algorithm: masking.Random{}})
	if m.Driver().State() != animator.StateIdle {
		t.Fatalf("Expected idle driver for empty text")
	}

	m.input.SetValue("abc")
	update(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Driver().Text() != "ABC" {
		t.Errorf("Expected ABC, got %q", m.Driver().Text())
	}

	m.input.SetValue("")
	update(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Driver().State() != animator.StateIdle {
		t.Errorf("Expected idle after confirming empty text, got %s", m.Driver().State())
	}
	if !m.Driver().Snapshot().Empty() {
		t.Errorf("Expected empty grid")
	}
}

func TestTabCyclesAlgorithm(t *testing.T) {
	m, _ := newTestModel(t, "A", masking.Random{})
	update(m, ConfirmMsg{Text: "A", Algorithm: masking.Random{}})

	update(m, tea.KeyMsg{Type: tea.KeyTab})
	if got := m.Driver().Algorithm().Name(); got != "Wave" {
		t.Errorf("Expected Wave, got %s", got)
	}
	if m.cursor != 1 {
		t.Errorf("Expected cursor on Wave, got %d", m.cursor)
	}

	update(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	update(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := m.Driver().Algorithm().Name(); got != "Block" {
		t.Errorf("Expected Block, got %s", got)
	}
}

func TestCursorSelect(t *testing.T) {
	m, _ := newTestModel(t, "A", masking.Random{})
	update(m, ConfirmMsg{Text: "A", Algorithm: masking.Random{}})

	update(m, tea.KeyMsg{Type: tea.KeyDown})
	update(m, tea.KeyMsg{Type: tea.KeyDown})
	update(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 2 {
		t.Fatalf("Expected cursor clamped at 2, got %d", m.cursor)
	}
	if m.Driver().Algorithm().Name() != "Random" {
		t.Errorf("Expected browsing not to change the algorithm")
	}

	update(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if got := m.Driver().Algorithm().Name(); got != "Block" {
		t.Errorf("Expected Block after select, got %s", got)
	}
	want := masking.Block{}.Generate("A")
	if !m.Driver().Snapshot().Static.Equal(want.Static) {
		t.Errorf("Expected block static layer after select")
	}
}

func TestReconfirmSameSelectionKeepsBackground(t *testing.T) {
	m, sched := newTestModel(t, "HELLO", masking.Random{})
	update(m, ConfirmMsg{Text: "HELLO", Algorithm: masking.Random{}})
	sched.Advance(2 * config.TickInterval)
	before := m.Driver().Snapshot()
	gen := m.Driver().Stats().Generation

	update(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Driver().Snapshot().Static.Equal(before.Static) {
		t.Errorf("Expected Enter on unchanged text to keep the static layer")
	}

	update(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !m.Driver().Snapshot().Static.Equal(before.Static) {
		t.Errorf("Expected re-selecting the current algorithm to keep the static layer")
	}
	if got := m.Driver().Stats().Generation; got != gen {
		t.Errorf("Expected timer generation %d, got %d", gen, got)
	}

	m.input.SetValue("HELLO!")
	update(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Driver().Snapshot().Static.Equal(before.Static) {
		t.Errorf("Expected an edited text to re-texture the background")
	}
}

func TestTicksReachDriver(t *testing.T) {
	m, sched := newTestModel(t, "AB", masking.Block{})
	update(m, ConfirmMsg{Text: "AB", Algorithm: masking.Block{}})

	sched.Advance(3 * config.TickInterval)
	if got := m.Driver().Stats().Ticks; got != 3 {
		t.Errorf("Expected 3 ticks, got %d", got)
	}
	want := masking.Block{}.UpdateDynamic("AB", masking.Grid{}, sched.Now())
	if !m.Driver().Snapshot().Dynamic.Equal(want) {
		t.Errorf("Expected the dynamic layer from the last tick")
	}
}

func TestQuitStopsDriver(t *testing.T) {
	m, sched := newTestModel(t, "A", masking.Wave{})
	update(m, ConfirmMsg{Text: "A", Algorithm: masking.Wave{}})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("Expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("Expected tea.QuitMsg")
	}
	if m.Driver().State() != animator.StateStopped {
		t.Errorf("Expected stopped driver, got %s", m.Driver().State())
	}
	if sched.Pending() != 0 {
		t.Errorf("Expected no armed timer, got %d", sched.Pending())
	}
}

func TestDemoChange(t *testing.T) {
	m, _ := newTestModel(t, "A", masking.Random{})
	update(m, demo.ChangeMsg{Text: "NOISE", Algorithm: masking.Wave{}})

	if m.Driver().Text() != "NOISE" || m.Driver().Algorithm().Name() != "Wave" {
		t.Errorf("Expected NOISE/Wave, got %q/%s", m.Driver().Text(), m.Driver().Algorithm().Name())
	}
	if m.input.Value() != "NOISE" {
		t.Errorf("Expected input to follow the demo text, got %q", m.input.Value())
	}
	if m.cursor != 1 {
		t.Errorf("Expected cursor on Wave, got %d", m.cursor)
	}
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t, "HI", masking.Block{})
	if !strings.Contains(m.View(), "Initializing") {
		t.Errorf("Expected the initializing banner before the first resize")
	}

	update(m, tea.WindowSizeMsg{Width: 120, Height: 30})
	update(m, ConfirmMsg{Text: "HI", Algorithm: masking.Block{}})

	view := m.View()
	for _, want := range []string{"DISPLAY", "MASKING", "Block", "ACTIVE"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected %q in the view", want)
		}
	}

	update(m, ConfirmMsg{Text: "", Algorithm: masking.Block{}})
	idle := m.View()
	if !strings.Contains(idle, "Type text and press Enter") {
		t.Errorf("Expected the placeholder for empty text")
	}
	if !strings.Contains(idle, "Grid: 0x0") {
		t.Errorf("Expected an empty grid readout while idle")
	}
}
