package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/depeter/snapscroll/internal/snap"
)

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time          { return c.now }
func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestModel(t *testing.T) (Model, *testClock) {
	t.Helper()
	clock := &testClock{now: time.Date(2024, 1, 1, 9, 5, 0, 0, time.UTC)}
	m, err := NewModel(Options{Hour: 9, Minute: 5, Clock: clock})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m, clock
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func keyMsg(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runeMsg(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

// mouse builds a left-button event on the given body row of column col.
func mouse(action tea.MouseAction, col, row int) tea.MouseMsg {
	return tea.MouseMsg{
		X:      colX(col) + 1,
		Y:      headerLines + row,
		Action: action,
		Button: tea.MouseButtonLeft,
	}
}

func TestNewModel_RoundsRowsUp(t *testing.T) {
	m, err := NewModel(Options{Rows: 6})
	if err != nil {
		t.Fatal(err)
	}
	if m.rows != 7 {
		t.Errorf("rows = %d, want 7", m.rows)
	}
	if m, _ := NewModel(Options{}); m.rows != DefaultRows {
		t.Errorf("default rows = %d, want %d", m.rows, DefaultRows)
	}
}

func TestModel_KeysStepActiveColumn(t *testing.T) {
	m, _ := newTestModel(t)
	if got := m.Label(); got != "Selected: 9:05" {
		t.Fatalf("initial label = %q", got)
	}

	m, _ = send(t, m, keyMsg(tea.KeyDown))
	if got := m.Label(); got != "Selected: 10:05" {
		t.Errorf("after down = %q, want 10:05", got)
	}

	m, _ = send(t, m, keyMsg(tea.KeyRight))
	if m.Active() != 1 {
		t.Fatalf("active = %d, want minutes", m.Active())
	}
	m, _ = send(t, m, runeMsg("k"))
	if got := m.Label(); got != "Selected: 10:04" {
		t.Errorf("after k = %q, want 10:04", got)
	}

	m, _ = send(t, m, keyMsg(tea.KeyTab))
	if m.Active() != 0 {
		t.Errorf("tab did not switch back to hours")
	}
}

func TestModel_HourWraps(t *testing.T) {
	clock := &testClock{now: time.Unix(0, 0)}
	m, err := NewModel(Options{Hour: 23, Clock: clock})
	if err != nil {
		t.Fatal(err)
	}
	m, _ = send(t, m, keyMsg(tea.KeyDown))
	if h, _ := m.Selected(); h != 0 {
		t.Errorf("hour after 23 = %d, want 0", h)
	}
	if got := m.cols[0].view.FocusedLogical(); got != 24 {
		t.Errorf("logical after wrap = %d, want 24 (middle group)", got)
	}
}

func TestModel_QuitKey(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := send(t, m, runeMsg("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestModel_TicksUntilSettled(t *testing.T) {
	m, clock := newTestModel(t)

	m, cmd := send(t, m, keyMsg(tea.KeyDown))
	if cmd == nil || !m.ticking {
		t.Fatal("snap did not schedule a frame")
	}
	if _, cmd := send(t, m, keyMsg(tea.KeyDown)); cmd != nil {
		t.Error("second frame scheduled while one is pending")
	}

	clock.Advance(snap.DefaultTransition)
	m, cmd = send(t, m, tickMsg(clock.Now()))
	if cmd != nil {
		t.Error("frame scheduled after the transition ended")
	}
	if m.cols[0].view.Phase() != snap.PhaseIdle {
		t.Errorf("phase = %v, want idle", m.cols[0].view.Phase())
	}
}

func TestModel_ClickSelectsRow(t *testing.T) {
	m, _ := newTestModel(t)
	mid := m.rows / 2

	m, _ = send(t, m, mouse(tea.MouseActionPress, 1, mid+1))
	m, _ = send(t, m, mouse(tea.MouseActionRelease, 1, mid+1))

	if got := m.Label(); got != "Selected: 9:06" {
		t.Errorf("label = %q, want 9:06", got)
	}
	if m.Active() != 1 {
		t.Error("click did not activate the minute column")
	}
}

func TestModel_ClickWhileSettlingPicksDrawnRow(t *testing.T) {
	m, clock := newTestModel(t)
	mid := m.rows / 2

	for range 3 {
		m, _ = send(t, m, keyMsg(tea.KeyDown))
	}
	if h, _ := m.Selected(); h != 12 {
		t.Fatalf("hour after three steps = %d, want 12", h)
	}

	// Early in the settle the rows are still drawn near 9.
	clock.Advance(10 * time.Millisecond)
	body := strings.Split(m.View(), "\n")[headerLines : headerLines+m.rows]
	if row := strings.TrimSpace(body[mid+1]); !strings.HasPrefix(row, "10") {
		t.Fatalf("row below centre drawn as %q, want 10", row)
	}

	m, _ = send(t, m, mouse(tea.MouseActionPress, 0, mid+1))
	m, _ = send(t, m, mouse(tea.MouseActionRelease, 0, mid+1))
	if h, _ := m.Selected(); h != 10 {
		t.Errorf("hour after clicking the drawn 10 = %d, want 10", h)
	}
}

func TestModel_DragSnapsByRows(t *testing.T) {
	m, clock := newTestModel(t)
	mid := m.rows / 2

	m, _ = send(t, m, mouse(tea.MouseActionPress, 0, mid))
	m, _ = send(t, m, mouse(tea.MouseActionMotion, 0, mid-1))
	if !m.cols[0].view.Grabbing() {
		t.Fatal("motion did not start a grab")
	}
	clock.Advance(time.Second)
	m, _ = send(t, m, mouse(tea.MouseActionMotion, 0, mid-3))
	m, _ = send(t, m, mouse(tea.MouseActionRelease, 0, mid-3))

	if h, _ := m.Selected(); h != 11 {
		t.Errorf("hour = %d, want 11", h)
	}
	if m.mouseCol != -1 {
		t.Error("release did not free the pointer")
	}
}

func TestModel_WheelSteps(t *testing.T) {
	m, _ := newTestModel(t)
	wheel := tea.MouseMsg{X: colX(1), Y: headerLines, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}

	m, _ = send(t, m, wheel)
	if _, mm := m.Selected(); mm != 6 {
		t.Errorf("minute = %d, want 6", mm)
	}

	wheel.Button = tea.MouseButtonWheelUp
	wheel.X = colX(1) + colWidth + 1 // past the last column
	m, _ = send(t, m, wheel)
	if _, mm := m.Selected(); mm != 6 {
		t.Errorf("wheel outside a column changed minute to %d", mm)
	}
}

func TestModel_ViewShowsSelection(t *testing.T) {
	m, _ := newTestModel(t)
	out := m.View()
	for _, want := range []string{"Selected: 9:05", "05", "9", ":"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
	body := strings.Split(out, "\n")[headerLines : headerLines+m.rows]
	if !strings.Contains(body[m.rows/2], "05") {
		t.Errorf("middle row %q does not hold the focused minute", body[m.rows/2])
	}
}
