// Package tui is a terminal time picker built on the same snap carousel core
// as the ebiten app. Every row is one item one cell tall.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/depeter/snapscroll/internal/motion"
	"github.com/depeter/snapscroll/internal/snap"
)

const (
	colWidth    = 6
	sepWidth    = 3
	headerLines = 2

	// DefaultRows is the visible height of each column.
	DefaultRows = 9

	frameInterval = 16 * time.Millisecond
)

// Options configures the picker.
type Options struct {
	// Rows is the number of visible rows per column; even values are rounded up.
	Rows         int
	Hour, Minute int
	Transition   time.Duration
	Clock        snap.Clock
}

type tickMsg time.Time

type column struct {
	view   *snap.View
	labels []string
	anim   motion.Transition
}

// selection is shared by the OnSnap callbacks and every copy of the model.
type selection struct {
	hour, minute int
}

// Model is the bubbletea model of the picker.
type Model struct {
	cols   [2]*column
	active int
	rows   int
	sel    *selection

	keys  KeyMap
	help  help.Model
	clock snap.Clock

	mouseCol int // column holding the left button, or -1
	ticking  bool
}

func NewModel(opts Options) (Model, error) {
	rows := opts.Rows
	if rows <= 0 {
		rows = DefaultRows
	}
	if rows%2 == 0 {
		rows++
	}
	clock := opts.Clock
	if clock == nil {
		clock = snap.SystemClock
	}

	m := Model{
		rows:     rows,
		sel:      &selection{},
		keys:     DefaultKeyMap(),
		help:     help.New(),
		clock:    clock,
		mouseCol: -1,
	}

	hours := make([]string, 24)
	for i := range hours {
		hours[i] = fmt.Sprint(i)
	}
	minutes := make([]string, 60)
	for i := range minutes {
		minutes[i] = fmt.Sprintf("%02d", i)
	}

	var err error
	if m.cols[0], err = newColumn(hours, opts.Hour, rows, opts, func(i int) { m.sel.hour = i }); err != nil {
		return Model{}, fmt.Errorf("hour column: %w", err)
	}
	if m.cols[1], err = newColumn(minutes, opts.Minute, rows, opts, func(i int) { m.sel.minute = i }); err != nil {
		return Model{}, fmt.Errorf("minute column: %w", err)
	}
	m.sel.hour = m.cols[0].view.Focused()
	m.sel.minute = m.cols[1].view.Focused()
	return m, nil
}

func newColumn(labels []string, initial, rows int, opts Options, onSnap func(int)) (*column, error) {
	v, err := snap.New(snap.Options{
		Count:        len(labels),
		Direction:    snap.Vertical,
		InitialIndex: initial,
		Transition:   opts.Transition,
		TapSlop:      0.5,
		OnSnap:       onSnap,
		Clock:        opts.Clock,
	})
	if err != nil {
		return nil, err
	}
	sizes := make([]float64, len(labels))
	for i := range sizes {
		sizes[i] = 1
	}
	v.SetMeasurement(snap.Measure(sizes, float64(rows), 0))

	c := &column{view: v, labels: labels}
	c.anim.Set(v.Inner())
	return c, nil
}

// Selected returns the picked hour and minute.
func (m Model) Selected() (hour, minute int) { return m.sel.hour, m.sel.minute }

// Label is the selection line under the picker.
func (m Model) Label() string {
	return fmt.Sprintf("Selected: %d:%02d", m.sel.hour, m.sel.minute)
}

// Active is the index of the column keys apply to: 0 hours, 1 minutes.
func (m Model) Active() int { return m.active }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	now := m.clock.Now()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tickMsg:
		m.ticking = false
		now = time.Time(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Prev):
			m.cols[m.active].view.Prev()
		case key.Matches(msg, m.keys.Next):
			m.cols[m.active].view.Next()
		case key.Matches(msg, m.keys.Hours):
			m.active = 0
		case key.Matches(msg, m.keys.Minutes):
			m.active = 1
		case key.Matches(msg, m.keys.Switch):
			m.active = 1 - m.active
		}

	case tea.MouseMsg:
		m = m.handleMouse(msg, now)
	}

	m.advance(now)
	if !m.ticking && m.animating(now) {
		m.ticking = true
		return m, tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
	}
	return m, nil
}

func colX(i int) int { return i * (colWidth + sepWidth) }

func columnAt(x int) int {
	for i := range 2 {
		if x >= colX(i) && x < colX(i)+colWidth {
			return i
		}
	}
	return -1
}

func (m Model) handleMouse(msg tea.MouseMsg, now time.Time) Model {
	row := msg.Y - headerLines
	pos := snap.Point{X: float64(msg.X), Y: float64(row) + 0.5}
	ev := snap.PointerEvent{Position: pos, Time: now}

	switch {
	case msg.Action == tea.MouseActionPress && (msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown):
		col := columnAt(msg.X)
		if col < 0 || m.mouseCol >= 0 {
			return m
		}
		m.active = col
		if msg.Button == tea.MouseButtonWheelUp {
			m.cols[col].view.Prev()
		} else {
			m.cols[col].view.Next()
		}

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		col := columnAt(msg.X)
		if col < 0 || row < 0 || row >= m.rows {
			return m
		}
		m.active, m.mouseCol = col, col
		ev.Phase = snap.PointerDown
		m.cols[col].handlePointer(ev, now)

	case msg.Action == tea.MouseActionMotion && m.mouseCol >= 0:
		ev.Phase = snap.PointerMove
		m.cols[m.mouseCol].handlePointer(ev, now)

	case msg.Action == tea.MouseActionRelease && m.mouseCol >= 0:
		ev.Phase = snap.PointerUp
		m.cols[m.mouseCol].handlePointer(ev, now)
		m.mouseCol = -1
	}
	return m
}

func (c *column) drawn(now time.Time) float64 {
	return c.view.Base() + c.anim.Value(now)
}

// handlePointer passes ev on with the rows as they are drawn at now, so a
// click during a settle picks the label under the cursor.
func (c *column) handlePointer(ev snap.PointerEvent, now time.Time) {
	c.view.HandlePointerDrawn(ev, c.drawn(now))
}

// advance settles finished snaps and steers each column's animation toward
// its view's inner translation.
func (m Model) advance(now time.Time) {
	for _, c := range m.cols {
		c.view.Tick(now)
		if c.view.Grabbing() {
			c.anim.Set(c.view.Inner())
			continue
		}
		c.anim.Retarget(c.view.Inner(), now, c.view.TransitionDuration(), motion.Ease)
	}
}

func (m Model) animating(now time.Time) bool {
	for _, c := range m.cols {
		if c.view.Phase() == snap.PhaseSettling || c.anim.Active(now) {
			return true
		}
	}
	return false
}

func (m Model) renderColumn(i int, now time.Time) string {
	c := m.cols[i]
	geo := c.view.Geometry()
	translation := c.drawn(now)
	mid := m.rows / 2

	lines := make([]string, m.rows)
	for r := range lines {
		text := ""
		if logical, ok := geo.HitTest(float64(r) + 0.5 - translation); ok {
			text = c.labels[geo.Physical(logical)]
		}
		style := Row
		if r == mid {
			style = FocusedRow
			if i == m.active {
				style = ActiveFocusedRow
			}
		}
		lines[r] = style.Render(text)
	}
	return strings.Join(lines, "\n")
}

func (m Model) View() string {
	now := m.clock.Now()

	sep := make([]string, m.rows)
	sep[m.rows/2] = ":"
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderColumn(0, now),
		Separator.Render(strings.Join(sep, "\n")),
		m.renderColumn(1, now),
	)

	var b strings.Builder
	b.WriteString(Title.Render("Pick a time"))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n\n")
	b.WriteString(Label.Render(m.Label()))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}
