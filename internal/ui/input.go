package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/snapscroll/internal/snap"
)

// NavDirection is a keyboard navigation direction.
type NavDirection int

const (
	NavNone NavDirection = iota
	NavUp
	NavDown
	NavLeft
	NavRight
)

// Input is everything a screen reads in one Update.
type Input struct {
	Now      time.Time
	Pointers []snap.PointerEvent
	// Step is -1 or +1 when the prev/next binding fired this frame.
	Step int
	Nav  NavDirection
}

// MousePointerID is the pointer ID used for the left mouse button. Touch IDs
// from ebiten are never negative.
const MousePointerID = -1

// PointerSample is one pointer's position in a frame.
type PointerSample struct {
	ID   int
	X, Y float64
}

// FrameInput is the raw pointer state of one frame.
type FrameInput struct {
	// Pressed lists every pointer that is down.
	Pressed []PointerSample
	// Released lists pointers lifted this frame at their last position.
	Released []PointerSample
}

var touchIDs []ebiten.TouchID

// ReadFrameInput snapshots touches and the left mouse button.
func ReadFrameInput() FrameInput {
	var in FrameInput

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		in.Pressed = append(in.Pressed, PointerSample{ID: int(id), X: float64(x), Y: float64(y)})
	}
	touchIDs = inpututil.AppendJustReleasedTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		in.Released = append(in.Released, PointerSample{ID: int(id), X: float64(x), Y: float64(y)})
	}

	mx, my := ebiten.CursorPosition()
	mouse := PointerSample{ID: MousePointerID, X: float64(mx), Y: float64(my)}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		in.Pressed = append(in.Pressed, mouse)
	} else if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		in.Released = append(in.Released, mouse)
	}
	return in
}

// PointerTracker turns per-frame pointer snapshots into down, move, up and
// cancel events.
type PointerTracker struct {
	last map[int]snap.Point
}

func NewPointerTracker() *PointerTracker {
	return &PointerTracker{last: make(map[int]snap.Point)}
}

// Events diffs in against the previous frame. A tracked pointer that is
// neither pressed nor released was lost (window focus, device unplugged) and
// is cancelled.
func (pt *PointerTracker) Events(in FrameInput, now time.Time) []snap.PointerEvent {
	var evs []snap.PointerEvent
	seen := make(map[int]bool, len(in.Pressed))

	for _, s := range in.Pressed {
		seen[s.ID] = true
		pos := snap.Point{X: s.X, Y: s.Y}
		prev, tracked := pt.last[s.ID]
		switch {
		case !tracked:
			evs = append(evs, snap.PointerEvent{ID: s.ID, Phase: snap.PointerDown, Position: pos, Time: now})
		case prev != pos:
			evs = append(evs, snap.PointerEvent{ID: s.ID, Phase: snap.PointerMove, Position: pos, Time: now})
		}
		pt.last[s.ID] = pos
	}

	for _, s := range in.Released {
		if seen[s.ID] {
			continue
		}
		if _, tracked := pt.last[s.ID]; !tracked {
			continue
		}
		seen[s.ID] = true
		evs = append(evs, snap.PointerEvent{ID: s.ID, Phase: snap.PointerUp, Position: snap.Point{X: s.X, Y: s.Y}, Time: now})
		delete(pt.last, s.ID)
	}

	for id, pos := range pt.last {
		if !seen[id] {
			evs = append(evs, snap.PointerEvent{ID: id, Phase: snap.PointerCancel, Position: pos, Time: now})
			delete(pt.last, id)
		}
	}
	return evs
}

// IsModifierPressed reports whether any modifier key (Alt, Ctrl, Shift, Meta) is held.
func IsModifierPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyAlt) ||
		ebiten.IsKeyPressed(ebiten.KeyControl) ||
		ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyMeta)
}

// NavState returns the arrow key direction pressed or repeating this frame.
func NavState() NavDirection {
	switch {
	case KeyRepeating(ebiten.KeyArrowUp):
		return NavUp
	case KeyRepeating(ebiten.KeyArrowDown):
		return NavDown
	case KeyRepeating(ebiten.KeyArrowLeft):
		return NavLeft
	case KeyRepeating(ebiten.KeyArrowRight):
		return NavRight
	}
	return NavNone
}

var keyHoldFrames = make(map[ebiten.Key]int)

// UpdateInputState must be called at the end of each Update() to track key state.
func UpdateInputState() {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if ebiten.IsKeyPressed(k) {
			keyHoldFrames[k]++
		} else {
			delete(keyHoldFrames, k)
		}
	}
}

// KeyRepeating is true on the frame a key goes down and then at the repeat
// rate while it stays held.
func KeyRepeating(key ebiten.Key) bool {
	if !ebiten.IsKeyPressed(key) {
		return false
	}
	return repeatFires(keyHoldFrames[key])
}

func repeatFires(frames int) bool {
	if frames == 0 {
		return true
	}
	return frames >= KeyRepeatDelay && (frames-KeyRepeatDelay)%KeyRepeatInterval == 0
}

// PointInRect returns true if point (px, py) is inside the rectangle (rx, ry, rw, rh).
func PointInRect(px, py float64, rx, ry, rw, rh float64) bool {
	return px >= rx && px <= rx+rw && py >= ry && py <= ry+rh
}
