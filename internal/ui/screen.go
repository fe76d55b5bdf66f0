package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/snapscroll/internal/snap"
)

// Screen is the interface for the demo screens (Swatches, Time Picker, Gallery).
type Screen interface {
	// Update handles input and logic. Return a non-nil ScreenTransition to change screens.
	Update(in Input) (*ScreenTransition, error)
	Draw(dst *ebiten.Image)
	OnEnter()
	OnExit()
	// Name returns the screen name shown in the tab bar and debug overlay.
	Name() string
}

// CarouselScreen is implemented by screens that can report the carousel
// the user is working with.
type CarouselScreen interface {
	ActiveCarousel() *Carousel
}

type TransitionType int

const (
	TransitionPush TransitionType = iota
	TransitionPop
	TransitionReplace
)

type ScreenTransition struct {
	Type   TransitionType
	Screen Screen // nil for Pop
}

// ScreenManager manages a stack of screens under a shared tab bar.
type ScreenManager struct {
	stack  []Screen
	TabBar *TabBar

	// pointers that went down on the tab bar
	tabPointers map[int]bool
}

func NewScreenManager() *ScreenManager {
	return &ScreenManager{tabPointers: make(map[int]bool)}
}

func (sm *ScreenManager) Push(s Screen) {
	sm.stack = append(sm.stack, s)
	s.OnEnter()
}

func (sm *ScreenManager) Pop() {
	if len(sm.stack) == 0 {
		return
	}
	top := sm.stack[len(sm.stack)-1]
	top.OnExit()
	sm.stack = sm.stack[:len(sm.stack)-1]
	if len(sm.stack) > 0 {
		sm.stack[len(sm.stack)-1].OnEnter()
	}
}

func (sm *ScreenManager) Replace(s Screen) {
	if len(sm.stack) > 0 {
		top := sm.stack[len(sm.stack)-1]
		top.OnExit()
		sm.stack[len(sm.stack)-1] = s
	} else {
		sm.stack = append(sm.stack, s)
	}
	s.OnEnter()
}

func (sm *ScreenManager) Current() Screen {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

func (sm *ScreenManager) StackSize() int {
	return len(sm.stack)
}

func (sm *ScreenManager) Update(in Input) error {
	// Presses on the tab bar never reach the screen.
	if sm.TabBar != nil {
		in.Pointers = sm.filterTabPointers(in.Pointers)
	}

	s := sm.Current()
	if s == nil {
		return nil
	}
	tr, err := s.Update(in)
	if err != nil {
		return err
	}
	if tr != nil {
		switch tr.Type {
		case TransitionPush:
			sm.Push(tr.Screen)
		case TransitionPop:
			sm.Pop()
		case TransitionReplace:
			sm.Replace(tr.Screen)
		}
	}

	sm.updateTabHighlight()
	return nil
}

func (sm *ScreenManager) filterTabPointers(evs []snap.PointerEvent) []snap.PointerEvent {
	out := evs[:0:0]
	for _, ev := range evs {
		switch {
		case ev.Phase == snap.PointerDown && ev.Position.Y < TabBarHeight:
			sm.tabPointers[ev.ID] = true
		case sm.tabPointers[ev.ID]:
			if ev.Phase == snap.PointerUp {
				sm.TabBar.HandleClick(ev.Position.X, ev.Position.Y)
			}
			if ev.Phase == snap.PointerUp || ev.Phase == snap.PointerCancel {
				delete(sm.tabPointers, ev.ID)
			}
		default:
			out = append(out, ev)
		}
	}
	return out
}

func (sm *ScreenManager) updateTabHighlight() {
	if sm.TabBar == nil {
		return
	}
	if cur := sm.Current(); cur != nil {
		sm.TabBar.ActiveScreenName = cur.Name()
	}
}

func (sm *ScreenManager) Draw(dst *ebiten.Image) {
	if s := sm.Current(); s != nil {
		s.Draw(dst)
	}
	if sm.TabBar != nil {
		sm.TabBar.Draw(dst)
	}
}
