package app

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/snapscroll/internal/config"
	"github.com/depeter/snapscroll/internal/ui"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want ebiten.Key
		ok   bool
	}{
		{"Left", ebiten.KeyArrowLeft, true},
		{" pageup ", ebiten.KeyPageUp, true},
		{"F", ebiten.KeyF, true},
		{"z", ebiten.KeyZ, true},
		{"7", ebiten.KeyDigit7, true},
		{"Hyper", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseKey(tt.name)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("parseKey(%q) = (%v, %v), want (%v, %v)", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCompileKeybinds(t *testing.T) {
	kb, err := CompileKeybinds(config.DefaultConfig().Keybinds)
	if err != nil {
		t.Fatalf("defaults: %v", err)
	}
	if kb.Prev != ebiten.KeyPageUp || kb.Next != ebiten.KeyPageDown || kb.SwitchScreen != ebiten.KeyTab || kb.Fullscreen != ebiten.KeyF {
		t.Errorf("compiled = %+v", kb)
	}

	bad := config.DefaultConfig().Keybinds
	bad.SwitchScreen = "Hyper"
	if _, err := CompileKeybinds(bad); err == nil {
		t.Error("unknown key accepted")
	}
}

func TestNewGame_RejectsBadKeybinds(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Keybinds.Next = "nope"
	if _, err := NewGame(cfg, nil); err == nil {
		t.Error("NewGame accepted an unknown key")
	}
}

func TestBoundToStep(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Keybinds.Prev = "Left"
	cfg.Keybinds.Next = "Right"
	g, err := NewGame(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !g.boundToStep(ui.NavLeft) || !g.boundToStep(ui.NavRight) {
		t.Error("left/right should be bound to stepping")
	}
	if g.boundToStep(ui.NavUp) || g.boundToStep(ui.NavNone) {
		t.Error("up/none should not be bound to stepping")
	}
	if w, h := g.Layout(100, 100); w != ui.ScreenWidth || h != ui.ScreenHeight {
		t.Errorf("Layout = %dx%d", w, h)
	}
}
