package app

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/snapscroll/internal/config"
	"github.com/depeter/snapscroll/internal/ui"
)

// keyMap maps config key names to ebiten keys.
var keyMap = map[string]ebiten.Key{
	"space":    ebiten.KeySpace,
	"enter":    ebiten.KeyEnter,
	"return":   ebiten.KeyEnter,
	"tab":      ebiten.KeyTab,
	"left":     ebiten.KeyArrowLeft,
	"right":    ebiten.KeyArrowRight,
	"up":       ebiten.KeyArrowUp,
	"down":     ebiten.KeyArrowDown,
	"pageup":   ebiten.KeyPageUp,
	"pagedown": ebiten.KeyPageDown,
	"comma":    ebiten.KeyComma,
	"period":   ebiten.KeyPeriod,
	"f11":      ebiten.KeyF11,
}

func init() {
	for c := 'a'; c <= 'z'; c++ {
		keyMap[string(c)] = ebiten.KeyA + ebiten.Key(c-'a')
	}
	for c := '0'; c <= '9'; c++ {
		keyMap[string(c)] = ebiten.KeyDigit0 + ebiten.Key(c-'0')
	}
}

// parseKey converts a config key name to an ebiten.Key.
func parseKey(name string) (ebiten.Key, bool) {
	k, ok := keyMap[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// Keybinds holds the resolved keys from the [keybinds] config section.
type Keybinds struct {
	Prev         ebiten.Key
	Next         ebiten.Key
	SwitchScreen ebiten.Key
	Fullscreen   ebiten.Key
}

// CompileKeybinds resolves every binding, failing on the first unknown name.
func CompileKeybinds(kb config.KeybindConfig) (Keybinds, error) {
	var out Keybinds
	for _, b := range []struct {
		field string
		name  string
		dst   *ebiten.Key
	}{
		{"prev", kb.Prev, &out.Prev},
		{"next", kb.Next, &out.Next},
		{"switch_screen", kb.SwitchScreen, &out.SwitchScreen},
		{"fullscreen", kb.Fullscreen, &out.Fullscreen},
	} {
		k, ok := parseKey(b.name)
		if !ok {
			return Keybinds{}, fmt.Errorf("keybinds.%s: unknown key %q", b.field, b.name)
		}
		*b.dst = k
	}
	return out, nil
}

// step reports -1 or +1 while the prev or next key is pressed or repeating.
func (kb Keybinds) step() int {
	switch {
	case ui.KeyRepeating(kb.Prev):
		return -1
	case ui.KeyRepeating(kb.Next):
		return 1
	}
	return 0
}

// keyJustPressed checks if k went down this frame without a modifier held.
func keyJustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k) && !ui.IsModifierPressed()
}
