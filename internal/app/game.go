package app

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/snapscroll/internal/cache"
	"github.com/depeter/snapscroll/internal/config"
	"github.com/depeter/snapscroll/internal/ui"
)

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config  *config.Config
	Cache   *cache.ImageCache
	Screens *ui.ScreenManager
	Keys    Keybinds

	Width, Height int

	pointers *ui.PointerTracker
}

// NewGame creates the Game with all dependencies.
func NewGame(cfg *config.Config, imgCache *cache.ImageCache) (*Game, error) {
	keys, err := CompileKeybinds(cfg.Keybinds)
	if err != nil {
		return nil, err
	}
	return &Game{
		Config:   cfg,
		Cache:    imgCache,
		Screens:  ui.NewScreenManager(),
		Keys:     keys,
		Width:    ui.ScreenWidth,
		Height:   ui.ScreenHeight,
		pointers: ui.NewPointerTracker(),
	}, nil
}

func (g *Game) Update() error {
	// Alt+Enter or the fullscreen binding toggles fullscreen
	if (inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt)) ||
		keyJustPressed(g.Keys.Fullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles debug overlay
	ui.ToggleDebugOverlay()

	if keyJustPressed(g.Keys.SwitchScreen) && g.Screens.TabBar != nil {
		g.Screens.TabBar.Next()
	}

	now := time.Now()
	in := ui.Input{
		Now:      now,
		Pointers: g.pointers.Events(ui.ReadFrameInput(), now),
		Step:     g.Keys.step(),
	}
	// Arrow keys already bound to prev/next would step twice.
	if nav := ui.NavState(); !g.boundToStep(nav) {
		in.Nav = nav
	}
	if g.Config.UI.Debug {
		for _, ev := range in.Pointers {
			log.Printf("pointer %d %s at (%.0f, %.0f)", ev.ID, ev.Phase, ev.Position.X, ev.Position.Y)
		}
	}
	ui.RecordPointerEvents(in.Pointers)

	if err := g.Screens.Update(in); err != nil {
		return err
	}

	ui.UpdateInputState()
	return nil
}

func (g *Game) boundToStep(nav ui.NavDirection) bool {
	key, ok := map[ui.NavDirection]ebiten.Key{
		ui.NavUp:    ebiten.KeyArrowUp,
		ui.NavDown:  ebiten.KeyArrowDown,
		ui.NavLeft:  ebiten.KeyArrowLeft,
		ui.NavRight: ebiten.KeyArrowRight,
	}[nav]
	return ok && (key == g.Keys.Prev || key == g.Keys.Next)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)
	ui.DrawDebugOverlay(screen, g.Screens.Current())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Width, g.Height
}
