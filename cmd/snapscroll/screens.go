package main

import (
	"log"

	"github.com/depeter/snapscroll/internal/app"
	"github.com/depeter/snapscroll/internal/cache"
	"github.com/depeter/snapscroll/internal/config"
	"github.com/depeter/snapscroll/internal/ui"
)

// screenFactory captures the shared dependencies for creating and wiring screens.
type screenFactory struct {
	game     *app.Game
	cfg      *config.Config
	imgCache *cache.ImageCache

	screens []ui.Screen
}

// build creates one screen per demo, wires the tab bar to switch between
// them and shows the first.
func (sf *screenFactory) build() error {
	opts, err := sf.cfg.CarouselOptions()
	if err != nil {
		return err
	}
	debug := sf.cfg.UI.Debug

	swatches := make([]ui.Swatch, len(sf.cfg.Swatches))
	for i, s := range sf.cfg.Swatches {
		col, err := s.SwatchColor()
		if err != nil {
			return err
		}
		swatches[i] = ui.Swatch{Name: col.Hex(), Color: col, Width: s.Width}
	}
	swatchOpts := opts
	swatchOpts.OnSnap = func(i int) {
		if debug {
			log.Printf("Swatch snapped to %d (%s)", i, swatches[i].Name)
		}
	}
	swatchScreen, err := ui.NewSwatchScreen(swatchOpts, swatches)
	if err != nil {
		return err
	}

	tp := sf.cfg.TimePicker
	pickerScreen, err := ui.NewTimePickerScreen(opts, tp.Margin, tp.RowHeight, tp.Hour, tp.Minute)
	if err != nil {
		return err
	}

	galleryOpts := opts
	galleryOpts.InitialIndex = 0
	galleryScreen, err := ui.NewGalleryScreen(galleryOpts, sf.cfg.Gallery.Sources, sf.cfg.Gallery.ItemSize, sf.imgCache)
	if err != nil {
		return err
	}

	sf.screens = []ui.Screen{swatchScreen, pickerScreen, galleryScreen}

	names := make([]string, len(sf.screens))
	for i, s := range sf.screens {
		names[i] = s.Name()
	}
	tabs := ui.NewTabBar(names...)
	tabs.OnSelect = sf.show
	sf.game.Screens.TabBar = tabs

	sf.show(0)
	return nil
}

func (sf *screenFactory) show(i int) {
	if i < 0 || i >= len(sf.screens) {
		return
	}
	if cur := sf.game.Screens.Current(); cur == sf.screens[i] {
		return
	}
	if sf.cfg.UI.Debug {
		log.Printf("Switching to %s", sf.screens[i].Name())
	}
	sf.game.Screens.Replace(sf.screens[i])
}
