package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/depeter/snapscroll/assets/icon"
	"github.com/depeter/snapscroll/internal/app"
	"github.com/depeter/snapscroll/internal/cache"
	"github.com/depeter/snapscroll/internal/config"
	"github.com/depeter/snapscroll/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "Config file (.toml or .yaml); defaults to the XDG config path")
	clearCache := flag.Bool("clear-cache", false, "Delete downloaded gallery images before starting")
	flag.Parse()

	// Load config
	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Init fonts
	if err := ui.InitFonts(goregular.TTF); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}

	// Init image cache
	cacheDir := filepath.Join(os.TempDir(), "snapscroll", "images")
	if configDir, err := config.ConfigDir(); err == nil {
		cacheDir = filepath.Join(configDir, "cache", "images")
	}
	imgCache, err := cache.NewImageCache(cacheDir)
	if err != nil {
		log.Fatalf("Failed to init image cache: %v", err)
	}
	if *clearCache {
		if err := imgCache.ClearDisk(); err != nil {
			log.Fatalf("Failed to clear image cache: %v", err)
		}
		log.Printf("Cleared image cache %s", imgCache.CacheDir())
	}

	game, err := app.NewGame(cfg, imgCache)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	sf := &screenFactory{game: game, cfg: cfg, imgCache: imgCache}
	if err := sf.build(); err != nil {
		log.Fatalf("Failed to build screens: %v", err)
	}

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("SnapScroll")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
