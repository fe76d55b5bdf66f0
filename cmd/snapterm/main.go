package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/depeter/snapscroll/internal/config"
	"github.com/depeter/snapscroll/internal/tui"
)

// chromeLines is the space the title, label and help take around the columns.
const chromeLines = 8

func main() {
	configPath := flag.String("config", "", "Config file (.toml or .yaml); defaults to the XDG config path")
	hour := flag.Int("hour", -1, "Initial hour (defaults to the configured time picker hour)")
	minute := flag.Int("minute", -1, "Initial minute")
	rows := flag.Int("rows", 0, "Visible rows per column (0 fits the terminal)")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("snapterm needs an interactive terminal")
	}

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	opts := tui.Options{
		Rows:       *rows,
		Hour:       cfg.TimePicker.Hour,
		Minute:     cfg.TimePicker.Minute,
		Transition: time.Duration(cfg.Carousel.TransitionMS) * time.Millisecond,
	}
	if *hour >= 0 {
		opts.Hour = *hour
	}
	if *minute >= 0 {
		opts.Minute = *minute
	}
	if opts.Rows == 0 {
		opts.Rows = fitRows()
	}

	m, err := tui.NewModel(opts)
	if err != nil {
		log.Fatalf("Failed to create picker: %v", err)
	}

	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		log.Fatal(err)
	}
	if fm, ok := final.(tui.Model); ok {
		h, mm := fm.Selected()
		fmt.Printf("%d:%02d\n", h, mm)
	}
}

// fitRows picks the tallest odd column that fits the terminal.
func fitRows() int {
	_, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return tui.DefaultRows
	}
	rows := min(height-chromeLines, 15)
	if rows < 3 {
		return 3
	}
	if rows%2 == 0 {
		rows--
	}
	return rows
}
