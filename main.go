package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/saltlab/internal/analyze"
	"github.com/sadopc/saltlab/internal/config"
	"github.com/sadopc/saltlab/internal/engine"
	"github.com/sadopc/saltlab/internal/store"
	"github.com/sadopc/saltlab/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	dbPath := cfg.Database.Path
	if dbPath == "" {
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	s, err := store.New(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	recorder := tui.NewAlertRecorder()
	eng := engine.New(s, engine.SystemClock(), recorder)
	analyzer := analyze.NewClient(cfg.Analyzer.URL, cfg.Analyzer.APIKey,
		time.Duration(cfg.Analyzer.TimeoutSeconds)*time.Second)

	app := tui.NewApp(eng, s, recorder, analyzer)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
