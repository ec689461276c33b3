// cmd/restaurateur/main.go
//
// This is the entry point for the restaurateur CLI.
//
// Flow:
// 1. Prepare .restaurateur/ in the current directory and load its config
// 2. Open the journal
// 3. Create the in-memory store and hand it to the TUI
//
// Businesses, menus and orders live only as long as the process.

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/restaurateur/internal/config"
	"github.com/kingrea/restaurateur/internal/logbook"
	"github.com/kingrea/restaurateur/internal/restaurant"
	"github.com/kingrea/restaurateur/internal/tui"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}

	if err := config.InitDir(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing %s directory: %v\n", config.Dir, err)
		os.Exit(1)
	}
	cfg, err := config.NewConfig(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// The journal is optional: without it the TUI simply hides the log panel.
	lb, err := logbook.New(cfg.JournalPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: journal disabled: %v\n", err)
		lb = nil
	}

	store := restaurant.NewStore()

	p := tea.NewProgram(
		tui.NewApp(cfg, store, tui.WithLogbook(lb)),
		tea.WithAltScreen(), // Use alternate screen buffer (like vim does)
	)

	// Run blocks until the user quits
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
