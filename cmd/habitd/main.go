package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/habitd/internal/state"
	"github.com/sandeepkv93/habitd/internal/storage"
	"github.com/sandeepkv93/habitd/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "habitd failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	snapshots, err := openSnapshots(cfg)
	if err != nil {
		return err
	}
	defer snapshots.Close()

	store, err := state.NewStore(context.Background(), snapshots, time.Now)
	if err != nil {
		return err
	}

	program := tea.NewProgram(update.NewModel(store, cfg.WeekStartsOn, time.Now))
	_, err = program.Run()
	return err
}

func openSnapshots(cfg update.RuntimeConfig) (storage.SnapshotStore, error) {
	if cfg.StateFile != "" {
		return storage.NewFileStore(cfg.StateFile)
	}
	if dir := filepath.Dir(cfg.DBPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return storage.OpenSQLite(cfg.DBPath)
}
