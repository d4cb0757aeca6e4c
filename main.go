package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"haloboard.dev/internal/config"
	"haloboard.dev/internal/shell"
)

var (
	flagDataDir string
	flagDev     bool
	flagPoll    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "haloboard",
		Short: "Haloboard - full-screen terminal kiosk smart display",
		Long: `Haloboard turns a terminal into a kiosk smart display: a large clock,
a countdown timer, night-shift tinting during configured hours, and idle
dimming after a period without input.

Settings live in <data-dir>/config/settings.json and every change made in
the on-screen settings overlay is persisted immediately. Script files
dropped into <data-dir>/flash/ are announced on screen by name; their
contents are never executed.`,
		RunE: run,
	}

	rootCmd.Flags().StringVar(&flagDataDir, "data-dir", "", "Data directory (default: ~/.haloboard)")
	rootCmd.Flags().BoolVar(&flagDev, "dev", false, "Development mode: console logging and diagnostics overlay")
	rootCmd.Flags().BoolVar(&flagPoll, "poll", false, "Poll the flash directory instead of watching filesystem events")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	dataDir := flagDataDir
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".haloboard")
	}

	log, closeLog, err := newLogger(dataDir)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := config.Open(dataDir, log)
	if err != nil {
		return err
	}

	model := shell.New(store, log, flagDev)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithFPS(config.TargetFPS),
	)

	// Start the flash update source with a reference to the tea program
	if err := model.StartSources(p, flagPoll); err != nil {
		log.WithError(err).Warn("flash updates unavailable")
	}

	_, err = p.Run()
	return err
}

// newLogger logs to a file under the data dir; dev mode also mirrors to
// stderr. The terminal itself belongs to the display, never the logger.
func newLogger(dataDir string) (*logrus.Logger, func(), error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dataDir, config.LogFile),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)
	if flagDev {
		log.SetLevel(logrus.DebugLevel)
		log.SetOutput(io.MultiWriter(f, os.Stderr))
	} else {
		log.SetOutput(f)
	}

	return log, func() { _ = f.Close() }, nil
}
