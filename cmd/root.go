// Package cmd wires the poemlens commands.
package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"poemlens/internal/config"
	"poemlens/internal/domain"
	"poemlens/internal/gallery"
	"poemlens/internal/logging"
	"poemlens/internal/settings"
	"poemlens/internal/storage"
	"poemlens/internal/tui"
	"poemlens/internal/version"
)

var storeBackendFlag string

// rootCmd represents the base command. Running poemlens without a
// subcommand opens the journal.
var rootCmd = &cobra.Command{
	Use:   "poemlens",
	Short: "A pocket photo/poem journal for your terminal.",
	Long:  `A pocket photo/poem journal for your terminal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = version.String()
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.Flags().StringVar(&storeBackendFlag, "store", "", "shelf store backend (memory|sqlite)")
}

func runTUI() error {
	config.Load()
	if err := logging.InitGlobal(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.ShutdownGlobal()

	backend := storeBackendFlag
	if backend == "" {
		backend = config.Get("store_backend", storage.BackendMemory)
	}
	store := storage.NewForBackend(backend)

	model := tui.NewModel(tui.Options{
		Store:          store,
		Prefs:          settings.Default(),
		UndoWindow:     config.GetInt("undo_window_seconds", gallery.DefaultUndoWindow),
		PressThreshold: time.Duration(config.GetInt("long_press_ms", 3000)) * time.Millisecond,
	})
	model.Seed(domain.SeedEntries())

	logging.Info("starting tui", "backend", backend)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run tui: %w", err)
	}
	return nil
}
