package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/platform/tui"
	"github.com/vovakirdan/tui-pipes/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a pipe style interactively, then run",
	Long: `Start an interactive picker for the pipe kind, color mode and palette.
The other settings come from the config file and flags.

Controls:
  Up/Down/j/k     - Choose option
  Left/Right/h/l  - Change value
  Enter           - Start the screensaver
  Q/Esc           - Quit

Examples:
  pipes menu
  pipes menu -p 3 --rainbow 1`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagBackend, "backend", "ansi", "Terminal backend: ansi, tcell")
}

func runMenu(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if !registry.Exists(flagBackend) {
		return fmt.Errorf("%w %q", registry.ErrUnknownBackend, flagBackend)
	}

	result, err := tui.RunPicker(settings)
	if err != nil {
		return err
	}
	if result.Quit {
		return nil
	}

	settings, err = result.Selection.Apply(settings)
	if err != nil {
		return err
	}
	return runScreensaver(cmd, settings, flagBackend, 0)
}
