package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/arbor/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui [collection]",
	Short: "Browse collections in an interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

Without an argument the TUI opens on the collection list. With a collection
id it renders that collection straight away.

Controls:
  ↑/k, ↓/j - Move selection or scroll
  Enter    - Render collection
  +/-      - More or fewer levels
  f        - Next format
  n/p      - Next or previous page
  r/R      - Reverse top-level or child order
  Esc      - Back
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := tui.NewPorts(treeService, collectionService, settingsService)
	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())
	if len(args) == 1 {
		app.WithCollection(args[0])
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
