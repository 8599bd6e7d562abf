package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/arbor/internal/core/domain"
	"github.com/custodia-labs/arbor/internal/logger"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\033[H\033[2J"

var (
	renderFileFlags renderFlags
	renderWatch     bool
)

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Render a record file without storing it",
	Long: `Render a JSON, YAML or TOML record file directly.

Every record needs an id; parent may be empty, 0 or missing for top-level
records. With --watch the tree is rendered again each time the file changes.

Examples:
  arbor render pages.yaml
  arbor render menu.json --format html --depth 2
  arbor render menu.toml --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderFileFlags.register(renderCmd)
	renderCmd.Flags().BoolVarP(&renderWatch, "watch", "w", false, "Re-render when the file changes")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if treeService == nil || recordLoader == nil {
		return errors.New("render services not configured")
	}

	path := args[0]
	if !recordLoader.Supports(path) {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, path)
	}

	opts, err := renderFileFlags.options(cmd)
	if err != nil {
		return err
	}

	if err := renderFile(cmd, path, opts); err != nil {
		if !renderWatch {
			return err
		}
		cmd.PrintErrf("Error: %v\n", err)
	}
	if !renderWatch {
		return nil
	}

	if fileWatcher == nil {
		return errors.New("file watcher not configured")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	changes, err := fileWatcher.Watch(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	interactive := isTerminal(cmd.OutOrStdout())
	cmd.PrintErrf("Watching %s, press Ctrl+C to stop\n", path)
	for range changes {
		logger.Debug("Change detected: %s", path)
		if interactive {
			fmt.Fprint(cmd.OutOrStdout(), clearScreen)
		}
		if err := renderFile(cmd, path, opts); err != nil {
			cmd.PrintErrf("Error: %v\n", err)
		}
	}
	return nil
}

func renderFile(cmd *cobra.Command, path string, opts domain.RenderOptions) error {
	nodes, err := recordLoader.Load(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	result, err := treeService.RenderNodes(nodes, opts)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}

	writeResult(cmd, result)
	return nil
}
