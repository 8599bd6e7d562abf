package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/arbor/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage render defaults",
	Long: `View and change the defaults used when tree and render are called
without explicit flags.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single render default.

Available keys:
  depth     - -1 flat, 0 unlimited, N levels
  format    - text, html, markdown or json
  indent    - spaces per level for text output (0-16)
  per_page  - top-level nodes per page, 0 disables paging`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Render]")
	cmd.Printf("  Depth:    %s\n", describeDepth(settings.Depth))
	cmd.Printf("  Format:   %s\n", settings.Format.Description())
	cmd.Printf("  Indent:   %d\n", settings.IndentSize)
	cmd.Printf("  Per page: %s\n", describePerPage(settings.PerPage))

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}

	cmd.Printf("Set %s to %s\n", args[0], args[1])
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Reset(); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}

	cmd.Println("Settings restored to defaults")
	return nil
}

func describeDepth(depth int) string {
	switch {
	case depth == domain.DepthFlat:
		return "-1 (flat)"
	case depth == domain.DepthUnlimited:
		return "0 (unlimited)"
	default:
		return fmt.Sprintf("%d levels", depth)
	}
}

func describePerPage(perPage int) string {
	if perPage <= 0 {
		return "0 (no paging)"
	}
	return fmt.Sprintf("%d", perPage)
}
