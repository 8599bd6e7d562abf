package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var treeFlags renderFlags

var treeCmd = &cobra.Command{
	Use:   "tree <collection>",
	Short: "Render a collection as a tree",
	Long: `Render the nodes of a collection as a nested tree.

Depth -1 lists every node flat, 0 renders every level and appends orphans
(nodes whose parent does not exist), and N stops after N levels.

Examples:
  arbor tree menu
  arbor tree menu --depth 2 --format html
  arbor tree menu --per-page 10 --page 2
  arbor tree menu -f markdown --standalone --title "Site map"`,
	Args: cobra.ExactArgs(1),
	RunE: runTree,
}

func init() {
	treeFlags.register(treeCmd)
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	if treeService == nil {
		return errors.New("tree service not configured")
	}

	opts, err := treeFlags.options(cmd)
	if err != nil {
		return err
	}

	result, err := treeService.Render(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("failed to render tree: %w", err)
	}

	writeResult(cmd, result)
	return nil
}
