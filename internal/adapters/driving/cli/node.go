package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/arbor/internal/core/domain"
)

var nodeCmd = &cobra.Command{
	Use:   "node",
	Short: "Manage nodes",
	Long:  `Add, list, inspect, remove or import the nodes of a collection.`,
}

var nodeAddCmd = &cobra.Command{
	Use:   "add <collection>",
	Short: "Add a node to a collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runNodeAdd,
}

var nodeListCmd = &cobra.Command{
	Use:   "list <collection>",
	Short: "List the nodes of a collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runNodeList,
}

var nodeGetCmd = &cobra.Command{
	Use:   "get <collection> <node-id>",
	Short: "Show node info",
	Args:  cobra.ExactArgs(2),
	RunE:  runNodeGet,
}

var nodeRemoveCmd = &cobra.Command{
	Use:   "remove <collection> <node-id>",
	Short: "Remove a node",
	Long: `Remove a node. Its children stay behind as orphans unless --recursive
is given, in which case every descendant is removed too.`,
	Args: cobra.ExactArgs(2),
	RunE: runNodeRemove,
}

var nodeImportCmd = &cobra.Command{
	Use:   "import <collection> <file>",
	Short: "Import nodes from a JSON, YAML or TOML file",
	Args:  cobra.ExactArgs(2),
	RunE:  runNodeImport,
}

var (
	nodeID        string
	nodeParent    string
	nodeTitle     string
	nodeURI       string
	nodePosition  int
	nodeListJSON  bool
	nodeRecursive bool
)

func init() {
	nodeAddCmd.Flags().StringVar(&nodeID, "id", "", "Node ID (generated when empty)")
	nodeAddCmd.Flags().StringVarP(&nodeParent, "parent", "p", "", "Parent node ID (empty for top level)")
	nodeAddCmd.Flags().StringVarP(&nodeTitle, "title", "t", "", "Node title")
	nodeAddCmd.Flags().StringVar(&nodeURI, "uri", "", "Link rendered with the title")
	nodeAddCmd.Flags().IntVar(&nodePosition, "position", 0, "Sort position among siblings")
	nodeListCmd.Flags().BoolVar(&nodeListJSON, "json", false, "Output nodes as JSON")
	nodeRemoveCmd.Flags().BoolVarP(&nodeRecursive, "recursive", "r", false, "Remove descendants too")

	nodeCmd.AddCommand(nodeAddCmd)
	nodeCmd.AddCommand(nodeListCmd)
	nodeCmd.AddCommand(nodeGetCmd)
	nodeCmd.AddCommand(nodeRemoveCmd)
	nodeCmd.AddCommand(nodeImportCmd)
	rootCmd.AddCommand(nodeCmd)
}

func runNodeAdd(cmd *cobra.Command, args []string) error {
	if nodeService == nil {
		return errors.New("node service not configured")
	}

	node, err := nodeService.Add(cmd.Context(), domain.Node{
		ID:           nodeID,
		CollectionID: args[0],
		ParentID:     nodeParent,
		Title:        nodeTitle,
		URI:          nodeURI,
		Position:     nodePosition,
	})
	if err != nil {
		return fmt.Errorf("failed to add node: %w", err)
	}

	cmd.Printf("Added node %s\n", node.ID)
	return nil
}

func runNodeList(cmd *cobra.Command, args []string) error {
	if nodeService == nil {
		return errors.New("node service not configured")
	}

	collectionID := args[0]
	nodes, err := nodeService.List(cmd.Context(), collectionID)
	if err != nil {
		return fmt.Errorf("failed to list nodes: %w", err)
	}

	if nodeListJSON {
		return outputNodesJSON(cmd, nodes)
	}

	if len(nodes) == 0 {
		cmd.Printf("No nodes found in collection: %s\n", collectionID)
		return nil
	}

	cmd.Printf("Nodes in collection %s:\n\n", collectionID)
	for i := range nodes {
		cmd.Printf("  %s\n", nodes[i].ID)
		cmd.Printf("    Title: %s\n", nodes[i].Label())
		if nodes[i].ParentID != "" {
			cmd.Printf("    Parent: %s\n", nodes[i].ParentID)
		}
		if nodes[i].URI != "" {
			cmd.Printf("    URI: %s\n", nodes[i].URI)
		}
	}

	cmd.Printf("\nTotal: %d nodes\n", len(nodes))
	return nil
}

type nodeJSON struct {
	ID       string         `json:"id"`
	ParentID string         `json:"parent,omitempty"`
	Title    string         `json:"title,omitempty"`
	URI      string         `json:"uri,omitempty"`
	Position int            `json:"position,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// outputNodesJSON writes nodes in the record file layout, so the output can
// be imported again.
func outputNodesJSON(cmd *cobra.Command, nodes []domain.Node) error {
	out := make([]nodeJSON, len(nodes))
	for i := range nodes {
		out[i] = nodeJSON{
			ID:       nodes[i].ID,
			ParentID: nodes[i].ParentID,
			Title:    nodes[i].Title,
			URI:      nodes[i].URI,
			Position: nodes[i].Position,
			Metadata: nodes[i].Metadata,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal nodes: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runNodeGet(cmd *cobra.Command, args []string) error {
	if nodeService == nil {
		return errors.New("node service not configured")
	}

	node, err := nodeService.Get(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("failed to get node: %w", err)
	}

	parent := node.ParentID
	if parent == "" {
		parent = "(top level)"
	}

	cmd.Printf("Node: %s\n\n", node.ID)
	cmd.Printf("  Title:      %s\n", node.Title)
	cmd.Printf("  Collection: %s\n", node.CollectionID)
	cmd.Printf("  Parent:     %s\n", parent)
	if node.URI != "" {
		cmd.Printf("  URI:        %s\n", node.URI)
	}
	cmd.Printf("  Position:   %d\n", node.Position)
	cmd.Printf("  Created:    %s\n", node.CreatedAt.Format("2006-01-02 15:04:05"))
	cmd.Printf("  Updated:    %s\n", node.UpdatedAt.Format("2006-01-02 15:04:05"))

	if len(node.Metadata) > 0 {
		keys := make([]string, 0, len(node.Metadata))
		for k := range node.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		cmd.Println("\n  Metadata:")
		for _, k := range keys {
			cmd.Printf("    %s: %v\n", k, node.Metadata[k])
		}
	}

	return nil
}

func runNodeRemove(cmd *cobra.Command, args []string) error {
	if nodeService == nil {
		return errors.New("node service not configured")
	}

	n, err := nodeService.Remove(cmd.Context(), args[0], args[1], nodeRecursive)
	if err != nil {
		return fmt.Errorf("failed to remove node: %w", err)
	}

	cmd.Printf("Removed %d node(s)\n", n)
	return nil
}

func runNodeImport(cmd *cobra.Command, args []string) error {
	if nodeService == nil {
		return errors.New("node service not configured")
	}

	n, err := nodeService.Import(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("failed to import nodes: %w", err)
	}

	cmd.Printf("Imported %d node(s) into %s\n", n, args[0])
	return nil
}
