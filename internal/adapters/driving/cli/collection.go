package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var collectionCmd = &cobra.Command{
	Use:     "collection",
	Aliases: []string{"collections"},
	Short:   "Manage collections",
	Long:    `Create, list or remove the collections that group nodes.`,
}

var collectionAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionAdd,
}

var collectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List collections",
	Args:  cobra.NoArgs,
	RunE:  runCollectionList,
}

var collectionRemoveCmd = &cobra.Command{
	Use:   "remove <collection-id>",
	Short: "Remove a collection",
	Long: `Remove a collection. A collection that still holds nodes is only
removed with --force, which deletes its nodes as well.`,
	Args: cobra.ExactArgs(1),
	RunE: runCollectionRemove,
}

var (
	collectionDescription string
	collectionForce       bool
)

func init() {
	collectionAddCmd.Flags().StringVarP(&collectionDescription, "description", "D", "", "Collection description")
	collectionRemoveCmd.Flags().BoolVar(&collectionForce, "force", false, "Remove the collection's nodes too")

	collectionCmd.AddCommand(collectionAddCmd)
	collectionCmd.AddCommand(collectionListCmd)
	collectionCmd.AddCommand(collectionRemoveCmd)
	rootCmd.AddCommand(collectionCmd)
}

func runCollectionAdd(cmd *cobra.Command, args []string) error {
	if collectionService == nil {
		return errors.New("collection service not configured")
	}

	collection, err := collectionService.Create(cmd.Context(), args[0], collectionDescription)
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	cmd.Printf("Created collection %s (%s)\n", collection.Name, collection.ID)
	return nil
}

func runCollectionList(cmd *cobra.Command, _ []string) error {
	if collectionService == nil {
		return errors.New("collection service not configured")
	}

	collections, err := collectionService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	if len(collections) == 0 {
		cmd.Println("No collections found. Create one with: arbor collection add <name>")
		return nil
	}

	cmd.Println("Collections:")
	cmd.Println()
	for i := range collections {
		cmd.Printf("  %s\n", collections[i].ID)
		cmd.Printf("    Name: %s\n", collections[i].Name)
		if collections[i].Description != "" {
			cmd.Printf("    Description: %s\n", collections[i].Description)
		}
	}

	cmd.Printf("\nTotal: %d collections\n", len(collections))
	return nil
}

func runCollectionRemove(cmd *cobra.Command, args []string) error {
	if collectionService == nil {
		return errors.New("collection service not configured")
	}

	if err := collectionService.Remove(cmd.Context(), args[0], collectionForce); err != nil {
		return fmt.Errorf("failed to remove collection: %w", err)
	}

	cmd.Printf("Removed collection %s\n", args[0])
	return nil
}
