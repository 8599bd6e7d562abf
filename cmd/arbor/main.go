// Command arbor stores parent-linked records and renders them as trees.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/custodia-labs/arbor/internal/adapters/driven/config/file"
	"github.com/custodia-labs/arbor/internal/adapters/driven/loader"
	"github.com/custodia-labs/arbor/internal/adapters/driven/render"
	"github.com/custodia-labs/arbor/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/arbor/internal/adapters/driven/watcher"
	"github.com/custodia-labs/arbor/internal/adapters/driving/cli"
	"github.com/custodia-labs/arbor/internal/core/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetInitializer(initServices)

	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}

// initServices builds the services from the global flags. The returned
// closer releases the database.
func initServices(opts cli.Options) (*cli.Services, io.Closer, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening config: %w", err)
	}

	templatesDir := ""
	if opts.ConfigDir != "" {
		templatesDir = filepath.Join(opts.ConfigDir, "templates")
	}
	templates, err := file.NewTemplateStore(templatesDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening templates: %w", err)
	}

	store, err := sqlite.NewStore(opts.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	records := loader.New()
	nodeStore := store.NodeStore()
	collectionStore := store.CollectionStore()

	tree := services.NewTreeService(nodeStore, render.NewDefaultRegistry())
	tree.SetTemplateStore(templates)

	return &cli.Services{
		Tree:       tree,
		Node:       services.NewNodeService(nodeStore, collectionStore, records),
		Collection: services.NewCollectionService(collectionStore, nodeStore),
		Settings:   services.NewSettingsService(configStore),
		Loader:     records,
		Watcher:    watcher.New(),
	}, store, nil
}
