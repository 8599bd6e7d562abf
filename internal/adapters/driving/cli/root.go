package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/arbor/internal/core/ports/driven"
	"github.com/custodia-labs/arbor/internal/core/ports/driving"
	"github.com/custodia-labs/arbor/internal/logger"
)

var (
	// Global flags
	verbose   bool
	configDir string
	dataDir   string
)

// version is set at build time through SetVersion.
var version = "dev"

// Services wired by SetServices.
var (
	treeService       driving.TreeService
	nodeService       driving.NodeService
	collectionService driving.CollectionService
	settingsService   driving.SettingsService
	recordLoader      driven.RecordLoader
	fileWatcher       driven.FileWatcher
)

// Services holds the ports the commands run against.
type Services struct {
	Tree       driving.TreeService
	Node       driving.NodeService
	Collection driving.CollectionService
	Settings   driving.SettingsService
	Loader     driven.RecordLoader
	Watcher    driven.FileWatcher
}

// Options carries the global flags to the Initializer.
type Options struct {
	ConfigDir string
	DataDir   string
	Verbose   bool
}

// Initializer builds the services once flags are parsed. The returned
// closer releases them after the command finishes.
type Initializer func(opts Options) (*Services, io.Closer, error)

var (
	initializer Initializer
	closer      io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "arbor",
	Short: "Render parent-linked records as trees",
	Long: `arbor stores flat records that point at their parent and renders them
as nested trees: indented text, HTML lists, Markdown bullets or JSON.

Records live in collections. Import them from JSON, YAML or TOML files, or
render a file directly without storing it.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Directory holding config.toml and templates (default ~/.arbor)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding the database (default ~/.arbor/data)")
}

// SetServices wires the ports used by every command.
func SetServices(s *Services) {
	treeService = s.Tree
	nodeService = s.Node
	collectionService = s.Collection
	settingsService = s.Settings
	recordLoader = s.Loader
	fileWatcher = s.Watcher
}

// SetInitializer registers the function that builds services from the
// global flags. Without one, services set through SetServices are used as is.
func SetInitializer(fn Initializer) {
	initializer = fn
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command and releases services afterwards.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	defer func() {
		if closer != nil {
			if err := closer.Close(); err != nil {
				logger.Warn("closing services: %v", err)
			}
		}
		_ = logger.Sync()
	}()
	return rootCmd.ExecuteContext(ctx)
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if initializer == nil {
		return nil
	}

	services, c, err := initializer(Options{
		ConfigDir: configDir,
		DataDir:   dataDir,
		Verbose:   verbose,
	})
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	SetServices(services)
	closer = c
	return nil
}

// isTerminal reports whether w writes to an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
