package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/arbor/internal/core/domain"
)

// renderFlags are the render options shared by tree and render.
// Flags left unset fall back to the stored settings.
type renderFlags struct {
	depth           int
	format          string
	indent          int
	page            int
	perPage         int
	reverse         bool
	reverseChildren bool
	standalone      bool
	title           string
}

func (f *renderFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVarP(&f.depth, "depth", "d", 0, "Maximum depth: -1 flat, 0 unlimited, N levels")
	flags.StringVarP(&f.format, "format", "f", "", "Output format: text, html, markdown or json")
	flags.IntVar(&f.indent, "indent", 2, "Spaces per level for text output")
	flags.IntVar(&f.page, "page", 1, "Page of top-level nodes to render")
	flags.IntVar(&f.perPage, "per-page", 0, "Top-level nodes per page (0 disables paging)")
	flags.BoolVar(&f.reverse, "reverse", false, "Reverse top-level nodes within the page")
	flags.BoolVar(&f.reverseChildren, "reverse-children", false, "Reverse siblings below every parent")
	flags.BoolVar(&f.standalone, "standalone", false, "Wrap HTML and Markdown output in a full page")
	flags.StringVar(&f.title, "title", "", "Page title for --standalone output")
}

// options merges the flags the user set over the stored settings.
func (f *renderFlags) options(cmd *cobra.Command) (domain.RenderOptions, error) {
	settings := domain.DefaultRenderSettings()
	if settingsService != nil {
		stored, err := settingsService.Get()
		if err != nil {
			return domain.RenderOptions{}, fmt.Errorf("failed to get settings: %w", err)
		}
		settings = *stored
	}
	opts := settings.Options()

	changed := cmd.Flags().Changed
	if changed("depth") {
		opts.MaxDepth = f.depth
	}
	if changed("format") {
		opts.Format = domain.RenderFormat(strings.ToLower(f.format))
		if !opts.Format.IsValid() {
			return domain.RenderOptions{}, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, f.format)
		}
	}
	if changed("indent") {
		opts.IndentSize = f.indent
	}
	if changed("per-page") {
		opts.PerPage = f.perPage
	}
	opts.Page = f.page
	opts.ReverseTopLevel = f.reverse
	opts.ReverseChildren = f.reverseChildren
	opts.Standalone = f.standalone
	opts.Title = f.title
	return opts, nil
}

// writeResult prints the rendered tree on stdout and the page footer on stderr.
func writeResult(cmd *cobra.Command, result *domain.RenderResult) {
	fmt.Fprint(cmd.OutOrStdout(), result.Output)
	if result.Page > 0 && result.MaxPages > 1 {
		fmt.Fprintf(cmd.ErrOrStderr(), "Page %d of %d (%d top-level nodes)\n",
			result.Page, result.MaxPages, result.TotalTop)
	}
}
