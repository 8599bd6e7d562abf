package domain

const unknownDescription = "Unknown"

// RenderFormat selects the output produced for a tree.
type RenderFormat string

// Available render formats.
const (
	// RenderFormatText is an indented plain-text tree.
	RenderFormatText RenderFormat = "text"

	// RenderFormatHTML is a nested <ul>/<li> list.
	RenderFormatHTML RenderFormat = "html"

	// RenderFormatMarkdown is a nested bullet list.
	RenderFormatMarkdown RenderFormat = "markdown"

	// RenderFormatJSON is a nested JSON array.
	RenderFormatJSON RenderFormat = "json"
)

// IsValid returns true if the format is recognised.
func (f RenderFormat) IsValid() bool {
	switch f {
	case RenderFormatText, RenderFormatHTML, RenderFormatMarkdown, RenderFormatJSON:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f RenderFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f RenderFormat) Description() string {
	switch f {
	case RenderFormatText:
		return "Text (indented tree)"
	case RenderFormatHTML:
		return "HTML (nested list)"
	case RenderFormatMarkdown:
		return "Markdown (bullet list)"
	case RenderFormatJSON:
		return "JSON (nested array)"
	default:
		return unknownDescription
	}
}

// AllRenderFormats returns all available render formats.
func AllRenderFormats() []RenderFormat {
	return []RenderFormat{
		RenderFormatText,
		RenderFormatHTML,
		RenderFormatMarkdown,
		RenderFormatJSON,
	}
}

// RenderSettings holds persisted rendering defaults.
type RenderSettings struct {
	// Depth is the default maximum depth (-1 flat, 0 unlimited).
	Depth int

	// Format is the default output format.
	Format RenderFormat

	// IndentSize is the number of spaces per level for text output.
	IndentSize int

	// PerPage is the default page size. 0 disables paging.
	PerPage int
}

// DefaultRenderSettings returns settings with sensible defaults.
func DefaultRenderSettings() RenderSettings {
	return RenderSettings{
		Depth:      0,
		Format:     RenderFormatText,
		IndentSize: 2,
		PerPage:    0,
	}
}

// Options converts the settings into per-call render options.
func (s RenderSettings) Options() RenderOptions {
	return RenderOptions{
		MaxDepth:   s.Depth,
		Format:     s.Format,
		IndentSize: s.IndentSize,
		PerPage:    s.PerPage,
		Page:       1,
	}
}
