package driven

// TemplateStore loads page templates used to wrap rendered trees into
// standalone documents.
//
// Templates contain two placeholders: {{title}} and {{tree}}.
type TemplateStore interface {
	// Load returns the template with the given name.
	Load(name string) (string, error)

	// Reload clears any cached templates.
	Reload()
}

// Template names.
const (
	// TemplateHTMLPage wraps HTML output in a full document.
	TemplateHTMLPage = "page.html"

	// TemplateMarkdownPage wraps Markdown output under a heading.
	TemplateMarkdownPage = "page.md"
)

// Template placeholders.
const (
	PlaceholderTitle = "{{title}}"
	PlaceholderTree  = "{{tree}}"
)
