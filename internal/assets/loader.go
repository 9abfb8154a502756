package assets

// BaseTemplateName is the page template every generated page is wrapped in.
const BaseTemplateName = "base"

// Placeholder tokens substituted into a template.
const (
	TitlePlaceholder   = "{title}"
	ContentPlaceholder = "{content}"
)

// TemplateLoader defines the contract for loading HTML page templates.
type TemplateLoader interface {
	// LoadTemplate loads a template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}
