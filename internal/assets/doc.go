// Package assets provides the HTML page template and generated stylesheets
// for the site.
//
// # Loader Architecture
//
//	TemplateLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (default template)
//	    └── FilesystemLoader  - loads from a templates directory on disk
//
// The builder picks exactly one loader: the filesystem loader when the site
// configures a templates directory, the embedded loader otherwise. There is
// no fallback between them, so a configured but missing template fails the
// build instead of silently rendering with the default.
//
// # Templates
//
// A template is plain HTML with two placeholder tokens, {title} and
// {content}. It is not a templating language.
//
//	{basePath}/
//	└── {name}.html          # e.g. base.html
//
// # Security
//
// Template names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
