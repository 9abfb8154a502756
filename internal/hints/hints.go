// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns a hint for a missing site config file.
func ForConfigNotFound() string {
	return format("pass --config /path/to/notesite.yaml or omit it to use defaults")
}

// ForTemplateNotFound returns a hint for a missing page template.
// dir is the configured template directory, empty for the embedded template.
func ForTemplateNotFound(dir string) string {
	if dir == "" {
		return ""
	}
	return format("create " + strings.TrimRight(dir, "/") + "/base.html or remove templates.dir from the config")
}

// ForContentRoot returns a hint for a missing content directory.
func ForContentRoot() string {
	return format("run from the notes directory or set content.root in the config")
}

// ForNoContent returns a hint when the content root holds no documents.
func ForNoContent(extensions []string) string {
	if len(extensions) == 0 {
		return ""
	}
	return format("looking for " + strings.Join(extensions, ", ") + " files; README.MD is skipped")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForHighlightStyle returns hints for an unknown highlight style.
func ForHighlightStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForEncoding returns a hint for documents that are not UTF-8.
func ForEncoding() string {
	return format("re-save the file as UTF-8")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
