package main

import (
	"errors"
	"os"

	notesite "github.com/alnah/go-notesite"
	"github.com/alnah/go-notesite/internal/catalog"
	"github.com/alnah/go-notesite/internal/config"
)

// Exit codes for the notesite CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Site built, or nothing to build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, catalog, or template
	ExitIO      = 3 // Unreadable source, bad encoding, unwritable output
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil || errors.Is(err, notesite.ErrNoContentFound) {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, notesite.ErrReadDocument) ||
		errors.Is(err, notesite.ErrInvalidEncoding) ||
		errors.Is(err, notesite.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigPath) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, notesite.ErrInvalidConfig) ||
		errors.Is(err, notesite.ErrCatalogNotFound) ||
		errors.Is(err, notesite.ErrCatalogParse) ||
		errors.Is(err, catalog.ErrEmptyTitle) ||
		errors.Is(err, notesite.ErrContentRootNotFound) ||
		errors.Is(err, notesite.ErrTemplateNotFound) ||
		errors.Is(err, notesite.ErrInvalidTemplateDir) ||
		errors.Is(err, notesite.ErrMissingPlaceholder) ||
		errors.Is(err, notesite.ErrUnknownHighlightStyle) ||
		errors.Is(err, notesite.ErrUnsafeOutputDir) {
		return ExitUsage
	}

	return ExitGeneral
}
