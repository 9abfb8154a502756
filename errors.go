package notesite

import (
	"errors"

	"github.com/alnah/go-notesite/internal/assets"
	"github.com/alnah/go-notesite/internal/catalog"
	"github.com/alnah/go-notesite/internal/config"
	"github.com/alnah/go-notesite/internal/fileutil"
	"github.com/alnah/go-notesite/internal/loader"
	"github.com/alnah/go-notesite/internal/pipeline"
)

// Sentinel errors for build operations.
var (
	// Content errors.
	ErrNoContentFound      = loader.ErrNoContentFound
	ErrContentRootNotFound = loader.ErrContentRootNotFound
	ErrReadDocument        = loader.ErrReadDocument
	ErrInvalidEncoding     = loader.ErrInvalidEncoding

	// Rendering errors.
	ErrHTMLConversion     = pipeline.ErrHTMLConversion
	ErrMissingPlaceholder = pipeline.ErrMissingPlaceholder

	// Configuration errors.
	ErrInvalidConfig   = config.ErrInvalidConfig
	ErrCatalogNotFound = catalog.ErrCatalogNotFound
	ErrCatalogParse    = catalog.ErrCatalogParse

	// Asset errors.
	ErrTemplateNotFound      = assets.ErrTemplateNotFound
	ErrInvalidTemplateDir    = assets.ErrInvalidBasePath
	ErrUnknownHighlightStyle = assets.ErrUnknownHighlightStyle

	// Output errors.
	ErrUnsafeOutputDir = fileutil.ErrUnsafeDir
	ErrWriteOutput     = errors.New("failed to write output")
)
