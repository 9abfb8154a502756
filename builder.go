package notesite

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alnah/go-notesite/internal/assets"
	"github.com/alnah/go-notesite/internal/catalog"
	"github.com/alnah/go-notesite/internal/config"
	"github.com/alnah/go-notesite/internal/fileutil"
	"github.com/alnah/go-notesite/internal/listing"
	"github.com/alnah/go-notesite/internal/loader"
	"github.com/alnah/go-notesite/internal/pipeline"
)

// Page is one rendered document and the metadata it was rendered with.
type Page = pipeline.Page

// staticDirName is where the static tree lands inside the output directory.
const staticDirName = "static"

// Result describes a finished build.
type Result struct {
	OutputDir string
	Pages     []Page   // In document order
	Listings  []string // Landing page first, then subject listings
}

// Builder runs a full site build.
type Builder struct {
	cfg       *config.Config
	stdout    io.Writer
	logger    *slog.Logger
	catalog   *catalog.Catalog
	templates assets.TemplateLoader
	converter pipeline.HTMLConverter
	highlight string // Stylesheet for highlighted code, empty when disabled
}

// Option configures a Builder.
type Option func(*Builder)

// WithStdout sets where progress lines go. Defaults to os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(b *Builder) {
		b.stdout = w
	}
}

// WithLogger sets the diagnostics logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

// WithCatalog replaces the catalog named by the configuration.
func WithCatalog(c *catalog.Catalog) Option {
	return func(b *Builder) {
		b.catalog = c
	}
}

// WithTemplateLoader replaces the template source named by the configuration.
func WithTemplateLoader(l assets.TemplateLoader) Option {
	return func(b *Builder) {
		b.templates = l
	}
}

// WithConverter replaces the Markdown converter.
func WithConverter(c pipeline.HTMLConverter) Option {
	return func(b *Builder) {
		b.converter = c
	}
}

// NewBuilder creates a Builder for cfg. A nil cfg uses config.DefaultConfig.
// The catalog file and template directory are resolved here, so their absence
// is reported before anything is written.
func NewBuilder(cfg *config.Config, opts ...Option) (*Builder, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &Builder{
		cfg:    cfg,
		stdout: os.Stdout,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.catalog == nil {
		c, err := loadCatalog(cfg.Catalog.Path)
		if err != nil {
			return nil, err
		}
		b.catalog = c
	}

	if b.templates == nil {
		tl, err := assets.NewTemplateLoader(cfg.Templates.Dir)
		if err != nil {
			return nil, fmt.Errorf("template directory: %w", err)
		}
		b.templates = tl
	}

	if b.converter == nil {
		b.converter = pipeline.NewGoldmarkConverter()
	}

	if style := cfg.Highlight.Style; style != "" {
		css, err := assets.HighlightCSS(style)
		if err != nil {
			return nil, err
		}
		b.highlight = css
	}

	return b, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(path)
}

// Build generates the site. Any error aborts the build; the output directory
// may then be partially written.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	out := b.cfg.Output.Dir
	result := &Result{OutputDir: out}

	docs, err := loader.New(loader.Config{
		Root:       b.cfg.Content.Root,
		Extensions: b.cfg.Content.Extensions,
		Reserved:   b.cfg.Content.Reserved,
	}).LoadAll(ctx)
	empty := errors.Is(err, loader.ErrNoContentFound)
	if err != nil && !empty {
		return nil, err
	}

	if err := b.prepareOutput(out); err != nil {
		return nil, err
	}

	if empty {
		b.logger.Warn("no content documents found", "root", b.cfg.Content.Root, "extensions", b.cfg.Content.Extensions)
		return result, nil
	}

	renderer := pipeline.NewRenderer(b.converter, b.templates)
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entry := b.catalog.Resolve(doc.ID, doc.Text, doc.Front)
		page, err := renderer.RenderPage(ctx, doc, entry)
		if err != nil {
			return nil, err
		}
		if err := b.write(out, page.Slug, page.HTML); err != nil {
			return nil, err
		}
		b.logger.Debug("rendered page", "source", doc.ID, "title", page.Title, "subject", page.Subject, "unit", page.Unit)
		fmt.Fprintf(b.stdout, "Wrote %s\n", page.Slug)
		result.Pages = append(result.Pages, page)
	}

	outputs, err := listing.NewAssembler(b.cfg, b.templates).Assemble(ctx, result.Pages)
	if err != nil {
		return nil, err
	}
	for _, o := range outputs {
		if err := b.write(out, o.Name, o.HTML); err != nil {
			return nil, err
		}
		fmt.Fprintf(b.stdout, "Generated %s\n", o.Name)
		result.Listings = append(result.Listings, o.Name)
	}

	fmt.Fprintf(b.stdout, "Site generated in: %s\n", out)
	return result, nil
}

// prepareOutput recreates the output directory, copies the static tree and
// adds the highlight stylesheet unless the static tree already has one.
func (b *Builder) prepareOutput(out string) error {
	if err := fileutil.ResetDir(out); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	staticOut := filepath.Join(out, staticDirName)
	copied, err := fileutil.CopyTree(b.cfg.Static.Dir, staticOut)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if !copied {
		b.logger.Debug("no static directory", "dir", b.cfg.Static.Dir)
	}

	cssPath := filepath.Join(out, filepath.FromSlash(assets.HighlightStylesheet))
	if b.highlight == "" || fileutil.FileExists(cssPath) {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(cssPath), fileutil.DirPerm); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return b.write(filepath.Dir(cssPath), filepath.Base(cssPath), b.highlight)
}

func (b *Builder) write(dir, name, content string) error {
	if err := fileutil.WriteFile(dir, name, content); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
