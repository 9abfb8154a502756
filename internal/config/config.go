package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-notesite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigPath = errors.New("config path cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
)

// Field length limits.
const (
	MaxTitleLength       = 200  // Site title
	MaxLabelLength       = 50   // Subject names, unit labels, icon tokens
	MaxDescriptionLength = 300  // Subject card description
	MaxPathLength        = 4096 // PATH_MAX on Linux
)

// Config holds everything a build needs to know about where things live and
// how the landing page presents subjects. A zero Config is not usable; start
// from DefaultConfig.
type Config struct {
	Site      SiteConfig      `yaml:"site"`
	Content   ContentConfig   `yaml:"content"`
	Output    OutputConfig    `yaml:"output"`
	Static    StaticConfig    `yaml:"static"`
	Templates TemplatesConfig `yaml:"templates"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Highlight HighlightConfig `yaml:"highlight"`
	Subjects  []Subject       `yaml:"subjects"`
	Units     []string        `yaml:"units"`
}

// SiteConfig holds site-wide presentation settings.
type SiteConfig struct {
	Title string `yaml:"title"` // Landing page title
}

// ContentConfig locates the Markdown sources.
type ContentConfig struct {
	Root       string   `yaml:"root"`       // Directory scanned (not recursive)
	Extensions []string `yaml:"extensions"` // Recognized extensions, with dot
	Reserved   string   `yaml:"reserved"`   // Exact filename skipped (case-sensitive)
}

// OutputConfig locates the generated tree.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Wiped and recreated on every build
}

// StaticConfig locates the static asset tree copied into the output.
type StaticConfig struct {
	Dir string `yaml:"dir"` // Optional; missing directory is a no-op
}

// TemplatesConfig locates the page template.
type TemplatesConfig struct {
	Dir string `yaml:"dir"` // Empty = embedded template; else {dir}/base.html must exist
}

// CatalogConfig locates the question catalog.
type CatalogConfig struct {
	Path string `yaml:"path"` // Empty = embedded catalog
}

// HighlightConfig controls the generated code highlighting stylesheet.
type HighlightConfig struct {
	Style string `yaml:"style"` // Chroma style name; empty disables highlight.css
}

// Subject is one selection card on the landing page.
type Subject struct {
	Name        string `yaml:"name"`        // Matches Entry.Subject, e.g. "C#"
	Display     string `yaml:"display"`     // Card heading
	Icon        string `yaml:"icon"`        // Icon token, e.g. "fa-brain"
	Description string `yaml:"description"` // Card body
}

// Validate implements validation.Validatable.
func (s Subject) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required, validation.Length(1, MaxLabelLength)),
		validation.Field(&s.Display, validation.Length(0, MaxTitleLength)),
		validation.Field(&s.Icon, validation.Length(0, MaxLabelLength)),
		validation.Field(&s.Description, validation.Length(0, MaxDescriptionLength)),
	)
}

// Validate implements validation.Validatable.
func (s SiteConfig) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Title, validation.Length(0, MaxTitleLength)),
	)
}

// Validate implements validation.Validatable.
func (c ContentConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Root, validation.Required, validation.Length(1, MaxPathLength)),
		validation.Field(&c.Extensions, validation.Required, validation.Each(validation.By(checkExtension))),
		validation.Field(&c.Reserved, validation.Length(0, MaxPathLength)),
	)
}

// Validate implements validation.Validatable.
func (o OutputConfig) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Dir, validation.Required, validation.Length(1, MaxPathLength), validation.By(checkOutputDir)),
	)
}

// Validate checks field presence and lengths. Called by LoadConfig, and
// available for callers that assemble a Config by hand (tests, embedders).
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Site),
		validation.Field(&c.Content),
		validation.Field(&c.Output),
		validation.Field(&c.Subjects),
		validation.Field(&c.Units, validation.Each(validation.Required, validation.Length(1, MaxLabelLength))),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	seen := make(map[string]bool, len(c.Subjects))
	for _, s := range c.Subjects {
		if seen[s.Name] {
			return fmt.Errorf("%w: subjects: duplicate name %q", ErrInvalidConfig, s.Name)
		}
		seen[s.Name] = true
	}

	out := filepath.Clean(c.Output.Dir)
	if out == filepath.Clean(c.Content.Root) {
		return fmt.Errorf("%w: output.dir must differ from content.root", ErrInvalidConfig)
	}
	if c.Static.Dir != "" && out == filepath.Clean(c.Static.Dir) {
		return fmt.Errorf("%w: output.dir must differ from static.dir", ErrInvalidConfig)
	}
	return nil
}

func checkExtension(value any) error {
	ext, _ := value.(string)
	if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
		return fmt.Errorf("extension %q must start with a dot", ext)
	}
	if strings.ContainsAny(ext, "/\\\x00") {
		return fmt.Errorf("extension %q contains a path separator", ext)
	}
	return nil
}

// checkOutputDir refuses output locations that would wipe the working tree.
func checkOutputDir(value any) error {
	dir, _ := value.(string)
	switch strings.TrimRight(strings.TrimSpace(dir), "/\\") {
	case "", ".", "..", "~":
		return fmt.Errorf("refusing to use %q as output directory", dir)
	}
	return nil
}

// DefaultConfig returns the layout of the original notes repository:
// Markdown at the root, output in site/, assets in static/.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{Title: "Study Notes"},
		Content: ContentConfig{
			Root:       ".",
			Extensions: []string{".md"},
			Reserved:   "README.MD",
		},
		Output:    OutputConfig{Dir: "site"},
		Static:    StaticConfig{Dir: "static"},
		Templates: TemplatesConfig{Dir: ""},
		Catalog:   CatalogConfig{Path: ""},
		Highlight: HighlightConfig{Style: "github"},
		Subjects: []Subject{
			{Name: "ML", Display: "Machine Learning", Icon: "fa-brain", Description: "Predictive modeling, bias and variance, probability"},
			{Name: "JAVA", Display: "Java Programming", Icon: "fa-java", Description: "Core Java, OOP, collections and exceptions"},
			{Name: "C#", Display: "C# Programming", Icon: "fa-code", Description: ".NET fundamentals, classes and LINQ"},
		},
		Units: []string{"Unit 1", "Unit 2", "Unit 3", "Unit 4"},
	}
}

// LoadConfig reads a YAML config file and overlays it on DefaultConfig, so a
// file only needs the keys it changes. Unknown keys are an error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyConfigPath
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
