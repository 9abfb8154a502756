// Package catalog maps source document identifiers to the metadata shown on
// the site: question title, unit, mark value and subject.
//
// The table lives in YAML, outside program logic. A default table is embedded
// in the binary; a site can point at its own file instead.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/alnah/go-notesite/internal/yamlutil"
)

// Labels applied to documents the table does not describe.
const (
	GeneralUnit    = "General"
	GeneralSubject = "General"
)

// Sentinel errors for catalog loading.
var (
	ErrCatalogNotFound = errors.New("catalog file not found")
	ErrCatalogParse    = errors.New("failed to parse catalog")
	ErrEmptyTitle      = errors.New("catalog entry has no title")
)

//go:embed catalog.yaml
var defaultTable []byte

// Entry is the display metadata for one document.
type Entry struct {
	Title   string `yaml:"title"`
	Unit    string `yaml:"unit"`
	Marks   string `yaml:"marks"`
	Subject string `yaml:"subject"`
}

// Catalog is an immutable identifier-to-Entry table. Subject is the table's
// declared default subject, also given to documents the table omits.
type Catalog struct {
	entries map[string]Entry
	subject string
}

// tableFile is the on-disk shape. Subject applies to entries that omit one.
type tableFile struct {
	Subject string           `yaml:"subject"`
	Entries map[string]Entry `yaml:"entries"`
}

// New builds a Catalog from a map. The map is copied. Unmapped documents get
// GeneralSubject.
func New(entries map[string]Entry) *Catalog {
	c := &Catalog{entries: make(map[string]Entry, len(entries)), subject: GeneralSubject}
	for id, e := range entries {
		c.entries[id] = e
	}
	return c
}

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	c, err := Parse(defaultTable)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Parse decodes a YAML catalog table.
func Parse(data []byte) (*Catalog, error) {
	var tf tableFile
	if err := yamlutil.DecodeStrict(data, &tf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogParse, err)
	}

	fallback := tf.Subject
	if fallback == "" {
		fallback = GeneralSubject
	}

	entries := make(map[string]Entry, len(tf.Entries))
	for id, e := range tf.Entries {
		if strings.TrimSpace(e.Title) == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptyTitle, id)
		}
		if e.Unit == "" {
			e.Unit = GeneralUnit
		}
		if e.Subject == "" {
			e.Subject = fallback
		}
		entries[id] = e
	}
	return &Catalog{entries: entries, subject: fallback}, nil
}

// LoadFile reads and parses a catalog table from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- catalog path comes from site config
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, path)
		}
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data)
}

// Lookup returns the entry for id. A missing entry is not an error.
func (c *Catalog) Lookup(id string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	e, ok := c.entries[id]
	return e, ok
}

// Subject returns the default subject for documents without an entry.
func (c *Catalog) Subject() string {
	if c == nil || c.subject == "" {
		return GeneralSubject
	}
	return c.subject
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// IDs returns the identifiers in ascending order.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Resolve picks the metadata for a document. The table wins; a front matter
// block with a title acts as the document's own entry; otherwise Defaults.
func (c *Catalog) Resolve(id, text string, front Entry) Entry {
	if e, ok := c.Lookup(id); ok {
		return e
	}
	if strings.TrimSpace(front.Title) != "" {
		e := front
		e.Title = strings.TrimSpace(e.Title)
		if e.Unit == "" {
			e.Unit = GeneralUnit
		}
		if e.Subject == "" {
			e.Subject = c.Subject()
		}
		return e
	}
	e := Defaults(id, text)
	e.Subject = c.Subject()
	return e
}

// Defaults derives metadata for an unmapped document with no catalog at hand.
func Defaults(id, text string) Entry {
	title, ok := FirstHeading(text)
	if !ok {
		title = id
	}
	return Entry{
		Title:   title,
		Unit:    GeneralUnit,
		Marks:   "",
		Subject: GeneralSubject,
	}
}

var h1Pattern = regexp.MustCompile(`(?m)^#[ \t]+(\S.*)$`)

// FirstHeading returns the text of the first level-1 ATX heading anywhere in
// text, matched at the start of a line.
func FirstHeading(text string) (string, bool) {
	m := h1Pattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	title := strings.TrimSpace(m[1])
	if title == "" {
		return "", false
	}
	return title, true
}
