// Package loader reads the Markdown source documents of a site.
package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/adrg/frontmatter"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/alnah/go-notesite/internal/catalog"
	"github.com/alnah/go-notesite/internal/yamlutil"
)

// Sentinel errors for document loading.
var (
	ErrNoContentFound      = errors.New("no content documents found")
	ErrContentRootNotFound = errors.New("content root not found")
	ErrReadDocument        = errors.New("failed to read document")
	ErrInvalidEncoding     = errors.New("document is not valid UTF-8")
)

// yamlFront reads "---" delimited front matter. Keys other than the Entry
// fields are ignored; notes often carry tags or dates the site does not use.
var yamlFront = frontmatter.NewFormat("---", "---", decodeFront)

func decodeFront(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return yamlutil.Decode(data, v)
}

// Document is one source file: its identifier (the file name) and its text.
// Front holds whatever metadata a leading YAML front matter block declared;
// Text is the Markdown that follows it.
type Document struct {
	ID    string
	Text  string
	Front catalog.Entry
}

// Config selects which files under Root are documents.
type Config struct {
	Root       string
	Extensions []string // e.g. ".md"; compared case-sensitively
	Reserved   string   // exact file name to skip, e.g. "README.MD"
}

// Loader enumerates and reads documents.
type Loader struct {
	root       string
	extensions map[string]bool
	reserved   string
}

// New creates a Loader. With no extensions, ".md" is used.
func New(cfg Config) *Loader {
	exts := cfg.Extensions
	if len(exts) == 0 {
		exts = []string{".md"}
	}
	l := &Loader{
		root:       cfg.Root,
		extensions: make(map[string]bool, len(exts)),
		reserved:   cfg.Reserved,
	}
	for _, ext := range exts {
		l.extensions[ext] = true
	}
	return l
}

// IDs lists document identifiers under the root in ascending byte order.
// Only files directly in the root are considered.
func (l *Loader) IDs() ([]string, error) {
	entries, err := os.ReadDir(l.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrContentRootNotFound, l.root)
		}
		return nil, fmt.Errorf("scanning %s: %w", l.root, err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if name == l.reserved || !l.extensions[filepath.Ext(name)] {
			continue
		}
		ids = append(ids, name)
	}
	sort.Strings(ids)
	return ids, nil
}

// LoadAll reads every document. It returns ErrNoContentFound when the root
// holds no documents; any unreadable or non-UTF-8 file fails the whole load.
func (l *Loader) LoadAll(ctx context.Context) ([]Document, error) {
	ids, err := l.IDs()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoContentFound, l.root)
	}

	docs := make([]Document, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, err := l.Load(id)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Load reads a single document by identifier.
func (l *Loader) Load(id string) (Document, error) {
	path := filepath.Join(l.root, id)
	data, err := os.ReadFile(path) // #nosec G304 -- id comes from a directory listing of root
	if err != nil {
		return Document{}, fmt.Errorf("%w: %s: %v", ErrReadDocument, id, err)
	}
	return Decode(id, data)
}

// Decode turns raw file bytes into a Document: validates UTF-8, drops a
// leading byte order mark and splits off front matter.
func Decode(id string, data []byte) (Document, error) {
	if !utf8.Valid(data) {
		return Document{}, fmt.Errorf("%w: %s", ErrInvalidEncoding, id)
	}

	text, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %s: %v", ErrInvalidEncoding, id, err)
	}

	var front catalog.Entry
	body, err := frontmatter.Parse(bytes.NewReader(text), &front, yamlFront)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %s: front matter: %v", ErrReadDocument, id, err)
	}

	return Document{ID: id, Text: string(body), Front: front}, nil
}
