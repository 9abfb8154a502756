package loader_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-notesite/internal/loader"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestLoader_IDs - Enumeration, filtering, ordering
// ---------------------------------------------------------------------------

func TestLoader_IDs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"Q10.md":         "# ten",
		"Q2.md":          "# two",
		"4Q1.md":         "# four one",
		"README.MD":      "# readme",
		"README.md":      "# lower-case readme is content",
		"notes.txt":      "not markdown",
		"sub/Q99.md":     "# nested, not scanned",
		"Q1.markdown":    "# other extension",
		"static/app.css": "body{}",
	})

	l := loader.New(loader.Config{Root: dir, Reserved: "README.MD"})
	ids, err := l.IDs()
	if err != nil {
		t.Fatalf("IDs() unexpected error: %v", err)
	}

	want := []string{"4Q1.md", "Q10.md", "Q2.md", "README.md"}
	if len(ids) != len(want) {
		t.Fatalf("IDs() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("IDs()[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestLoader_IDs_Extensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.md": "a", "b.markdown": "b"})

	l := loader.New(loader.Config{Root: dir, Extensions: []string{".md", ".markdown"}})
	ids, err := l.IDs()
	if err != nil {
		t.Fatalf("IDs() unexpected error: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("IDs() = %v, want both files", ids)
	}
}

// ---------------------------------------------------------------------------
// TestLoader_LoadAll - Reading and error conditions
// ---------------------------------------------------------------------------

func TestLoader_LoadAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"Q1.md": "# Goals\n\nBody text.",
		"Q2.md": "---\ntitle: Front Title\nunit: Unit 3\nsubject: JAVA\n---\n# Heading\n",
		"Q3.md": "\xEF\xBB\xBF# With BOM\n",
		"Q4.md": "---\ntitle: Tagged\ntags: [svm, kernels]\n---\nBody\n",
	})

	docs, err := loader.New(loader.Config{Root: dir}).LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll() unexpected error: %v", err)
	}
	if len(docs) != 4 {
		t.Fatalf("LoadAll() returned %d docs, want 4", len(docs))
	}

	if docs[0].ID != "Q1.md" || strings.TrimSpace(docs[0].Text) != "# Goals\n\nBody text." {
		t.Errorf("docs[0] = %+v", docs[0])
	}

	if docs[1].Front.Title != "Front Title" || docs[1].Front.Unit != "Unit 3" || docs[1].Front.Subject != "JAVA" {
		t.Errorf("docs[1].Front = %+v, want front matter fields", docs[1].Front)
	}
	if got := strings.TrimSpace(docs[1].Text); got != "# Heading" {
		t.Errorf("docs[1].Text = %q, want front matter stripped", got)
	}

	if got := strings.TrimSpace(docs[2].Text); got != "# With BOM" {
		t.Errorf("docs[2].Text = %q, want BOM stripped", got)
	}

	if docs[3].Front.Title != "Tagged" {
		t.Errorf("docs[3].Front.Title = %q, want extra front matter keys ignored", docs[3].Front.Title)
	}
}

func TestLoader_LoadAll_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(t *testing.T) string
		wantErr error
	}{
		{
			name: "empty root",
			setup: func(t *testing.T) string {
				return t.TempDir()
			},
			wantErr: loader.ErrNoContentFound,
		},
		{
			name: "only reserved readme",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFiles(t, dir, map[string]string{"README.MD": "# readme"})
				return dir
			},
			wantErr: loader.ErrNoContentFound,
		},
		{
			name: "missing root",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nope")
			},
			wantErr: loader.ErrContentRootNotFound,
		},
		{
			name: "invalid utf-8",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFiles(t, dir, map[string]string{
					"Q1.md": "# fine",
					"Q2.md": "# bad \xff\xfe bytes",
				})
				return dir
			},
			wantErr: loader.ErrInvalidEncoding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := tt.setup(t)
			l := loader.New(loader.Config{Root: root, Reserved: "README.MD"})
			docs, err := l.LoadAll(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("LoadAll() error = %v, want %v", err, tt.wantErr)
			}
			if docs != nil {
				t.Errorf("LoadAll() docs = %v, want nil on error", docs)
			}
		})
	}
}

func TestLoader_LoadAll_Cancelled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"Q1.md": "# one"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.New(loader.Config{Root: dir}).LoadAll(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("LoadAll() error = %v, want context.Canceled", err)
	}
}
