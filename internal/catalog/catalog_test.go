package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// ---------------------------------------------------------------------------
// TestDefault - Embedded table
// ---------------------------------------------------------------------------

func TestDefault(t *testing.T) {
	t.Parallel()

	c := Default()
	if c.Len() != 28 {
		t.Errorf("Len() = %d, want 28", c.Len())
	}

	e, ok := c.Lookup("Q7.md")
	if !ok {
		t.Fatal("Lookup(Q7.md) not found")
	}
	want := Entry{Title: "State the goals of Machine Learning", Unit: "Unit 2", Marks: "4 marks", Subject: "ML"}
	if e != want {
		t.Errorf("Lookup(Q7.md) = %+v, want %+v", e, want)
	}

	if _, ok := c.Lookup("q7.md"); ok {
		t.Error("Lookup is case-sensitive, q7.md should not match")
	}

	if c.Subject() != "ML" {
		t.Errorf("Subject() = %q, want %q", c.Subject(), "ML")
	}
	got := c.Resolve("Q99.md", "# My Custom Heading\n", Entry{})
	want = Entry{Title: "My Custom Heading", Unit: GeneralUnit, Subject: "ML"}
	if got != want {
		t.Errorf("Resolve(Q99.md) = %+v, want %+v", got, want)
	}
}

func TestCatalog_Subject(t *testing.T) {
	t.Parallel()

	if got := New(nil).Subject(); got != GeneralSubject {
		t.Errorf("New(nil).Subject() = %q, want %q", got, GeneralSubject)
	}
	var nilCatalog *Catalog
	if got := nilCatalog.Subject(); got != GeneralSubject {
		t.Errorf("nil Subject() = %q, want %q", got, GeneralSubject)
	}
	c, err := Parse([]byte("entries:\n  A.md: {title: Alpha}\n"))
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if c.Subject() != GeneralSubject {
		t.Errorf("Subject() without table subject = %q, want %q", c.Subject(), GeneralSubject)
	}
}

// ---------------------------------------------------------------------------
// TestParse - YAML table decoding
// ---------------------------------------------------------------------------

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		id      string
		want    Entry
		wantErr error
	}{
		{
			name: "file subject fills entries",
			data: "subject: JAVA\nentries:\n  J1.md: {title: Explain JVM, unit: Unit 1, marks: 4 marks}\n",
			id:   "J1.md",
			want: Entry{Title: "Explain JVM", Unit: "Unit 1", Marks: "4 marks", Subject: "JAVA"},
		},
		{
			name: "entry subject overrides file subject",
			data: "subject: JAVA\nentries:\n  C1.md: {title: Delegates, unit: Unit 2, subject: \"C#\"}\n",
			id:   "C1.md",
			want: Entry{Title: "Delegates", Unit: "Unit 2", Subject: "C#"},
		},
		{
			name: "missing unit and subject default to General",
			data: "entries:\n  X.md: {title: Loose note}\n",
			id:   "X.md",
			want: Entry{Title: "Loose note", Unit: GeneralUnit, Subject: GeneralSubject},
		},
		{
			name:    "entry without title",
			data:    "entries:\n  X.md: {unit: Unit 1}\n",
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "unknown field",
			data:    "entries:\n  X.md: {title: a, mark: 4}\n",
			wantErr: ErrCatalogParse,
		},
		{
			name:    "empty document",
			data:    "",
			wantErr: ErrCatalogParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := Parse([]byte(tt.data))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			got, ok := c.Lookup(tt.id)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.id)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %+v, want %+v", tt.id, got, tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, []byte("entries:\n  A.md: {title: Alpha}\n  B.md: {title: Beta}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() unexpected error: %v", err)
	}
	ids := c.IDs()
	if len(ids) != 2 || ids[0] != "A.md" || ids[1] != "B.md" {
		t.Errorf("IDs() = %v, want [A.md B.md]", ids)
	}

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, ErrCatalogNotFound) {
		t.Errorf("LoadFile(missing) error = %v, want ErrCatalogNotFound", err)
	}
}

// ---------------------------------------------------------------------------
// TestResolve - Table, then front matter, then derived defaults
// ---------------------------------------------------------------------------

func TestResolve(t *testing.T) {
	t.Parallel()

	c := New(map[string]Entry{
		"Q1.md": {Title: "State the goals of Machine Learning", Unit: "Unit 2", Marks: "4 marks", Subject: "ML"},
	})

	tests := []struct {
		name  string
		id    string
		text  string
		front Entry
		want  Entry
	}{
		{
			name:  "table entry wins over heading and front matter",
			id:    "Q1.md",
			text:  "# Something else\n",
			front: Entry{Title: "Front title"},
			want:  Entry{Title: "State the goals of Machine Learning", Unit: "Unit 2", Marks: "4 marks", Subject: "ML"},
		},
		{
			name:  "front matter acts as entry",
			id:    "Q9.md",
			text:  "# Heading\n",
			front: Entry{Title: "  Front title ", Marks: "8 marks", Subject: "JAVA"},
			want:  Entry{Title: "Front title", Unit: GeneralUnit, Marks: "8 marks", Subject: "JAVA"},
		},
		{
			name: "first heading",
			id:   "Q2.md",
			text: "intro\n# My Custom Heading\n\n# Second\n",
			want: Entry{Title: "My Custom Heading", Unit: GeneralUnit, Subject: GeneralSubject},
		},
		{
			name:  "front matter without title is ignored",
			id:    "Q3.md",
			text:  "# From Heading",
			front: Entry{Unit: "Unit 9"},
			want:  Entry{Title: "From Heading", Unit: GeneralUnit, Subject: GeneralSubject},
		},
		{
			name: "identifier when no heading",
			id:   "Q4.md",
			text: "## Only a subheading\nbody",
			want: Entry{Title: "Q4.md", Unit: GeneralUnit, Subject: GeneralSubject},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := c.Resolve(tt.id, tt.text, tt.front)
			if got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFirstHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{name: "first line", text: "# Title\nbody", want: "Title", wantOK: true},
		{name: "later line", text: "text\n\n#   Spaced Title  \n", want: "Spaced Title", wantOK: true},
		{name: "crlf", text: "# Windows\r\nbody", want: "Windows", wantOK: true},
		{name: "h2 ignored", text: "## Sub\n", wantOK: false},
		{name: "no space after hash", text: "#hashtag\n", wantOK: false},
		{name: "indented is not anchored", text: "  # Indented\n", wantOK: false},
		{name: "empty heading", text: "#   \n", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := FirstHeading(tt.text)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("FirstHeading(%q) = (%q, %v), want (%q, %v)", tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
