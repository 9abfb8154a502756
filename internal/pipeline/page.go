package pipeline

import (
	"context"
	"errors"
	"fmt"
	"html"
	"path/filepath"
	"strings"

	"github.com/alnah/go-notesite/internal/assets"
	"github.com/alnah/go-notesite/internal/catalog"
	"github.com/alnah/go-notesite/internal/loader"
)

// ErrMissingPlaceholder indicates a template lacks the content placeholder.
var ErrMissingPlaceholder = errors.New("template has no " + assets.ContentPlaceholder + " placeholder")

// Page is one rendered document together with the metadata it was rendered
// with. HTML is the complete page text.
type Page struct {
	Slug     string // Output filename, e.g. "Q7.html"
	SourceID string // Source identifier, e.g. "Q7.md"
	Title    string
	Unit     string
	Marks    string
	Subject  string
	HTML     string
}

// Renderer converts documents into full pages.
type Renderer struct {
	converter HTMLConverter
	templates assets.TemplateLoader
}

// NewRenderer creates a Renderer. A nil converter selects the default
// goldmark converter; a nil loader selects the embedded template.
func NewRenderer(converter HTMLConverter, templates assets.TemplateLoader) *Renderer {
	if converter == nil {
		converter = NewGoldmarkConverter()
	}
	if templates == nil {
		templates = assets.NewEmbeddedLoader()
	}
	return &Renderer{converter: converter, templates: templates}
}

// RenderPage converts doc, wraps it with the page controls and substitutes
// it into the base template. The template is loaded on every call.
func (r *Renderer) RenderPage(ctx context.Context, doc loader.Document, entry catalog.Entry) (Page, error) {
	fragment, err := r.converter.ToHTML(ctx, doc.Text)
	if err != nil {
		return Page{}, fmt.Errorf("rendering %s: %w", doc.ID, err)
	}

	tmpl, err := r.templates.LoadTemplate(assets.BaseTemplateName)
	if err != nil {
		return Page{}, err
	}

	page := Page{
		Slug:     SlugFor(doc.ID),
		SourceID: doc.ID,
		Title:    entry.Title,
		Unit:     entry.Unit,
		Marks:    entry.Marks,
		Subject:  entry.Subject,
	}

	page.HTML, err = Substitute(tmpl, page.Title, wrapControls(page, fragment))
	if err != nil {
		return Page{}, err
	}
	return page, nil
}

// SlugFor returns the output filename for a source identifier: the extension
// replaced by ".html".
func SlugFor(id string) string {
	return strings.TrimSuffix(id, filepath.Ext(id)) + ".html"
}

// Substitute fills the title and content placeholders in a single pass, so
// placeholder text inside the content is left alone. The title is escaped;
// content is inserted as is.
func Substitute(tmpl, title, content string) (string, error) {
	if !strings.Contains(tmpl, assets.ContentPlaceholder) {
		return "", ErrMissingPlaceholder
	}
	r := strings.NewReplacer(
		assets.TitlePlaceholder, html.EscapeString(title),
		assets.ContentPlaceholder, content,
	)
	return r.Replace(tmpl), nil
}

func wrapControls(p Page, fragment string) string {
	slug := html.EscapeString(p.Slug)
	title := html.EscapeString(p.Title)

	var b strings.Builder
	b.WriteString(`<div class="page-controls">`)
	fmt.Fprintf(&b, `<a href="%s" class="back-btn" id="backBtn"><i class="fas fa-arrow-left"></i> Back to Questions</a>`,
		html.EscapeString(catalog.SubjectFile(p.Subject)))
	b.WriteString(`<button class="tts-btn" id="ttsBtn" title="Read aloud"><i class="fas fa-volume-up"></i></button>`)
	fmt.Fprintf(&b, `<button class="page-bookmark-btn" id="pageBookmarkBtn" data-slug="%s" data-title="%s" title="Bookmark this question"><i class="far fa-bookmark"></i></button>`,
		slug, title)
	b.WriteString(`</div>`)
	b.WriteString("\n<article id=\"answerContent\">\n")
	b.WriteString(fragment)
	b.WriteString("</article>")
	return b.String()
}
