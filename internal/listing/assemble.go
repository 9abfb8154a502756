package listing

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/alnah/go-notesite/internal/assets"
	"github.com/alnah/go-notesite/internal/catalog"
	"github.com/alnah/go-notesite/internal/config"
	"github.com/alnah/go-notesite/internal/pipeline"
)

// IndexFile is the landing page filename.
const IndexFile = "index.html"

// defaultIcon presents subjects missing from the configured set.
const defaultIcon = "fa-book"

// Output is one generated listing file.
type Output struct {
	Name string // Filename relative to the output root
	HTML string
}

// Assembler produces the landing page and subject listing pages. A nil
// Templates selects the embedded base template.
type Assembler struct {
	SiteTitle string
	Subjects  []config.Subject
	Units     []string
	Templates assets.TemplateLoader
}

// NewAssembler creates an Assembler from site configuration.
func NewAssembler(cfg *config.Config, templates assets.TemplateLoader) *Assembler {
	return &Assembler{
		SiteTitle: cfg.Site.Title,
		Subjects:  cfg.Subjects,
		Units:     cfg.Units,
		Templates: templates,
	}
}

// Assemble returns the landing page followed by one listing per populated
// subject in ascending subject order. Subjects without pages get neither a
// listing nor a landing card.
func (a *Assembler) Assemble(ctx context.Context, pages []pipeline.Page) ([]Output, error) {
	groups := Group(pages)

	index, err := a.render(a.SiteTitle, landingTemplate, a.landing(groups, len(pages)))
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", IndexFile, err)
	}
	outputs := []Output{{Name: IndexFile, HTML: index}}

	for _, g := range groups {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		view := a.subject(g)
		out, err := a.render(view.Display, subjectTemplate, view)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", view.File, err)
		}
		outputs = append(outputs, Output{Name: view.File, HTML: out})
	}
	return outputs, nil
}

func (a *Assembler) landing(groups []SubjectGroup, total int) landingView {
	counts := make(map[string]int, len(groups))
	for _, g := range groups {
		counts[g.Subject] = g.Len()
	}

	view := landingView{Title: a.SiteTitle, Total: total}
	for _, s := range a.Subjects {
		n, ok := counts[s.Name]
		if !ok {
			continue
		}
		view.Cards = append(view.Cards, a.card(s.Name, n))
		delete(counts, s.Name)
	}
	for _, g := range groups {
		if n, ok := counts[g.Subject]; ok {
			view.Cards = append(view.Cards, a.card(g.Subject, n))
		}
	}
	return view
}

func (a *Assembler) subject(g SubjectGroup) subjectView {
	view := subjectView{
		subjectCard: a.card(g.Subject, g.Len()),
		UnitCount:   len(g.Units),
		Units:       a.Units,
	}
	for i, p := range g.Pages() {
		view.Cards = append(view.Cards, questionCard{
			Number: i + 1,
			Slug:   p.Slug,
			Title:  p.Title,
			Unit:   p.Unit,
			Badge:  Badge(p),
		})
	}
	return view
}

// card presents a subject, with defaults for subjects not configured.
func (a *Assembler) card(name string, count int) subjectCard {
	c := subjectCard{
		Name:    name,
		Display: name,
		Icon:    defaultIcon,
		File:    catalog.SubjectFile(name),
		Count:   count,
	}
	for _, s := range a.Subjects {
		if s.Name != name {
			continue
		}
		if s.Display != "" {
			c.Display = s.Display
		}
		if s.Icon != "" {
			c.Icon = s.Icon
		}
		c.Description = s.Description
		break
	}
	return c
}

// render executes a fragment template and wraps it in the base template,
// loaded fresh for each page.
func (a *Assembler) render(title string, tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	loader := a.Templates
	if loader == nil {
		loader = assets.NewEmbeddedLoader()
	}
	base, err := loader.LoadTemplate(assets.BaseTemplateName)
	if err != nil {
		return "", err
	}
	return pipeline.Substitute(base, title, buf.String())
}
