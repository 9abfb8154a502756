// Package listing builds the landing page and the per-subject listing pages
// from the metadata of rendered pages.
package listing

import (
	"sort"

	"github.com/alnah/go-notesite/internal/pipeline"
)

// SubjectGroup holds the pages of one subject, split by unit.
type SubjectGroup struct {
	Subject string
	Units   []UnitGroup
}

// UnitGroup holds the pages of one unit in encounter order.
type UnitGroup struct {
	Unit  string
	Pages []pipeline.Page
}

// Group arranges pages by subject then unit. Subjects and units come out in
// ascending order; pages keep the order they were given in.
func Group(pages []pipeline.Page) []SubjectGroup {
	bySubject := make(map[string]map[string][]pipeline.Page)
	for _, p := range pages {
		units, ok := bySubject[p.Subject]
		if !ok {
			units = make(map[string][]pipeline.Page)
			bySubject[p.Subject] = units
		}
		units[p.Unit] = append(units[p.Unit], p)
	}

	groups := make([]SubjectGroup, 0, len(bySubject))
	for _, subject := range sortedKeys(bySubject) {
		units := bySubject[subject]
		g := SubjectGroup{Subject: subject, Units: make([]UnitGroup, 0, len(units))}
		for _, unit := range sortedKeys(units) {
			g.Units = append(g.Units, UnitGroup{Unit: unit, Pages: units[unit]})
		}
		groups = append(groups, g)
	}
	return groups
}

// Pages returns the subject's pages in listing order.
func (g SubjectGroup) Pages() []pipeline.Page {
	var pages []pipeline.Page
	for _, u := range g.Units {
		pages = append(pages, u.Pages...)
	}
	return pages
}

// Len returns the number of pages in the subject.
func (g SubjectGroup) Len() int {
	n := 0
	for _, u := range g.Units {
		n += len(u.Pages)
	}
	return n
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
