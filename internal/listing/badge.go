package listing

import "github.com/alnah/go-notesite/internal/pipeline"

const badgeSeparator = " • "

// Badge returns the label shown on a question card: the unit, or the subject
// when both carry the same label, followed by the marks when present.
func Badge(p pipeline.Page) string {
	label := p.Unit
	if p.Unit == p.Subject {
		label = p.Subject
	}
	if p.Marks != "" {
		label += badgeSeparator + p.Marks
	}
	return label
}
