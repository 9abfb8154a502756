package catalog

import (
	"strings"

	"github.com/goliatone/go-slug"
)

// SubjectToken turns a subject label into a filename-safe token. "#" reads
// as "sharp" so "C#" and "C" stay distinct.
func SubjectToken(subject string) string {
	token := strings.ToLower(strings.ReplaceAll(subject, "#", "sharp"))
	normalized, err := slug.Normalize(token)
	if err != nil || normalized == "" {
		return token
	}
	return normalized
}

// SubjectFile returns the listing page filename for a subject.
func SubjectFile(subject string) string {
	return "subject-" + SubjectToken(subject) + ".html"
}
