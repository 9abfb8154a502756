package pipeline

import (
	"fmt"
	"html"
	"strings"

	nethtml "golang.org/x/net/html"
)

// tocMarker is the paragraph goldmark renders for a line holding only [TOC].
const tocMarker = "<p>[TOC]</p>"

// headingInfo represents an extracted heading from HTML.
type headingInfo struct {
	Level int    // 1-6
	ID    string // anchor ID
	Text  string // heading text content
}

// ExpandTOC replaces every [TOC] marker paragraph with a nested list of links
// to the fragment's headings. Fragments without a marker are returned as is.
func ExpandTOC(fragment string) (string, error) {
	if !strings.Contains(fragment, tocMarker) {
		return fragment, nil
	}

	headings, err := extractHeadings(fragment)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(fragment, tocMarker, buildTOC(headings)), nil
}

// extractHeadings returns h1-h6 elements carrying an id, in document order.
func extractHeadings(fragment string) ([]headingInfo, error) {
	doc, err := nethtml.Parse(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var headings []headingInfo
	var walk func(*nethtml.Node)
	walk = func(n *nethtml.Node) {
		if n.Type == nethtml.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				if id := attr(n, "id"); id != "" {
					headings = append(headings, headingInfo{Level: level, ID: id, Text: textContent(n)})
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return headings, nil
}

// buildTOC renders headings as nested <ul> lists. The shallowest heading
// level becomes the outer list; skipped levels nest one step only.
func buildTOC(headings []headingInfo) string {
	var b strings.Builder
	b.WriteString(`<div class="toc">`)
	if len(headings) == 0 {
		b.WriteString(`</div>`)
		return b.String()
	}

	minLevel := headings[0].Level
	for _, h := range headings[1:] {
		minLevel = min(minLevel, h.Level)
	}

	depth := 0
	for _, h := range headings {
		level := min(h.Level-minLevel+1, depth+1)

		switch {
		case level > depth:
			b.WriteString("<ul>")
			depth = level
		case level == depth:
			b.WriteString("</li>")
		default:
			b.WriteString("</li>")
			for depth > level {
				b.WriteString("</ul></li>")
				depth--
			}
		}

		b.WriteString(`<li><a href="#`)
		b.WriteString(html.EscapeString(h.ID))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(h.Text))
		b.WriteString(`</a>`)
	}
	for ; depth > 0; depth-- {
		b.WriteString("</li></ul>")
	}

	b.WriteString(`</div>`)
	return b.String()
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

func attr(n *nethtml.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *nethtml.Node) string {
	var buf strings.Builder
	var extract func(*nethtml.Node)
	extract = func(n *nethtml.Node) {
		if n.Type == nethtml.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}
