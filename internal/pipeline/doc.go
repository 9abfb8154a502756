// Package pipeline turns one Markdown document into one finished HTML page.
//
// The stages are:
//   - Markdown to HTML fragment via Goldmark (GFM tables, fenced code,
//     chroma highlighting with CSS classes, heading ids)
//   - [TOC] marker expansion into a nested table of contents
//   - wrapping the fragment with the page controls (back link, read aloud,
//     bookmark)
//   - substitution into the shared page template
//
// Listing pages reuse Substitute; grouping and ordering live in the listing
// package.
package pipeline
