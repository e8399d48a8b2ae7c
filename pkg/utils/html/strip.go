// ABOUTME: HTML utilities for stripping tags and decoding entities
// ABOUTME: Provides the tag stripping and plain-text conversion used by list views and share metadata

package html

import (
	"regexp"

	xhtml "golang.org/x/net/html"
)

var (
	// anyTagPattern matches a lazy '<' to '>' run, across line breaks
	anyTagPattern = regexp.MustCompile(`(?s)<.*?>`)

	// tagWhitespacePattern matches only whitespace between the end of one tag and the start of the next
	tagWhitespacePattern = regexp.MustCompile(`>\s+<`)

	// lineBreakPattern matches <br>, <br/>, <br /> in any case
	lineBreakPattern = regexp.MustCompile(`(?i)<br\s?/?>`)

	// formattingPattern matches a tag, including one left unterminated at the end of input
	formattingPattern = regexp.MustCompile(`<[^>]*(>|$)`)
)

// StripHTML removes all HTML tags from a string. Text outside tags,
// including entities, is left untouched.
func StripHTML(html string) string {
	if html == "" {
		return html
	}
	return anyTagPattern.ReplaceAllString(html, "")
}

// HTMLToPlainText converts an HTML fragment to plain text. Entities are
// decoded first, whitespace between adjacent tags is dropped, line-break
// tags become "\n" and every remaining tag is removed.
func HTMLToPlainText(html string) string {
	if html == "" {
		return html
	}

	text := DecodeEntities(html)
	text = tagWhitespacePattern.ReplaceAllString(text, "><")
	text = lineBreakPattern.ReplaceAllString(text, "\n")
	text = formattingPattern.ReplaceAllString(text, "")

	return text
}

// DecodeEntities decodes named and numeric HTML entities
func DecodeEntities(text string) string {
	return xhtml.UnescapeString(text)
}
