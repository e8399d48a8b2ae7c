// ABOUTME: Truncation helpers for plain text and HTML fragments
// ABOUTME: HTML truncation counts only visible characters and closes any tags left open

package html

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultTrailingText is the marker most callers append to shortened text
const DefaultTrailingText = "..."

// TruncateHTML truncates an HTML fragment to maxChars visible characters,
// keeping whole words. Tags left open by the cut are closed. No trailing
// marker is appended.
func TruncateHTML(html string, maxChars int) string {
	return TruncateHTMLWithTrailing(html, maxChars, "")
}

// TruncateHTMLWithTrailing truncates an HTML fragment to maxChars visible
// characters, keeping whole words, and appends trailing before the synthetic
// closing tags when anything was cut.
//
// Characters between '<' and '>' are not counted. Empty input and a
// non-positive budget return the input unchanged.
func TruncateHTMLWithTrailing(html string, maxChars int, trailing string) string {
	if html == "" || maxChars <= 0 {
		return html
	}

	cut := visibleCutOffset(html, maxChars)

	truncated := html
	if cut < len(html) {
		truncated = TruncateWords(html, utf8.RuneCountInString(html[:cut]), "")
	}

	return balanceTags(truncated, len(html), trailing)
}

// balanceTags drops an unterminated trailing tag from fragment, appends
// marker when the result is shorter than originalLen and then closes every
// tag still open, innermost first
func balanceTags(fragment string, originalLen int, marker string) string {
	tokens := tokenize(fragment)
	if n := len(tokens); n > 0 && tokens[n-1].kind == partialToken {
		// an unterminated tag cannot be rendered; drop it with the gap before it
		fragment = strings.TrimRightFunc(fragment[:tokens[n-1].start], unicode.IsSpace)
		tokens = tokens[:n-1]
	}

	stack := openTags(tokens)

	var b strings.Builder
	b.Grow(len(fragment) + len(marker) + 8*len(stack))
	b.WriteString(fragment)

	if len(fragment) < originalLen {
		b.WriteString(marker)
	}

	for i := len(stack) - 1; i >= 0; i-- {
		b.WriteString("</")
		b.WriteString(stack[i])
		b.WriteByte('>')
	}

	return b.String()
}

// TruncateHTMLByDelimiter cuts an HTML fragment at the first occurrence of
// delimiter (for example "<!--more-->") and closes the tags left open.
// The input is returned unchanged when the delimiter is missing or leads it.
func TruncateHTMLByDelimiter(html, delimiter string) string {
	if delimiter == "" {
		return html
	}
	idx := strings.Index(html, delimiter)
	if idx <= 0 {
		return html
	}

	prefix := html[:idx]
	return balanceTags(prefix, len(prefix), "")
}

// visibleCutOffset returns the byte offset just past the rune at which the
// visible character count reaches maxChars, or len(html) when the budget is
// never reached. Invalid UTF-8 bytes count as one character each.
func visibleCutOffset(html string, maxChars int) int {
	count := 0
	inTag := false
	for i, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			if !inTag {
				count++
			}
			inTag = false
		case !inTag:
			count++
		}

		if count >= maxChars {
			// range steps over an invalid byte as a one-byte RuneError
			_, size := utf8.DecodeRuneInString(html[i:])
			return i + size
		}
	}
	return len(html)
}

// Truncate cuts text to maxChars characters and appends trailing when
// anything was removed
func Truncate(text string, maxChars int, trailing string) string {
	if text == "" || maxChars <= 0 || utf8.RuneCountInString(text) <= maxChars {
		return text
	}
	return text[:runeOffset(text, maxChars)] + trailing
}

// TruncateWords cuts text to maxChars characters, discards the partial word
// left at the end and appends trailing. If no whitespace precedes the final
// word the hard cut is kept.
func TruncateWords(text string, maxChars int, trailing string) string {
	if text == "" || maxChars <= 0 || utf8.RuneCountInString(text) <= maxChars {
		return text
	}
	return trimPartialWord(Truncate(text, maxChars, "")) + trailing
}

// trimPartialWord removes a trailing run of non-whitespace together with the
// whitespace run in front of it. Text ending in whitespace, or consisting of
// a single word, is returned as is.
func trimPartialWord(s string) string {
	space := strings.LastIndexFunc(s, unicode.IsSpace)
	if space < 0 {
		return s
	}
	_, size := utf8.DecodeRuneInString(s[space:])
	if space+size == len(s) {
		return s
	}
	return strings.TrimRightFunc(s[:space], unicode.IsSpace)
}

// runeOffset returns the byte offset of the n-th rune in s
func runeOffset(s string, n int) int {
	i := 0
	for offset := range s {
		if i == n {
			return offset
		}
		i++
	}
	return len(s)
}
