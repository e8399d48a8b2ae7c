// ABOUTME: Minimal non-validating HTML tag scanner used by the truncation helpers
// ABOUTME: Splits a fragment into text and tag tokens and folds tags into an open-tag stack

package html

import (
	"strings"
	"unicode"
)

// tokenKind identifies what a scanned token represents
type tokenKind int

const (
	textToken tokenKind = iota
	openTagToken
	closeTagToken
	selfClosingTagToken
	// directiveToken covers comments, doctypes and processing instructions
	directiveToken
	// partialToken is a '<' with no terminating '>' before end of input
	partialToken
)

// token is a slice of the source fragment
type token struct {
	kind tokenKind
	name string
	// start and end are byte offsets into the scanned string
	start int
	end   int
}

// voidElements never have a closing tag in HTML, so they never open a scope
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// tokenize scans s into a token stream. A tag runs from '<' to the first
// following '>', which may be on another line.
func tokenize(s string) []token {
	var tokens []token
	pos := 0
	for pos < len(s) {
		lt := strings.IndexByte(s[pos:], '<')
		if lt < 0 {
			tokens = append(tokens, token{kind: textToken, start: pos, end: len(s)})
			break
		}
		if lt > 0 {
			tokens = append(tokens, token{kind: textToken, start: pos, end: pos + lt})
		}
		start := pos + lt
		gt := strings.IndexByte(s[start:], '>')
		if gt < 0 {
			tokens = append(tokens, token{kind: partialToken, start: start, end: len(s)})
			break
		}
		end := start + gt + 1
		tokens = append(tokens, classifyTag(s[start:end], start, end))
		pos = end
	}
	return tokens
}

// classifyTag turns the raw text of a complete tag (including the angle
// brackets) into a token
func classifyTag(raw string, start, end int) token {
	tok := token{start: start, end: end}
	inner := raw[1 : len(raw)-1]

	if strings.HasPrefix(inner, "!") || strings.HasPrefix(inner, "?") {
		tok.kind = directiveToken
		return tok
	}

	if strings.HasPrefix(inner, "/") {
		tok.kind = closeTagToken
		tok.name = tagName(inner[1:])
		return tok
	}

	tok.name = tagName(inner)
	if strings.HasSuffix(strings.TrimRightFunc(inner, unicode.IsSpace), "/") || voidElements[strings.ToLower(tok.name)] {
		tok.kind = selfClosingTagToken
		return tok
	}
	tok.kind = openTagToken
	return tok
}

// tagName returns the leading run of characters up to whitespace, '/' or
// '>'. Names that do not start with an ASCII letter yield "".
func tagName(s string) string {
	if s == "" || !isASCIILetter(s[0]) {
		return ""
	}
	end := strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '/' || r == '>'
	})
	if end < 0 {
		return s
	}
	return s[:end]
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// openTags folds a token stream into the stack of tags still open at its
// end. A closing tag pops until it finds a case-insensitive match or the
// stack runs out, so stray closers unwind everything below them.
func openTags(tokens []token) []string {
	var stack []string
	for _, tok := range tokens {
		switch tok.kind {
		case openTagToken:
			if tok.name != "" {
				stack = append(stack, tok.name)
			}
		case closeTagToken:
			if tok.name == "" {
				continue
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if strings.EqualFold(top, tok.name) {
					break
				}
			}
		}
	}
	return stack
}
