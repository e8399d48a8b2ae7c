package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	src := `<!-- c --><p class="a">Hi<br/><img src="x.png"></P></x`

	tokens := tokenize(src)

	kinds := make([]tokenKind, 0, len(tokens))
	names := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		kinds = append(kinds, tok.kind)
		names = append(names, tok.name)
	}

	assert.Equal(t, []tokenKind{
		directiveToken,
		openTagToken,
		textToken,
		selfClosingTagToken,
		selfClosingTagToken,
		closeTagToken,
		partialToken,
	}, kinds)
	assert.Equal(t, []string{"", "p", "", "br", "img", "P", ""}, names)

	// tokens tile the source with no gaps
	pos := 0
	for _, tok := range tokens {
		assert.Equal(t, pos, tok.start)
		pos = tok.end
	}
	assert.Equal(t, len(src), pos)
}

func TestTokenize_MultilineTag(t *testing.T) {
	tokens := tokenize("<a\n  href=\"/x\">link</a>")

	assert.Len(t, tokens, 3)
	assert.Equal(t, openTagToken, tokens[0].kind)
	assert.Equal(t, "a", tokens[0].name)
}

func TestOpenTags(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"balanced", "<p><b>x</b></p>", nil},
		{"two left open", "<div><p>x", []string{"div", "p"}},
		{"closer pops through unmatched", "<div><p><b>x</p>", []string{"div"}},
		{"stray closer empties stack", "<div><p>x</span>", nil},
		{"empty closer ignored", "<div></>", []string{"div"}},
		{"invalid names ignored", "<p>< b>a<1>", []string{"p"}},
		{"self-closing ignored", "<p><br/><hr>", []string{"p"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := openTags(tokenize(tt.src))
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
