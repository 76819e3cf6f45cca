// Package parser turns source text into lossless syntax trees: a total
// tokenizer, a recursive-descent precedence-climbing parser that drives
// syntax.Builder, and the incremental reparse entry point.
package parser

import "github.com/yaklabco/syntree/pkg/syntax"

// Token is one element of the flat token stream: a kind, the exact source
// text, and the absolute byte offset where it starts. Tokens are produced
// once by Tokenize and consumed once, in order, by the parser.
type Token struct {
	// Kind classifies the token.
	Kind syntax.Kind

	// Text is the exact slice of source the token covers.
	Text string

	// Offset is the byte index where the token begins.
	Offset int
}

// Range returns the absolute byte range the token covers.
func (t Token) Range() syntax.TextRange {
	return syntax.TextRange{Start: t.Offset, End: t.Offset + len(t.Text)}
}

// ValidateTokens checks that a token stream is total over the source:
// the first token starts at 0, tokens are contiguous with no gaps or
// overlaps, and the last token ends at sourceLen.
func ValidateTokens(tokens []Token, sourceLen int) bool {
	if len(tokens) == 0 {
		return sourceLen == 0
	}

	if tokens[0].Offset != 0 {
		return false
	}

	for i := 1; i < len(tokens); i++ {
		if tokens[i].Offset != tokens[i-1].Offset+len(tokens[i-1].Text) {
			return false
		}
	}

	last := tokens[len(tokens)-1]
	return last.Offset+len(last.Text) == sourceLen
}
