package parser

import (
	"unicode/utf8"

	"github.com/yaklabco/syntree/pkg/syntax"
)

// keywords are the reserved words of the language. They all share
// syntax.KindKeyword; the parser dispatches on the token text.
var keywords = map[string]bool{
	"let":    true,
	"if":     true,
	"else":   true,
	"while":  true,
	"for":    true,
	"fn":     true,
	"return": true,
	"true":   true,
	"false":  true,
	"struct": true,
	"enum":   true,
	"impl":   true,
}

// tokenizer performs a single-pass scan over source text.
// Every input byte belongs to exactly one token; the scan never fails.
type tokenizer struct {
	source string
	tokens []Token
	pos    int
}

// Tokenize scans the source left to right into a flat token stream.
// The concatenation of token texts reconstructs the source exactly.
// Unknown characters become Error tokens; unterminated strings run to
// end of input. Tokenize never fails.
func Tokenize(source string) []Token {
	if len(source) == 0 {
		return nil
	}

	const initialCapacityDivisor = 3 // reasonable initial capacity estimate
	t := &tokenizer{
		source: source,
		tokens: make([]Token, 0, len(source)/initialCapacityDivisor+1),
	}

	for t.pos < len(t.source) {
		t.next()
	}

	return t.tokens
}

// next scans one token starting at the current position.
func (t *tokenizer) next() {
	start := t.pos
	c := t.source[t.pos]

	switch {
	case isWhitespace(c):
		t.consumeWhile(isWhitespace)
		t.emit(syntax.KindWhitespace, start)

	case c == '/' && t.peekAt(1) == '/':
		t.consumeWhile(func(b byte) bool { return b != '\n' })
		t.emit(syntax.KindComment, start)

	case c == '"':
		t.consumeString()
		t.emit(syntax.KindString, start)

	case isDigit(c):
		t.consumeWhile(isDigit)
		t.emit(syntax.KindNumber, start)

	case isIdentStart(c):
		t.consumeWhile(isIdentContinue)
		text := t.source[start:t.pos]
		if keywords[text] {
			t.emitText(syntax.KindKeyword, start, text)
		} else {
			t.emitText(syntax.KindIdent, start, text)
		}

	case c == '=':
		if t.peekAt(1) == '=' {
			t.pos += 2
			t.emit(syntax.KindEqEq, start)
		} else {
			t.pos++
			t.emit(syntax.KindEq, start)
		}

	case c == '!' && t.peekAt(1) == '=':
		t.pos += 2
		t.emit(syntax.KindNeq, start)

	default:
		if kind, ok := singleCharKind(c); ok {
			t.pos++
			t.emit(kind, start)
			return
		}
		// Unknown character: emit one Error token covering the full rune
		// so multi-byte characters are not split.
		_, size := utf8.DecodeRuneInString(t.source[t.pos:])
		t.pos += size
		t.emit(syntax.KindError, start)
	}
}

// consumeString scans a double-quoted string with backslash escapes.
// An unterminated string runs to end of input; the parser flags it.
func (t *tokenizer) consumeString() {
	t.pos++ // opening quote
	for t.pos < len(t.source) {
		c := t.source[t.pos]
		if c == '\\' && t.pos+1 < len(t.source) {
			t.pos += 2
			continue
		}
		t.pos++
		if c == '"' {
			return
		}
	}
}

func (t *tokenizer) consumeWhile(pred func(byte) bool) {
	for t.pos < len(t.source) && pred(t.source[t.pos]) {
		t.pos++
	}
}

func (t *tokenizer) peekAt(ahead int) byte {
	if t.pos+ahead >= len(t.source) {
		return 0
	}
	return t.source[t.pos+ahead]
}

func (t *tokenizer) emit(kind syntax.Kind, start int) {
	t.emitText(kind, start, t.source[start:t.pos])
}

func (t *tokenizer) emitText(kind syntax.Kind, start int, text string) {
	t.tokens = append(t.tokens, Token{Kind: kind, Text: text, Offset: start})
}

func singleCharKind(c byte) (syntax.Kind, bool) {
	switch c {
	case '+':
		return syntax.KindPlus, true
	case '-':
		return syntax.KindMinus, true
	case '*':
		return syntax.KindStar, true
	case '/':
		return syntax.KindSlash, true
	case '<':
		return syntax.KindLt, true
	case '>':
		return syntax.KindGt, true
	case '(':
		return syntax.KindLParen, true
	case ')':
		return syntax.KindRParen, true
	case '{':
		return syntax.KindLBrace, true
	case '}':
		return syntax.KindRBrace, true
	case ';':
		return syntax.KindSemicolon, true
	case ',':
		return syntax.KindComma, true
	default:
		return 0, false
	}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentContinue(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
