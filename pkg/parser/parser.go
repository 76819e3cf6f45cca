package parser

import (
	"fmt"
	"strings"

	"github.com/yaklabco/syntree/pkg/syntax"
)

// parser consumes the flat token stream and drives a syntax.Builder.
// Trivia (whitespace and comments) is appended to whichever node is open
// when it occurs, so the finished tree reproduces the source exactly.
type parser struct {
	source string
	tokens []Token
	pos    int
	b      *syntax.Builder
	errors []ParseError
}

// Parse tokenizes and parses the source into a lossless syntax tree.
// It never fails: malformed input degrades to Error nodes plus recorded
// diagnostics, and the tree always covers every input byte.
func Parse(source string) *Result {
	p := &parser{
		source: source,
		tokens: Tokenize(source),
		b:      syntax.NewBuilder(),
	}

	p.b.StartNode(syntax.KindRoot)
	for {
		p.eatTrivia()
		if p.atEnd() {
			break
		}
		p.parseStatement()
	}
	green := p.b.Finish()

	return &Result{Green: green, Errors: p.errors, Source: source}
}

// ParseExpression parses the source as a single expression, for callers
// that evaluate fragments rather than whole files. The result still
// covers every input byte: surrounding trivia attaches to the root, and
// anything left over after the expression is wrapped in an Error node
// with a diagnostic.
func ParseExpression(source string) *Result {
	p := &parser{
		source: source,
		tokens: Tokenize(source),
		b:      syntax.NewBuilder(),
	}

	p.b.StartNode(syntax.KindRoot)
	p.eatTrivia()
	if p.atEnd() {
		p.errorHere("expected expression, found end of input")
	} else {
		p.parseExpression()
	}
	p.eatTrivia()
	if !p.atEnd() {
		p.errorHere(fmt.Sprintf("expected end of input, found %q", p.current().Text))
		p.b.StartNode(syntax.KindErrorNode)
		for !p.atEnd() {
			p.bump()
		}
		p.b.FinishNode()
	}
	green := p.b.Finish()

	return &Result{Green: green, Errors: p.errors, Source: source}
}

// --- token stream helpers ---

func (p *parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

// current returns the token at the cursor. Only valid when !atEnd().
func (p *parser) current() Token {
	return p.tokens[p.pos]
}

// currentKind returns the kind at the cursor, or KindError at end of input.
func (p *parser) currentKind() syntax.Kind {
	if p.atEnd() {
		return syntax.KindError
	}
	return p.tokens[p.pos].Kind
}

// at reports whether the cursor is on a token of the given kind.
func (p *parser) at(kind syntax.Kind) bool {
	return !p.atEnd() && p.tokens[p.pos].Kind == kind
}

// atKeyword reports whether the cursor is on the given keyword.
func (p *parser) atKeyword(kw string) bool {
	return p.at(syntax.KindKeyword) && p.tokens[p.pos].Text == kw
}

// bump consumes the current token into the open frame.
func (p *parser) bump() {
	tok := p.tokens[p.pos]
	p.b.Token(tok.Kind, tok.Text)
	p.pos++
}

// eatTrivia consumes any run of whitespace and comment tokens into the
// open frame.
func (p *parser) eatTrivia() {
	for !p.atEnd() && p.tokens[p.pos].Kind.IsTrivia() {
		p.bump()
	}
}

// peekPastTrivia returns the first non-trivia token at or after the
// cursor without consuming anything.
func (p *parser) peekPastTrivia() (Token, bool) {
	for i := p.pos; i < len(p.tokens); i++ {
		if !p.tokens[i].Kind.IsTrivia() {
			return p.tokens[i], true
		}
	}
	return Token{}, false
}

// errorHere records a diagnostic at the current token (or at end of
// input once the stream is exhausted).
func (p *parser) errorHere(message string) {
	var r syntax.TextRange
	if p.atEnd() {
		r = syntax.TextRange{Start: len(p.source), End: len(p.source)}
	} else {
		r = p.current().Range()
	}
	p.errors = append(p.errors, ParseError{Message: message, Range: r})
}

// expect consumes a token of the given kind, or records an error without
// consuming anything so the caller can continue.
func (p *parser) expect(kind syntax.Kind, what string) bool {
	if p.at(kind) {
		p.bump()
		return true
	}
	if p.atEnd() {
		p.errorHere(fmt.Sprintf("expected %s, found end of input", what))
	} else {
		p.errorHere(fmt.Sprintf("expected %s, found %q", what, p.current().Text))
	}
	return false
}

// --- statements ---

func (p *parser) parseStatement() {
	startPos := p.pos

	switch {
	case p.atKeyword("let"):
		p.parseLetStmt()
	case p.atKeyword("if"):
		p.parseIfStmt()
	case p.atKeyword("while"):
		p.parseWhileStmt()
	case p.atKeyword("return"):
		p.parseReturnStmt()
	case p.atKeyword("fn"):
		p.parseFnDef()
	case p.at(syntax.KindLBrace):
		p.parseBlock()
	case p.canStartExpression():
		p.parseExprStmt()
	default:
		p.errorHere(fmt.Sprintf("expected statement, found %q", p.current().Text))
		p.recoverStatement()
	}

	// A statement production must always make progress; if it consumed
	// nothing, swallow one token into an Error node to avoid looping.
	if p.pos == startPos && !p.atEnd() {
		p.b.StartNode(syntax.KindErrorNode)
		p.bump()
		p.b.FinishNode()
	}
}

// canStartExpression reports whether the current token can begin an
// expression.
func (p *parser) canStartExpression() bool {
	switch p.currentKind() {
	case syntax.KindIdent, syntax.KindNumber, syntax.KindString,
		syntax.KindLParen, syntax.KindPlus, syntax.KindMinus:
		return true
	case syntax.KindKeyword:
		return p.atKeyword("true") || p.atKeyword("false")
	default:
		return false
	}
}

// recoverStatement wraps unparseable tokens in an Error node and
// resynchronizes at the next statement boundary: a ";" (consumed), a "}"
// (left for the enclosing block), or a keyword that starts a statement.
func (p *parser) recoverStatement() {
	if p.atEnd() || p.at(syntax.KindRBrace) || p.atStatementKeyword() {
		return
	}
	p.b.StartNode(syntax.KindErrorNode)
	for !p.atEnd() {
		if p.at(syntax.KindRBrace) || p.atStatementKeyword() {
			break
		}
		if p.at(syntax.KindSemicolon) {
			p.bump()
			break
		}
		p.bump()
	}
	p.b.FinishNode()
}

func (p *parser) atStatementKeyword() bool {
	if !p.at(syntax.KindKeyword) {
		return false
	}
	switch p.current().Text {
	case "let", "if", "while", "return", "fn":
		return true
	default:
		return false
	}
}

func (p *parser) parseLetStmt() {
	p.b.StartNode(syntax.KindLetStmt)
	p.bump() // "let"
	p.eatTrivia()
	p.expect(syntax.KindIdent, "identifier")
	p.eatTrivia()
	if p.at(syntax.KindEq) {
		p.bump()
		p.eatTrivia()
		p.parseExpression()
		p.eatTrivia()
	}
	p.expect(syntax.KindSemicolon, `";"`)
	p.b.FinishNode()
}

func (p *parser) parseIfStmt() {
	p.b.StartNode(syntax.KindIfStmt)
	p.bump() // "if"
	p.eatTrivia()
	p.parseExpression()
	p.eatTrivia()
	p.parseBlock()

	// "else" belongs to this if; trailing trivia stays outside otherwise.
	if tok, ok := p.peekPastTrivia(); ok && tok.Kind == syntax.KindKeyword && tok.Text == "else" {
		p.eatTrivia()
		p.bump() // "else"
		p.eatTrivia()
		if p.atKeyword("if") {
			p.parseIfStmt()
		} else {
			p.parseBlock()
		}
	}
	p.b.FinishNode()
}

func (p *parser) parseWhileStmt() {
	p.b.StartNode(syntax.KindWhileStmt)
	p.bump() // "while"
	p.eatTrivia()
	p.parseExpression()
	p.eatTrivia()
	p.parseBlock()
	p.b.FinishNode()
}

func (p *parser) parseReturnStmt() {
	p.b.StartNode(syntax.KindReturnStmt)
	p.bump() // "return"
	p.eatTrivia()
	if !p.at(syntax.KindSemicolon) && !p.atEnd() && p.canStartExpression() {
		p.parseExpression()
		p.eatTrivia()
	}
	p.expect(syntax.KindSemicolon, `";"`)
	p.b.FinishNode()
}

func (p *parser) parseFnDef() {
	p.b.StartNode(syntax.KindFnDef)
	p.bump() // "fn"
	p.eatTrivia()
	p.expect(syntax.KindIdent, "function name")
	p.eatTrivia()
	p.parseParamList()
	p.eatTrivia()
	p.parseBlock()
	p.b.FinishNode()
}

func (p *parser) parseParamList() {
	p.b.StartNode(syntax.KindParamList)
	p.expect(syntax.KindLParen, `"("`)
	p.eatTrivia()
	for p.at(syntax.KindIdent) {
		p.bump()
		p.eatTrivia()
		if !p.at(syntax.KindComma) {
			break
		}
		p.bump()
		p.eatTrivia()
	}
	p.expect(syntax.KindRParen, `")"`)
	p.b.FinishNode()
}

func (p *parser) parseBlock() {
	if !p.at(syntax.KindLBrace) {
		p.errorHere(`expected "{"`)
		return
	}
	p.b.StartNode(syntax.KindBlockStmt)
	p.bump() // "{"
	for {
		p.eatTrivia()
		if p.atEnd() || p.at(syntax.KindRBrace) {
			break
		}
		p.parseStatement()
	}
	p.expect(syntax.KindRBrace, `"}"`)
	p.b.FinishNode()
}

func (p *parser) parseExprStmt() {
	p.b.StartNode(syntax.KindExprStmt)
	p.parseExpression()
	p.eatTrivia()
	p.expect(syntax.KindSemicolon, `";"`)
	p.b.FinishNode()
}

// isUnterminatedString reports whether a string token text runs to end of
// input without a closing quote.
func isUnterminatedString(text string) bool {
	if len(text) < 2 {
		return true
	}
	if !strings.HasSuffix(text, `"`) {
		return true
	}
	// Count trailing backslashes before the final quote; an odd count
	// means the quote is escaped.
	backslashes := 0
	for i := len(text) - 2; i >= 1 && text[i] == '\\'; i-- {
		backslashes++
	}
	return backslashes%2 == 1
}
