package parser

import (
	"fmt"

	"github.com/yaklabco/syntree/pkg/syntax"
)

// Binary operator precedence; higher binds tighter. Unary +/- binds
// tighter than any binary operator, and postfix call tighter than unary.
func binaryPrecedence(kind syntax.Kind) (int, bool) {
	switch kind {
	case syntax.KindStar, syntax.KindSlash:
		return 5, true
	case syntax.KindPlus, syntax.KindMinus:
		return 4, true
	case syntax.KindLt, syntax.KindGt:
		return 3, true
	case syntax.KindEqEq, syntax.KindNeq:
		return 2, true
	default:
		return 0, false
	}
}

func (p *parser) parseExpression() {
	p.parseBinary(0)
}

// parseBinary implements precedence climbing. The checkpoint is taken
// before the left operand; each time a binary operator at or above the
// minimum precedence follows, everything since the checkpoint is wrapped
// into a BinaryExpr and the right-hand side is parsed one level tighter.
// Re-wrapping from the same checkpoint makes operators of equal
// precedence left-associative.
func (p *parser) parseBinary(minPrecedence int) {
	cp := p.b.Checkpoint()
	p.parseUnary()

	for {
		tok, ok := p.peekPastTrivia()
		if !ok {
			return
		}
		precedence, isOperator := binaryPrecedence(tok.Kind)
		if !isOperator || precedence < minPrecedence {
			return
		}

		p.eatTrivia()
		p.b.StartNodeAt(cp, syntax.KindBinaryExpr)
		p.bump() // the operator
		p.eatTrivia()
		p.parseBinary(precedence + 1)
		p.b.FinishNode()
	}
}

func (p *parser) parseUnary() {
	if p.at(syntax.KindPlus) || p.at(syntax.KindMinus) {
		p.b.StartNode(syntax.KindUnaryExpr)
		p.bump()
		p.eatTrivia()
		p.parseUnary()
		p.b.FinishNode()
		return
	}
	p.parsePostfix()
}

// parsePostfix parses a primary expression followed by any number of
// call suffixes, wrapping the callee from the checkpoint each time.
func (p *parser) parsePostfix() {
	cp := p.b.Checkpoint()
	p.parsePrimary()

	for {
		tok, ok := p.peekPastTrivia()
		if !ok || tok.Kind != syntax.KindLParen {
			return
		}
		p.eatTrivia()
		p.b.StartNodeAt(cp, syntax.KindCallExpr)
		p.parseArgList()
		p.b.FinishNode()
	}
}

func (p *parser) parseArgList() {
	p.b.StartNode(syntax.KindArgList)
	p.bump() // "("
	p.eatTrivia()
	if !p.at(syntax.KindRParen) && !p.atEnd() && p.canStartExpression() {
		for {
			p.parseExpression()
			p.eatTrivia()
			if !p.at(syntax.KindComma) {
				break
			}
			p.bump()
			p.eatTrivia()
		}
	}
	p.expect(syntax.KindRParen, `")"`)
	p.b.FinishNode()
}

func (p *parser) parsePrimary() {
	switch {
	case p.at(syntax.KindNumber):
		p.b.StartNode(syntax.KindLiteral)
		p.bump()
		p.b.FinishNode()

	case p.at(syntax.KindString):
		if isUnterminatedString(p.current().Text) {
			p.errorHere("unterminated string")
		}
		p.b.StartNode(syntax.KindLiteral)
		p.bump()
		p.b.FinishNode()

	case p.atKeyword("true") || p.atKeyword("false"):
		p.b.StartNode(syntax.KindLiteral)
		p.bump()
		p.b.FinishNode()

	case p.at(syntax.KindIdent):
		p.b.StartNode(syntax.KindNameRef)
		p.bump()
		p.b.FinishNode()

	case p.at(syntax.KindLParen):
		p.b.StartNode(syntax.KindParenExpr)
		p.bump()
		p.eatTrivia()
		p.parseExpression()
		p.eatTrivia()
		p.expect(syntax.KindRParen, `")"`)
		p.b.FinishNode()

	default:
		if p.atEnd() {
			p.errorHere("expected expression, found end of input")
			return
		}
		p.errorHere(fmt.Sprintf("expected expression, found %q", p.current().Text))
		// Statement boundaries are left for the caller to resynchronize
		// on; anything else is swallowed into an Error node.
		if p.atExpressionBoundary() {
			return
		}
		p.b.StartNode(syntax.KindErrorNode)
		p.bump()
		p.b.FinishNode()
	}
}

// atExpressionBoundary reports whether the current token closes or
// separates an enclosing construct and so must not be consumed while
// recovering inside an expression.
func (p *parser) atExpressionBoundary() bool {
	switch p.currentKind() {
	case syntax.KindSemicolon, syntax.KindRBrace, syntax.KindRParen,
		syntax.KindComma, syntax.KindLBrace:
		return true
	case syntax.KindKeyword:
		switch p.current().Text {
		case "let", "if", "while", "return", "fn", "else":
			return true
		}
	}
	return false
}
