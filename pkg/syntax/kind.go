// Package syntax provides the lossless syntax tree model: immutable green
// nodes and tokens, lazy red cursors over them, and the builder used by the
// parser to construct trees in a single forward pass.
package syntax

import "fmt"

// Kind classifies a token or node in the syntax tree.
// Token kinds are leaf-level; node kinds are interior.
type Kind uint16

// Token kinds. Every byte of the source belongs to exactly one token.
const (
	KindWhitespace Kind = iota
	KindComment
	KindIdent
	KindNumber
	KindString

	KindPlus
	KindMinus
	KindStar
	KindSlash
	KindEq
	KindEqEq
	KindNeq
	KindLt
	KindGt

	KindLParen
	KindRParen
	KindLBrace
	KindRBrace
	KindSemicolon
	KindComma

	KindKeyword

	// KindError marks a byte the tokenizer could not classify.
	KindError

	// firstNodeKind is the first interior node kind; it aliases KindRoot.
	firstNodeKind
)

// Node kinds.
const (
	KindRoot Kind = firstNodeKind + iota
	KindBinaryExpr
	KindUnaryExpr
	KindParenExpr
	KindLiteral
	KindNameRef
	KindBlockStmt
	KindExprStmt
	KindLetStmt
	KindIfStmt
	KindWhileStmt
	KindReturnStmt
	KindFnDef
	KindParamList
	KindCallExpr
	KindArgList

	// KindErrorNode wraps tokens the parser could not fit into any production.
	KindErrorNode

	kindCount
)

var kindNames = [...]string{
	KindWhitespace: "Whitespace",
	KindComment:    "Comment",
	KindIdent:      "Ident",
	KindNumber:     "Number",
	KindString:     "String",
	KindPlus:       "Plus",
	KindMinus:      "Minus",
	KindStar:       "Star",
	KindSlash:      "Slash",
	KindEq:         "Eq",
	KindEqEq:       "EqEq",
	KindNeq:        "Neq",
	KindLt:         "Lt",
	KindGt:         "Gt",
	KindLParen:     "LParen",
	KindRParen:     "RParen",
	KindLBrace:     "LBrace",
	KindRBrace:     "RBrace",
	KindSemicolon:  "Semicolon",
	KindComma:      "Comma",
	KindKeyword:    "Keyword",
	KindError:      "Error",

	KindRoot:       "Root",
	KindBinaryExpr: "BinaryExpr",
	KindUnaryExpr:  "UnaryExpr",
	KindParenExpr:  "ParenExpr",
	KindLiteral:    "Literal",
	KindNameRef:    "NameRef",
	KindBlockStmt:  "BlockStmt",
	KindExprStmt:   "ExprStmt",
	KindLetStmt:    "LetStmt",
	KindIfStmt:     "IfStmt",
	KindWhileStmt:  "WhileStmt",
	KindReturnStmt: "ReturnStmt",
	KindFnDef:      "FnDef",
	KindParamList:  "ParamList",
	KindCallExpr:   "CallExpr",
	KindArgList:    "ArgList",
	KindErrorNode:  "ErrorNode",
}

// String returns the name of the kind, or a numeric fallback for kinds
// outside the known range.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint16(k))
}

// IsTokenKind reports whether k is a leaf-level token kind.
func (k Kind) IsTokenKind() bool {
	return k < firstNodeKind
}

// IsNodeKind reports whether k is an interior node kind.
func (k Kind) IsNodeKind() bool {
	return k >= firstNodeKind && k < kindCount
}

// IsTrivia reports whether k is whitespace or a comment.
// Trivia is kept in the tree as ordinary leaves so no source byte is lost.
func (k Kind) IsTrivia() bool {
	return k == KindWhitespace || k == KindComment
}

// KindFromRaw converts a raw integer (e.g. from a serialized form) into a
// Kind, validating the range explicitly rather than trusting the input.
func KindFromRaw(raw uint16) (Kind, error) {
	k := Kind(raw)
	if k >= kindCount {
		return 0, fmt.Errorf("kind out of range: %d", raw)
	}
	return k, nil
}
