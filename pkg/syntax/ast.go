package syntax

// Typed views over red cursors. A cast succeeds only when the node has
// the matching kind, so callers can pattern-match on structure instead of
// re-checking kinds at every access. The views are thin: they hold the
// cursor and navigate on demand, and on malformed input an accessor
// returns nil (or false) for whatever recovery left missing.

// firstChildOfKind returns the first direct child node of the given kind.
func firstChildOfKind(n *SyntaxNode, kind Kind) *SyntaxNode {
	for _, child := range n.Children() {
		if child.Kind() == kind {
			return child
		}
	}
	return nil
}

// firstTokenOfKind returns the first direct child token of the given kind.
func firstTokenOfKind(n *SyntaxNode, kind Kind) (SyntaxToken, bool) {
	for _, tok := range n.ChildTokens() {
		if tok.Kind() == kind {
			return tok, true
		}
	}
	return SyntaxToken{}, false
}

// firstNonTriviaToken returns the first direct child token that is not
// whitespace or a comment.
func firstNonTriviaToken(n *SyntaxNode) (SyntaxToken, bool) {
	for _, tok := range n.ChildTokens() {
		if !tok.Kind().IsTrivia() {
			return tok, true
		}
	}
	return SyntaxToken{}, false
}

// BinaryExpr is a typed view over a KindBinaryExpr node.
type BinaryExpr struct{ n *SyntaxNode }

// AsBinaryExpr casts n, reporting whether the kind matched.
func AsBinaryExpr(n *SyntaxNode) (BinaryExpr, bool) {
	if n == nil || n.Kind() != KindBinaryExpr {
		return BinaryExpr{}, false
	}
	return BinaryExpr{n}, true
}

// Node returns the underlying cursor.
func (e BinaryExpr) Node() *SyntaxNode { return e.n }

// Lhs returns the left operand.
func (e BinaryExpr) Lhs() *SyntaxNode { return e.n.FirstChild() }

// Rhs returns the right operand, or nil for an incomplete expression.
func (e BinaryExpr) Rhs() *SyntaxNode {
	if lhs := e.n.FirstChild(); lhs != nil {
		return lhs.NextSibling()
	}
	return nil
}

// Op returns the operator token. The operator is the only non-trivia
// token directly under a BinaryExpr.
func (e BinaryExpr) Op() (SyntaxToken, bool) {
	return firstNonTriviaToken(e.n)
}

// UnaryExpr is a typed view over a KindUnaryExpr node.
type UnaryExpr struct{ n *SyntaxNode }

// AsUnaryExpr casts n, reporting whether the kind matched.
func AsUnaryExpr(n *SyntaxNode) (UnaryExpr, bool) {
	if n == nil || n.Kind() != KindUnaryExpr {
		return UnaryExpr{}, false
	}
	return UnaryExpr{n}, true
}

// Node returns the underlying cursor.
func (e UnaryExpr) Node() *SyntaxNode { return e.n }

// Op returns the prefix operator token.
func (e UnaryExpr) Op() (SyntaxToken, bool) { return firstNonTriviaToken(e.n) }

// Operand returns the operand expression, or nil when it is missing.
func (e UnaryExpr) Operand() *SyntaxNode { return e.n.FirstChild() }

// ParenExpr is a typed view over a KindParenExpr node.
type ParenExpr struct{ n *SyntaxNode }

// AsParenExpr casts n, reporting whether the kind matched.
func AsParenExpr(n *SyntaxNode) (ParenExpr, bool) {
	if n == nil || n.Kind() != KindParenExpr {
		return ParenExpr{}, false
	}
	return ParenExpr{n}, true
}

// Node returns the underlying cursor.
func (e ParenExpr) Node() *SyntaxNode { return e.n }

// Inner returns the wrapped expression, or nil for an empty group.
func (e ParenExpr) Inner() *SyntaxNode { return e.n.FirstChild() }

// UnwrapParens strips nested paren groups around n, returning the
// innermost expression node or nil for a group with nothing inside.
func UnwrapParens(n *SyntaxNode) *SyntaxNode {
	for {
		paren, ok := AsParenExpr(n)
		if !ok {
			return n
		}
		n = paren.Inner()
	}
}

// Literal is a typed view over a KindLiteral node.
type Literal struct{ n *SyntaxNode }

// AsLiteral casts n, reporting whether the kind matched.
func AsLiteral(n *SyntaxNode) (Literal, bool) {
	if n == nil || n.Kind() != KindLiteral {
		return Literal{}, false
	}
	return Literal{n}, true
}

// Node returns the underlying cursor.
func (l Literal) Node() *SyntaxNode { return l.n }

// Token returns the literal's value token.
func (l Literal) Token() (SyntaxToken, bool) { return firstNonTriviaToken(l.n) }

// NameRef is a typed view over a KindNameRef node.
type NameRef struct{ n *SyntaxNode }

// AsNameRef casts n, reporting whether the kind matched.
func AsNameRef(n *SyntaxNode) (NameRef, bool) {
	if n == nil || n.Kind() != KindNameRef {
		return NameRef{}, false
	}
	return NameRef{n}, true
}

// Node returns the underlying cursor.
func (r NameRef) Node() *SyntaxNode { return r.n }

// Ident returns the referenced identifier token.
func (r NameRef) Ident() (SyntaxToken, bool) {
	return firstTokenOfKind(r.n, KindIdent)
}

// CallExpr is a typed view over a KindCallExpr node.
type CallExpr struct{ n *SyntaxNode }

// AsCallExpr casts n, reporting whether the kind matched.
func AsCallExpr(n *SyntaxNode) (CallExpr, bool) {
	if n == nil || n.Kind() != KindCallExpr {
		return CallExpr{}, false
	}
	return CallExpr{n}, true
}

// Node returns the underlying cursor.
func (e CallExpr) Node() *SyntaxNode { return e.n }

// Callee returns the expression being called.
func (e CallExpr) Callee() *SyntaxNode { return e.n.FirstChild() }

// Args returns the call's argument expressions, in order.
func (e CallExpr) Args() []*SyntaxNode {
	argList := firstChildOfKind(e.n, KindArgList)
	if argList == nil {
		return nil
	}
	return argList.Children()
}

// LetStmt is a typed view over a KindLetStmt node.
type LetStmt struct{ n *SyntaxNode }

// AsLetStmt casts n, reporting whether the kind matched.
func AsLetStmt(n *SyntaxNode) (LetStmt, bool) {
	if n == nil || n.Kind() != KindLetStmt {
		return LetStmt{}, false
	}
	return LetStmt{n}, true
}

// Node returns the underlying cursor.
func (s LetStmt) Node() *SyntaxNode { return s.n }

// Name returns the bound identifier token.
func (s LetStmt) Name() (SyntaxToken, bool) {
	return firstTokenOfKind(s.n, KindIdent)
}

// Value returns the initializer expression, or nil for "let x;".
func (s LetStmt) Value() *SyntaxNode { return s.n.FirstChild() }

// IfStmt is a typed view over a KindIfStmt node.
type IfStmt struct{ n *SyntaxNode }

// AsIfStmt casts n, reporting whether the kind matched.
func AsIfStmt(n *SyntaxNode) (IfStmt, bool) {
	if n == nil || n.Kind() != KindIfStmt {
		return IfStmt{}, false
	}
	return IfStmt{n}, true
}

// Node returns the underlying cursor.
func (s IfStmt) Node() *SyntaxNode { return s.n }

// Condition returns the condition expression, or nil when recovery left
// none. The condition is the first child node; the then-block always
// comes after it.
func (s IfStmt) Condition() *SyntaxNode {
	first := s.n.FirstChild()
	if first == nil || first.Kind() == KindBlockStmt {
		return nil
	}
	return first
}

// ThenBranch returns the block run when the condition holds.
func (s IfStmt) ThenBranch() *SyntaxNode {
	return firstChildOfKind(s.n, KindBlockStmt)
}

// ElseBranch returns the else arm, either a BlockStmt or a nested IfStmt
// for "else if" chains, or nil when there is none.
func (s IfStmt) ElseBranch() *SyntaxNode {
	for _, tok := range s.n.ChildTokens() {
		if tok.Kind() != KindKeyword || tok.Text() != "else" {
			continue
		}
		for _, child := range s.n.Children() {
			if child.TextRange().Start >= tok.TextRange().End {
				return child
			}
		}
		return nil
	}
	return nil
}

// WhileStmt is a typed view over a KindWhileStmt node.
type WhileStmt struct{ n *SyntaxNode }

// AsWhileStmt casts n, reporting whether the kind matched.
func AsWhileStmt(n *SyntaxNode) (WhileStmt, bool) {
	if n == nil || n.Kind() != KindWhileStmt {
		return WhileStmt{}, false
	}
	return WhileStmt{n}, true
}

// Node returns the underlying cursor.
func (s WhileStmt) Node() *SyntaxNode { return s.n }

// Condition returns the loop condition, or nil when recovery left none.
func (s WhileStmt) Condition() *SyntaxNode {
	first := s.n.FirstChild()
	if first == nil || first.Kind() == KindBlockStmt {
		return nil
	}
	return first
}

// Body returns the loop body block.
func (s WhileStmt) Body() *SyntaxNode {
	return firstChildOfKind(s.n, KindBlockStmt)
}

// ReturnStmt is a typed view over a KindReturnStmt node.
type ReturnStmt struct{ n *SyntaxNode }

// AsReturnStmt casts n, reporting whether the kind matched.
func AsReturnStmt(n *SyntaxNode) (ReturnStmt, bool) {
	if n == nil || n.Kind() != KindReturnStmt {
		return ReturnStmt{}, false
	}
	return ReturnStmt{n}, true
}

// Node returns the underlying cursor.
func (s ReturnStmt) Node() *SyntaxNode { return s.n }

// Value returns the returned expression, or nil for a bare "return;".
func (s ReturnStmt) Value() *SyntaxNode { return s.n.FirstChild() }

// FnDef is a typed view over a KindFnDef node.
type FnDef struct{ n *SyntaxNode }

// AsFnDef casts n, reporting whether the kind matched.
func AsFnDef(n *SyntaxNode) (FnDef, bool) {
	if n == nil || n.Kind() != KindFnDef {
		return FnDef{}, false
	}
	return FnDef{n}, true
}

// Node returns the underlying cursor.
func (f FnDef) Node() *SyntaxNode { return f.n }

// Name returns the function name token.
func (f FnDef) Name() (SyntaxToken, bool) {
	return firstTokenOfKind(f.n, KindIdent)
}

// Params returns the parameter name tokens, in order.
func (f FnDef) Params() []SyntaxToken {
	paramList := firstChildOfKind(f.n, KindParamList)
	if paramList == nil {
		return nil
	}
	var params []SyntaxToken
	for _, tok := range paramList.ChildTokens() {
		if tok.Kind() == KindIdent {
			params = append(params, tok)
		}
	}
	return params
}

// Body returns the function body block.
func (f FnDef) Body() *SyntaxNode {
	return firstChildOfKind(f.n, KindBlockStmt)
}

// BlockStmt is a typed view over a KindBlockStmt node.
type BlockStmt struct{ n *SyntaxNode }

// AsBlockStmt casts n, reporting whether the kind matched.
func AsBlockStmt(n *SyntaxNode) (BlockStmt, bool) {
	if n == nil || n.Kind() != KindBlockStmt {
		return BlockStmt{}, false
	}
	return BlockStmt{n}, true
}

// Node returns the underlying cursor.
func (s BlockStmt) Node() *SyntaxNode { return s.n }

// Statements returns the block's statement nodes, in order.
func (s BlockStmt) Statements() []*SyntaxNode { return s.n.Children() }

// ExprStmt is a typed view over a KindExprStmt node.
type ExprStmt struct{ n *SyntaxNode }

// AsExprStmt casts n, reporting whether the kind matched.
func AsExprStmt(n *SyntaxNode) (ExprStmt, bool) {
	if n == nil || n.Kind() != KindExprStmt {
		return ExprStmt{}, false
	}
	return ExprStmt{n}, true
}

// Node returns the underlying cursor.
func (s ExprStmt) Node() *SyntaxNode { return s.n }

// Expr returns the wrapped expression.
func (s ExprStmt) Expr() *SyntaxNode { return s.n.FirstChild() }
