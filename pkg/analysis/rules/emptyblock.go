package rules

import (
	"github.com/yaklabco/syntree/pkg/analysis"
	"github.com/yaklabco/syntree/pkg/syntax"
)

// EmptyBlockRule checks for blocks that contain nothing but trivia.
type EmptyBlockRule struct {
	analysis.BaseRule
}

// NewEmptyBlockRule creates a new empty block rule.
func NewEmptyBlockRule() *EmptyBlockRule {
	return &EmptyBlockRule{
		BaseRule: analysis.NewBaseRule(
			"SY002",
			"no-empty-block",
			"Blocks should contain at least one statement",
			[]string{"style"},
			false,
		),
	}
}

// Apply reports every block whose body is empty apart from whitespace and
// comments. Blocks with comments inside still count as empty; a comment
// is not a statement.
func (r *EmptyBlockRule) Apply(ctx *analysis.RuleContext) ([]analysis.Diagnostic, error) {
	var diags []analysis.Diagnostic

	for _, block := range syntax.FindByKind(ctx.Root, syntax.KindBlockStmt) {
		if !isEmptyBlock(block) {
			continue
		}
		diag := ctx.Diagnostic(r, block.TextRange(), "Empty block")
		diag.Suggestion = "Remove the block or add a statement"
		diags = append(diags, diag)
	}

	return diags, nil
}

// isEmptyBlock reports whether the block has both braces and no
// statements between them.
func isEmptyBlock(block *syntax.SyntaxNode) bool {
	if len(block.Children()) > 0 {
		return false
	}

	sawLBrace, sawRBrace := false, false
	for _, tok := range block.ChildTokens() {
		switch tok.Kind() {
		case syntax.KindLBrace:
			sawLBrace = true
		case syntax.KindRBrace:
			sawRBrace = true
		default:
			if !tok.Kind().IsTrivia() {
				return false
			}
		}
	}
	return sawLBrace && sawRBrace
}
