package rules

import (
	"github.com/yaklabco/syntree/pkg/analysis"
	"github.com/yaklabco/syntree/pkg/edit"
	"github.com/yaklabco/syntree/pkg/syntax"
)

// EmptyStatementRule checks for stray semicolons. The parser recovers a
// lone ";" into an error node holding just that token, which is the shape
// this rule looks for.
type EmptyStatementRule struct {
	analysis.BaseRule
}

// NewEmptyStatementRule creates a new empty statement rule.
func NewEmptyStatementRule() *EmptyStatementRule {
	return &EmptyStatementRule{
		BaseRule: analysis.NewBaseRule(
			"SY006",
			"no-empty-statement",
			"Stray semicolons should be removed",
			[]string{"style"},
			true,
		),
	}
}

// Apply reports error nodes that contain exactly one semicolon, with an
// edit that deletes it.
func (r *EmptyStatementRule) Apply(ctx *analysis.RuleContext) ([]analysis.Diagnostic, error) {
	var diags []analysis.Diagnostic

	for _, node := range syntax.FindByKind(ctx.Root, syntax.KindErrorNode) {
		semi, ok := loneSemicolon(node)
		if !ok {
			continue
		}

		rng := semi.TextRange()
		diag := ctx.Diagnostic(r, rng, "Empty statement")
		diag.Suggestion = "Remove the stray semicolon"
		builder := edit.NewBuilder()
		builder.Delete(rng.Start, rng.End)
		diag.FixEdits = builder.Edits
		diags = append(diags, diag)
	}

	return diags, nil
}

// loneSemicolon returns the semicolon token if the error node contains
// exactly one semicolon and nothing else but trivia.
func loneSemicolon(node *syntax.SyntaxNode) (syntax.SyntaxToken, bool) {
	if len(node.Children()) > 0 {
		return syntax.SyntaxToken{}, false
	}

	var semi syntax.SyntaxToken
	found := false
	for _, tok := range node.ChildTokens() {
		if tok.Kind().IsTrivia() {
			continue
		}
		if tok.Kind() != syntax.KindSemicolon || found {
			return syntax.SyntaxToken{}, false
		}
		semi = tok
		found = true
	}
	return semi, found
}
