package rules

import (
	"fmt"

	"github.com/yaklabco/syntree/pkg/analysis"
	"github.com/yaklabco/syntree/pkg/syntax"
)

// ConstantConditionRule checks for if and while conditions that are
// literals, which usually indicate a leftover debugging switch or a typo.
type ConstantConditionRule struct {
	analysis.BaseRule
}

// NewConstantConditionRule creates a new constant condition rule.
func NewConstantConditionRule() *ConstantConditionRule {
	return &ConstantConditionRule{
		BaseRule: analysis.NewBaseRule(
			"SY003",
			"constant-condition",
			"Conditions should not be constant literals",
			[]string{"correctness"},
			false,
		),
	}
}

// Apply reports if/while statements whose condition is a literal,
// looking through parentheses.
func (r *ConstantConditionRule) Apply(ctx *analysis.RuleContext) ([]analysis.Diagnostic, error) {
	var diags []analysis.Diagnostic

	predicate := func(n *syntax.SyntaxNode) bool {
		return n.Kind() == syntax.KindIfStmt || n.Kind() == syntax.KindWhileStmt
	}
	for _, stmt := range syntax.FindAll(ctx.Root, predicate) {
		var cond *syntax.SyntaxNode
		keyword := "if"
		if ifStmt, ok := syntax.AsIfStmt(stmt); ok {
			cond = ifStmt.Condition()
		} else if whileStmt, ok := syntax.AsWhileStmt(stmt); ok {
			cond = whileStmt.Condition()
			keyword = "while"
		}
		if cond == nil {
			continue
		}

		lit, ok := syntax.AsLiteral(syntax.UnwrapParens(cond))
		if !ok {
			continue
		}

		diag := ctx.Diagnostic(r, cond.TextRange(),
			fmt.Sprintf("Constant %s condition %q", keyword, lit.Node().Text()))
		diag.Suggestion = "Replace the literal with a real condition"
		diags = append(diags, diag)
	}

	return diags, nil
}
