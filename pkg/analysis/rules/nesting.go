package rules

import (
	"fmt"

	"github.com/yaklabco/syntree/pkg/analysis"
	"github.com/yaklabco/syntree/pkg/syntax"
)

// DefaultMaxNestingDepth is the block nesting limit when the max_depth
// option is not configured.
const DefaultMaxNestingDepth = 5

// MaxNestingRule checks for blocks nested deeper than a configured limit.
type MaxNestingRule struct {
	analysis.BaseRule
}

// NewMaxNestingRule creates a new max nesting rule.
func NewMaxNestingRule() *MaxNestingRule {
	return &MaxNestingRule{
		BaseRule: analysis.NewBaseRule(
			"SY004",
			"max-nesting",
			"Blocks should not be nested deeper than the configured limit",
			[]string{"complexity"},
			false,
		),
	}
}

// Apply reports the shallowest block on each path that exceeds the
// limit. Blocks nested inside an already reported one are not reported
// again; fixing the outer one fixes them all.
func (r *MaxNestingRule) Apply(ctx *analysis.RuleContext) ([]analysis.Diagnostic, error) {
	maxDepth := ctx.IntOption("max_depth", DefaultMaxNestingDepth)
	if maxDepth < 1 {
		maxDepth = DefaultMaxNestingDepth
	}

	var diags []analysis.Diagnostic
	depth := 0

	enter := func(n *syntax.SyntaxNode) error {
		if n.Kind() != syntax.KindBlockStmt {
			return nil
		}
		depth++
		if depth == maxDepth+1 {
			diag := ctx.Diagnostic(r, n.TextRange(),
				fmt.Sprintf("Block nested %d levels deep (max %d)", depth, maxDepth))
			diag.Suggestion = "Extract nested logic into a function"
			diags = append(diags, diag)
		}
		return nil
	}
	leave := func(n *syntax.SyntaxNode) error {
		if n.Kind() == syntax.KindBlockStmt {
			depth--
		}
		return nil
	}

	if err := syntax.WalkWithContext(ctx.Root, enter, leave); err != nil {
		return diags, err
	}
	return diags, nil
}
