package rules

import (
	"strings"

	"github.com/yaklabco/syntree/pkg/analysis"
	"github.com/yaklabco/syntree/pkg/edit"
	"github.com/yaklabco/syntree/pkg/syntax"
)

// TrailingWhitespaceRule checks for trailing whitespace on lines.
type TrailingWhitespaceRule struct {
	analysis.BaseRule
}

// NewTrailingWhitespaceRule creates a new trailing whitespace rule.
func NewTrailingWhitespaceRule() *TrailingWhitespaceRule {
	return &TrailingWhitespaceRule{
		BaseRule: analysis.NewBaseRule(
			"SY005",
			"no-trailing-whitespace",
			"Lines should not end with spaces or tabs",
			[]string{"whitespace"},
			true,
		),
	}
}

// Apply reports trailing spaces and tabs on each line, with an edit that
// deletes them.
func (r *TrailingWhitespaceRule) Apply(ctx *analysis.RuleContext) ([]analysis.Diagnostic, error) {
	var diags []analysis.Diagnostic

	for line := 1; line <= ctx.Lines.LineCount(); line++ {
		content := ctx.Lines.LineContent(line)
		trimmed := strings.TrimRight(content, " \t")
		if len(trimmed) == len(content) {
			continue
		}

		start, ok := ctx.Lines.Offset(line, len(trimmed)+1)
		if !ok {
			continue
		}
		end := start + len(content) - len(trimmed)

		diag := ctx.Diagnostic(r,
			syntax.TextRange{Start: start, End: end},
			"Trailing whitespace")
		diag.Suggestion = "Remove trailing whitespace"
		builder := edit.NewBuilder()
		builder.Delete(start, end)
		diag.FixEdits = builder.Edits
		diags = append(diags, diag)
	}

	return diags, nil
}
