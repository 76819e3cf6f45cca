package rules

import (
	"github.com/yaklabco/syntree/pkg/analysis"
	"github.com/yaklabco/syntree/pkg/config"
)

// SyntaxErrorRule surfaces parser diagnostics as rule diagnostics so they
// flow through the same severity, filtering, and reporting machinery as
// everything else.
type SyntaxErrorRule struct {
	analysis.BaseRule
}

// NewSyntaxErrorRule creates a new syntax error rule.
func NewSyntaxErrorRule() *SyntaxErrorRule {
	return &SyntaxErrorRule{
		BaseRule: analysis.NewBaseRule(
			"SY001",
			"syntax-error",
			"Source files should parse without syntax errors",
			[]string{"syntax"},
			false,
		),
	}
}

// DefaultSeverity returns error; a file that does not parse is never
// just a warning.
func (r *SyntaxErrorRule) DefaultSeverity() config.Severity {
	return config.SeverityError
}

// Apply reports one diagnostic per recorded parse error.
func (r *SyntaxErrorRule) Apply(ctx *analysis.RuleContext) ([]analysis.Diagnostic, error) {
	if ctx.Parse == nil || len(ctx.Parse.Errors) == 0 {
		return nil, nil
	}

	diags := make([]analysis.Diagnostic, 0, len(ctx.Parse.Errors))
	for _, perr := range ctx.Parse.Errors {
		diags = append(diags, ctx.Diagnostic(r, perr.Range, perr.Message))
	}
	return diags, nil
}
