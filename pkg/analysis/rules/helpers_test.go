package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/syntree/pkg/analysis"
	"github.com/yaklabco/syntree/pkg/config"
	"github.com/yaklabco/syntree/pkg/edit"
	"github.com/yaklabco/syntree/pkg/parser"
)

// applyRule parses source and runs a single rule over it.
func applyRule(t *testing.T, rule analysis.Rule, source string, options map[string]any) []analysis.Diagnostic {
	t.Helper()

	result := parser.Parse(source)
	ruleCfg := config.RuleConfig{Options: options}
	ctx := analysis.NewRuleContext(
		context.Background(), "test.sy", result, config.Default(), ruleCfg, rule.DefaultSeverity())

	diags, err := rule.Apply(ctx)
	require.NoError(t, err)
	return diags
}

// applyFixes applies all fix edits from the diagnostics to source.
func applyFixes(t *testing.T, source string, diags []analysis.Diagnostic) string {
	t.Helper()

	var all []edit.TextEdit
	for _, d := range diags {
		all = append(all, d.FixEdits...)
	}
	fixed, err := edit.Apply(source, all)
	require.NoError(t, err)
	return fixed
}
