package analysis_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/syntree/pkg/analysis"
	"github.com/yaklabco/syntree/pkg/analysis/rules"
	"github.com/yaklabco/syntree/pkg/config"
	"github.com/yaklabco/syntree/pkg/edit"
)

func builtinEngine() *analysis.Engine {
	reg := analysis.NewRegistry()
	rules.RegisterAll(reg)
	return analysis.NewEngine(reg)
}

func TestEngineCheckFileClean(t *testing.T) {
	t.Parallel()

	fr, err := builtinEngine().CheckFile(
		context.Background(), "clean.sy", []byte("let x = 1 + 2;\n"), config.Default())
	require.NoError(t, err)

	assert.False(t, fr.HasIssues())
	assert.Empty(t, fr.RuleErrors)
	assert.NotNil(t, fr.Parse)
	assert.True(t, fr.Parse.Ok())
}

func TestEngineCheckFileFindsIssues(t *testing.T) {
	t.Parallel()

	fr, err := builtinEngine().CheckFile(
		context.Background(), "dirty.sy", []byte("let x = 1; \nif true { }\n"), config.Default())
	require.NoError(t, err)

	require.True(t, fr.HasIssues())

	byRule := map[string]int{}
	for _, d := range fr.Diagnostics {
		byRule[d.RuleID]++
		assert.Equal(t, "dirty.sy", d.FilePath)
		assert.NotEmpty(t, d.RuleName)
	}
	assert.Equal(t, 1, byRule["SY005"], "trailing whitespace")
	assert.Equal(t, 1, byRule["SY002"], "empty block")
	assert.Equal(t, 1, byRule["SY003"], "constant condition")
}

func TestEngineCheckFileSortsDiagnostics(t *testing.T) {
	t.Parallel()

	// Trailing whitespace on line 3, empty block on line 1.
	fr, err := builtinEngine().CheckFile(
		context.Background(), "order.sy", []byte("while x { }\nlet a = 1;\nlet b = 2; \n"), config.Default())
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(fr.Diagnostics), 2)
	for i := 1; i < len(fr.Diagnostics); i++ {
		prev, curr := fr.Diagnostics[i-1], fr.Diagnostics[i]
		assert.LessOrEqual(t, prev.StartLine, curr.StartLine)
	}
}

func TestEngineCheckFileEditsOnlyInFixMode(t *testing.T) {
	t.Parallel()

	content := []byte("let x = 1; \n")

	fr, err := builtinEngine().CheckFile(context.Background(), "a.sy", content, config.Default())
	require.NoError(t, err)
	assert.False(t, fr.HasFixes(), "edits should not be collected without --fix")
	assert.Equal(t, 1, fr.FixableCount())

	cfg := config.Default()
	cfg.Fix = true
	fr, err = builtinEngine().CheckFile(context.Background(), "a.sy", content, cfg)
	require.NoError(t, err)
	assert.True(t, fr.HasFixes())
}

func TestEngineCheckFileFiltersConflictingEdits(t *testing.T) {
	t.Parallel()

	reg := analysis.NewRegistry()
	overlapping := func(ctx *analysis.RuleContext) ([]analysis.Diagnostic, error) {
		return []analysis.Diagnostic{
			{
				RuleID:   "SY910",
				Message:  "first",
				FixEdits: []edit.TextEdit{{StartOffset: 0, EndOffset: 4, NewText: "a"}},
			},
			{
				RuleID:   "SY910",
				Message:  "second",
				FixEdits: []edit.TextEdit{{StartOffset: 2, EndOffset: 6, NewText: "b"}},
			},
		}, nil
	}
	rule := newStubRule("SY910", "overlap-rule", overlapping)
	rule.BaseRule = analysis.NewBaseRule("SY910", "overlap-rule", "stub", nil, true)
	reg.Register(rule)

	cfg := config.Default()
	cfg.Fix = true

	fr, err := analysis.NewEngine(reg).CheckFile(
		context.Background(), "c.sy", []byte("let x = 1;\n"), cfg)
	require.NoError(t, err)

	assert.Len(t, fr.Edits, 1)
	assert.Len(t, fr.SkippedEdits, 1)
	assert.True(t, fr.EditConflicts)
}

func TestEngineCheckFileRecordsRuleErrors(t *testing.T) {
	t.Parallel()

	reg := analysis.NewRegistry()
	reg.Register(newStubRule("SY911", "failing-rule", func(*analysis.RuleContext) ([]analysis.Diagnostic, error) {
		return nil, errors.New("boom")
	}))
	reg.Register(newStubRule("SY912", "ok-rule", func(ctx *analysis.RuleContext) ([]analysis.Diagnostic, error) {
		return []analysis.Diagnostic{{RuleID: "SY912", Message: "found"}}, nil
	}))

	fr, err := analysis.NewEngine(reg).CheckFile(
		context.Background(), "d.sy", []byte("let x = 1;\n"), config.Default())
	require.NoError(t, err)

	// A failing rule does not block the others.
	assert.Len(t, fr.Diagnostics, 1)
	require.Contains(t, fr.RuleErrors, "SY911")
	assert.EqualError(t, fr.RuleErrors["SY911"], "boom")
}

func TestEngineCheckFileCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := builtinEngine().CheckFile(ctx, "e.sy", []byte("let x = 1;\n"), config.Default())
	require.Error(t, err)
}
