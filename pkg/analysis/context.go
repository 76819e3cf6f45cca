package analysis

import (
	"context"

	"github.com/yaklabco/syntree/pkg/config"
	"github.com/yaklabco/syntree/pkg/parser"
	"github.com/yaklabco/syntree/pkg/syntax"
)

// RuleContext carries everything a rule needs to check one file: the
// parse result, position utilities, and resolved configuration.
type RuleContext struct {
	// Ctx is the cancellation context for this run.
	Ctx context.Context

	// FilePath is the path of the file being checked.
	FilePath string

	// Source is the full source text.
	Source string

	// Parse is the parse result for the file.
	Parse *parser.Result

	// Root is the red cursor over the tree's root.
	Root *syntax.SyntaxNode

	// Lines maps byte offsets to line/column positions.
	Lines *syntax.LineIndex

	// Config is the resolved run configuration.
	Config *config.Config

	// RuleConfig is the per-rule configuration for the running rule.
	RuleConfig config.RuleConfig

	// severity is the effective severity for the running rule.
	severity config.Severity
}

// NewRuleContext creates a context for applying one rule to one file.
func NewRuleContext(
	ctx context.Context,
	path string,
	result *parser.Result,
	cfg *config.Config,
	ruleCfg config.RuleConfig,
	severity config.Severity,
) *RuleContext {
	return &RuleContext{
		Ctx:        ctx,
		FilePath:   path,
		Source:     result.Source,
		Parse:      result,
		Root:       result.Root(),
		Lines:      syntax.NewLineIndex(result.Source),
		Config:     cfg,
		RuleConfig: ruleCfg,
		severity:   severity,
	}
}

// Diagnostic builds a Diagnostic for the running rule at the given range,
// filling in position and severity.
func (c *RuleContext) Diagnostic(rule Rule, r syntax.TextRange, message string) Diagnostic {
	startLine, startCol := c.Lines.LineAt(r.Start)
	endLine, endCol := c.Lines.LineAt(r.End)
	return Diagnostic{
		RuleID:      rule.ID(),
		RuleName:    rule.Name(),
		Message:     message,
		Severity:    c.severity,
		FilePath:    c.FilePath,
		StartLine:   startLine,
		StartColumn: startCol,
		EndLine:     endLine,
		EndColumn:   endCol,
	}
}

// IntOption returns an integer rule option, falling back to def when the
// option is absent or not a number.
func (c *RuleContext) IntOption(name string, def int) int {
	v, ok := c.RuleConfig.Options[name]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return def
	}
}

// BoolOption returns a boolean rule option, falling back to def when the
// option is absent or not a boolean.
func (c *RuleContext) BoolOption(name string, def bool) bool {
	v, ok := c.RuleConfig.Options[name]
	if !ok {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		return def
	}
	return b
}
