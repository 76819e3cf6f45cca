package analysis

import (
	"context"
	"fmt"
	"sort"

	"github.com/yaklabco/syntree/pkg/config"
	"github.com/yaklabco/syntree/pkg/edit"
	"github.com/yaklabco/syntree/pkg/parser"
)

// FileResult contains the results of checking a single file.
type FileResult struct {
	// Parse is the parse result for the file.
	Parse *parser.Result

	// Diagnostics contains all issues found, sorted by position.
	Diagnostics []Diagnostic

	// Edits contains validated, sorted edits for auto-fix.
	// Empty if no fixes are available or --fix was not requested.
	Edits []edit.TextEdit

	// SkippedEdits contains edits that were skipped due to conflicts.
	// When multiple edits overlap, earlier edits (by start position) take
	// precedence.
	SkippedEdits []edit.TextEdit

	// EditConflicts is true if any edits were skipped due to conflicts.
	EditConflicts bool

	// RuleErrors contains any errors from rule execution, keyed by rule ID.
	RuleErrors map[string]error
}

// HasIssues returns true if any diagnostics were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Diagnostics) > 0
}

// HasFixes returns true if any fixes are available.
func (fr *FileResult) HasFixes() bool {
	return len(fr.Edits) > 0
}

// IssueCount returns the total number of diagnostics.
func (fr *FileResult) IssueCount() int {
	return len(fr.Diagnostics)
}

// FixableCount returns the number of diagnostics with fixes.
func (fr *FileResult) FixableCount() int {
	count := 0
	for _, d := range fr.Diagnostics {
		if d.HasFix() {
			count++
		}
	}
	return count
}

// Engine coordinates parsing and rule execution for checking files.
type Engine struct {
	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine over the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// CheckFile parses and checks a single file.
func (e *Engine) CheckFile(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	result := parser.Parse(string(content))

	// Resolve which rules to run.
	resolved := ResolveRules(e.Registry, cfg)

	fr := &FileResult{
		Parse:      result,
		RuleErrors: make(map[string]error),
	}

	collectFixes := cfg != nil && (cfg.Fix || cfg.DryRun)

	// Collect all edits for validation.
	var allEdits []edit.TextEdit

	// Run each rule.
	for _, rr := range resolved {
		select {
		case <-ctx.Done():
			return fr, fmt.Errorf("check cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, path, result, cfg, rr.Config, rr.Severity)

		diags, err := rr.Rule.Apply(ruleCtx)
		if err != nil {
			fr.RuleErrors[rr.Rule.ID()] = err
			continue
		}

		for i := range diags {
			// Apply resolved severity.
			diags[i].Severity = rr.Severity

			if diags[i].FilePath == "" {
				diags[i].FilePath = path
			}
			if diags[i].RuleName == "" {
				diags[i].RuleName = rr.Rule.Name()
			}

			// Collect edits if auto-fix is enabled for this rule.
			if collectFixes && rr.AutoFix && len(diags[i].FixEdits) > 0 {
				allEdits = append(allEdits, diags[i].FixEdits...)
			}
		}

		fr.Diagnostics = append(fr.Diagnostics, diags...)
	}

	sortDiagnostics(fr.Diagnostics)

	// Validate and sort edits, dropping overlapping edits instead of
	// failing the run.
	if len(allEdits) > 0 {
		if err := edit.Validate(allEdits, len(content)); err != nil {
			fr.EditConflicts = true
		} else {
			edit.Sort(allEdits)
			accepted, skipped := edit.FilterConflicts(allEdits)
			fr.Edits = accepted
			fr.SkippedEdits = skipped
			fr.EditConflicts = len(skipped) > 0
		}
	}

	return fr, nil
}

// sortDiagnostics orders diagnostics by position, then rule ID, so output
// is deterministic regardless of rule execution order.
func sortDiagnostics(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].StartLine != diags[j].StartLine {
			return diags[i].StartLine < diags[j].StartLine
		}
		if diags[i].StartColumn != diags[j].StartColumn {
			return diags[i].StartColumn < diags[j].StartColumn
		}
		return diags[i].RuleID < diags[j].RuleID
	})
}
