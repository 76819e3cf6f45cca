package reporter

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/syntree/internal/ui/pretty"
	"github.com/yaklabco/syntree/pkg/config"
	"github.com/yaklabco/syntree/pkg/runner"
)

// Table layout constants for summary output.
// Both tables use the same width for visual consistency.
const (
	tableWidth        = 90 // Width of table separators (same for both tables).
	ruleColWidth      = 30 // Width of the rule name column.
	fileColWidth      = 60 // Width of the file path column (wider for relative paths).
	numColWidth       = 7  // Width of numeric columns.
	warnColWidth      = 8  // Width of warnings column.
	fixableColWidth   = 8  // Width of fixable column.
	maxRuleNameLength = 28 // Maximum characters for rule name before truncation.
	maxFilePathLength = 58 // Maximum characters for file path before truncation.
)

// padRight pads a string to the given width with spaces on the right.
// This must be called BEFORE applying ANSI styles.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads a string to the given width with spaces on the left.
// This must be called BEFORE applying ANSI styles.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// ruleSummary aggregates diagnostics for one rule across the run.
type ruleSummary struct {
	RuleID   string
	RuleName string
	Issues   int
	Errors   int
	Warnings int
	Fixable  bool
}

// fileSummary aggregates diagnostics for one file.
type fileSummary struct {
	Path     string
	Issues   int
	Errors   int
	Warnings int
}

// SummaryReporter formats results as aggregated per-rule and per-file
// tables.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	if result == nil || result.Stats.DiagnosticsTotal == 0 {
		fmt.Fprintln(r.out, r.styles.Success.Render("No issues found"))
		return 0, nil
	}

	rules, files := aggregate(result)

	r.renderRuleTable(rules)
	fmt.Fprintln(r.out)
	r.renderFileTable(files)

	fmt.Fprintln(r.out)
	r.renderTotals(result.Stats)

	return result.Stats.DiagnosticsTotal, nil
}

// aggregate groups diagnostics by rule and by file, ordered by issue
// count descending with ID/path as tiebreak.
func aggregate(result *runner.Result) ([]ruleSummary, []fileSummary) {
	byRule := make(map[string]*ruleSummary)
	byFile := make(map[string]*fileSummary)

	for _, file := range result.Files {
		if file.Result == nil || file.Result.FileResult == nil {
			continue
		}

		for _, diag := range file.Result.Diagnostics {
			rs := byRule[diag.RuleID]
			if rs == nil {
				rs = &ruleSummary{RuleID: diag.RuleID, RuleName: diag.RuleName}
				byRule[diag.RuleID] = rs
			}
			fs := byFile[file.Path]
			if fs == nil {
				fs = &fileSummary{Path: file.Path}
				byFile[file.Path] = fs
			}

			rs.Issues++
			fs.Issues++
			switch diag.Severity {
			case config.SeverityError:
				rs.Errors++
				fs.Errors++
			case config.SeverityWarning:
				rs.Warnings++
				fs.Warnings++
			}
			if diag.HasFix() {
				rs.Fixable = true
			}
		}
	}

	rules := make([]ruleSummary, 0, len(byRule))
	for _, rs := range byRule {
		rules = append(rules, *rs)
	}
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Issues != rules[j].Issues {
			return rules[i].Issues > rules[j].Issues
		}
		return rules[i].RuleID < rules[j].RuleID
	})

	files := make([]fileSummary, 0, len(byFile))
	for _, fs := range byFile {
		files = append(files, *fs)
	}
	sort.Slice(files, func(i, j int) bool {
		if files[i].Issues != files[j].Issues {
			return files[i].Issues > files[j].Issues
		}
		return files[i].Path < files[j].Path
	})

	return rules, files
}

func (r *SummaryReporter) renderRuleTable(rules []ruleSummary) {
	if len(rules) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Rules Summary"))
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	// Header - pad first, then style
	fmt.Fprintf(r.out, "%s %s %s %s %s\n",
		r.styles.TableHeader.Render(padRight("Rule", ruleColWidth)),
		r.styles.TableHeader.Render(padLeft("Count", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Errors", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Warnings", warnColWidth)),
		r.styles.TableHeader.Render(padLeft("Fixable", fixableColWidth)),
	)
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	for _, rule := range rules {
		ruleName := rule.RuleName
		if ruleName == "" {
			ruleName = rule.RuleID
		}
		if len(ruleName) > maxRuleNameLength {
			ruleName = ruleName[:maxRuleNameLength] + "…"
		}

		// Pad first, then style
		paddedName := padRight(ruleName, ruleColWidth)
		var styledName string
		switch {
		case rule.Errors > 0:
			styledName = r.styles.TableErrorRow.Render(paddedName)
		case rule.Warnings > 0:
			styledName = r.styles.TableWarnRow.Render(paddedName)
		default:
			styledName = paddedName
		}

		fixable := padLeft("", fixableColWidth)
		if rule.Fixable {
			fixable = r.styles.Success.Render(padLeft("✓", fixableColWidth))
		}

		fmt.Fprintf(r.out, "%s %s %s %s %s\n",
			styledName,
			padLeft(strconv.Itoa(rule.Issues), numColWidth),
			padLeft(strconv.Itoa(rule.Errors), numColWidth),
			padLeft(strconv.Itoa(rule.Warnings), warnColWidth),
			fixable,
		)
	}
}

func (r *SummaryReporter) renderFileTable(files []fileSummary) {
	if len(files) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Files Summary"))
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	fmt.Fprintf(r.out, "%s %s %s %s\n",
		r.styles.TableHeader.Render(padRight("File", fileColWidth)),
		r.styles.TableHeader.Render(padLeft("Count", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Errors", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Warnings", warnColWidth)),
	)
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	for _, file := range files {
		path := file.Path
		if len(path) > maxFilePathLength {
			path = "…" + path[len(path)-(maxFilePathLength-1):]
		}

		paddedPath := padRight(path, fileColWidth)
		var styledPath string
		switch {
		case file.Errors > 0:
			styledPath = r.styles.TableErrorRow.Render(paddedPath)
		case file.Warnings > 0:
			styledPath = r.styles.TableWarnRow.Render(paddedPath)
		default:
			styledPath = paddedPath
		}

		fmt.Fprintf(r.out, "%s %s %s %s\n",
			styledPath,
			padLeft(strconv.Itoa(file.Issues), numColWidth),
			padLeft(strconv.Itoa(file.Errors), numColWidth),
			padLeft(strconv.Itoa(file.Warnings), warnColWidth),
		)
	}
}

func (r *SummaryReporter) renderTotals(stats runner.Stats) {
	parts := make([]string, 0, 2)

	issueWord := "issues"
	if stats.DiagnosticsTotal == 1 {
		issueWord = "issue"
	}
	parts = append(parts, fmt.Sprintf("%d %s", stats.DiagnosticsTotal, issueWord))

	var severityParts []string
	if errors := stats.DiagnosticsBySeverity["error"]; errors > 0 {
		severityParts = append(severityParts, r.styles.Error.Render(fmt.Sprintf("%d errors", errors)))
	}
	if warnings := stats.DiagnosticsBySeverity["warning"]; warnings > 0 {
		severityParts = append(severityParts, r.styles.Warning.Render(fmt.Sprintf("%d warnings", warnings)))
	}
	if len(severityParts) > 0 {
		parts[0] = fmt.Sprintf("%d %s (%s)", stats.DiagnosticsTotal, issueWord, strings.Join(severityParts, ", "))
	}

	fileWord := "files"
	if stats.FilesWithIssues == 1 {
		fileWord = "file"
	}
	parts = append(parts, fmt.Sprintf("in %d %s", stats.FilesWithIssues, fileWord))

	fmt.Fprintln(r.out, r.styles.Bold.Render("Total: ")+strings.Join(parts, " "))
}
