package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/syntree/pkg/analysis"
	"github.com/yaklabco/syntree/pkg/config"
	"github.com/yaklabco/syntree/pkg/runner"
)

// Table formatting constants.
const (
	fixableSymbol    = "+"
	columnGap        = 2
	sevColumnWidth   = 3 // "SEV" header, single-letter values
	fixColumnWidth   = 3
	minFileWidth     = 20
	minLocWidth      = 10
	minMessageWidth  = 35
	minRuleWidth     = 8
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
)

// TableRow represents a single row in the diagnostic table.
type TableRow struct {
	File     string
	Location string
	Message  string
	RuleID   string
	Severity config.Severity
	Fixable  bool
}

func rowFromDiagnostic(path string, diag analysis.Diagnostic) TableRow {
	return TableRow{
		File:     path,
		Location: fmt.Sprintf("%d:%d", diag.StartLine, diag.StartColumn),
		Message:  diag.Message,
		RuleID:   diag.RuleID,
		Severity: diag.Severity,
		Fixable:  diag.HasFix(),
	}
}

// TableFormatter formats diagnostics as a styled table.
type TableFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, colorEnabled bool, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:       styles,
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
	}
}

// tableLayout holds resolved column widths. A zero file width means the
// FILE column is omitted; per-file tables show the path in a header line
// above the table instead.
type tableLayout struct {
	file    int
	loc     int
	message int
	rule    int
}

func (l tableLayout) columns() int {
	cols := 5 // LOC, SEV, MESSAGE, RULE, FIX
	if l.file > 0 {
		cols++
	}
	return cols
}

func (l tableLayout) total() int {
	return l.file + l.loc + sevColumnWidth + l.message + l.rule +
		fixColumnWidth + columnGap*l.columns()
}

// layoutFor sizes columns to fit the rows, then squeezes the message
// column first and the file column second when the terminal is narrower.
func (t *TableFormatter) layoutFor(rows []TableRow, withFile bool) tableLayout {
	layout := tableLayout{loc: minLocWidth, message: minMessageWidth, rule: minRuleWidth}
	if withFile {
		layout.file = minFileWidth
	}

	for _, row := range rows {
		if withFile {
			layout.file = max(layout.file, len(row.File))
		}
		layout.loc = max(layout.loc, len(row.Location))
		layout.message = max(layout.message, len(row.Message))
		layout.rule = max(layout.rule, len(row.RuleID))
	}

	if excess := layout.total() - t.termWidth; excess > 0 {
		layout.message = max(minMessageWidth, layout.message-excess)
	}
	if withFile {
		if excess := layout.total() - t.termWidth; excess > 0 {
			layout.file = max(minFileWidth, layout.file-excess)
		}
	}

	return layout
}

// FormatTable formats runner results as a single table with a FILE column,
// one row group per file.
func (t *TableFormatter) FormatTable(result *runner.Result) string {
	if result == nil {
		return ""
	}

	groups := collectRowGroups(result)
	if len(groups) == 0 {
		return ""
	}

	var all []TableRow
	for _, group := range groups {
		all = append(all, group...)
	}
	layout := t.layoutFor(all, true)

	var builder strings.Builder
	builder.WriteString(t.renderHeader(layout))
	builder.WriteString("\n")
	builder.WriteString(t.renderSeparator(layout, heavySeparator))
	builder.WriteString("\n")

	for i, group := range groups {
		if i > 0 {
			builder.WriteString(t.renderSeparator(layout, lightSeparator))
			builder.WriteString("\n")
		}
		for _, row := range group {
			builder.WriteString(t.renderRow(row, layout))
			builder.WriteString("\n")
		}
	}

	builder.WriteString(t.renderSeparator(layout, heavySeparator))
	builder.WriteString("\n")
	builder.WriteString(t.renderLegend())
	builder.WriteString("\n")

	return builder.String()
}

// FormatFileTable formats a single file's diagnostics as a standalone
// table without a FILE column.
func (t *TableFormatter) FormatFileTable(file runner.FileOutcome) string {
	if file.Result == nil || file.Result.FileResult == nil {
		return ""
	}

	diagnostics := file.Result.Diagnostics
	if len(diagnostics) == 0 {
		return ""
	}

	rows := make([]TableRow, 0, len(diagnostics))
	for _, diag := range diagnostics {
		rows = append(rows, rowFromDiagnostic(file.Path, diag))
	}
	layout := t.layoutFor(rows, false)

	var builder strings.Builder
	builder.WriteString(t.renderHeader(layout))
	builder.WriteString("\n")
	builder.WriteString(t.renderSeparator(layout, heavySeparator))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.renderRow(row, layout))
		builder.WriteString("\n")
	}

	builder.WriteString(t.renderSeparator(layout, heavySeparator))
	builder.WriteString("\n")
	builder.WriteString(t.renderFileSummary(rows))
	builder.WriteString("\n")

	return builder.String()
}

// collectRowGroups collects diagnostic rows grouped by file, in the
// path-ordered sequence the runner assembled.
func collectRowGroups(result *runner.Result) [][]TableRow {
	var groups [][]TableRow

	for _, file := range result.Files {
		if file.Result == nil || file.Result.FileResult == nil {
			continue
		}
		diagnostics := file.Result.Diagnostics
		if len(diagnostics) == 0 {
			continue
		}

		rows := make([]TableRow, 0, len(diagnostics))
		for _, diag := range diagnostics {
			rows = append(rows, rowFromDiagnostic(file.Path, diag))
		}
		groups = append(groups, rows)
	}

	return groups
}

func (t *TableFormatter) renderHeader(layout tableLayout) string {
	var sb strings.Builder
	sb.WriteString(" ")
	if layout.file > 0 {
		fmt.Fprintf(&sb, "%-*s  ", layout.file, "FILE")
	}
	fmt.Fprintf(&sb, "%-*s  %-*s  %-*s  %-*s   ",
		layout.loc, "LOC",
		sevColumnWidth, "SEV",
		layout.message, "MESSAGE",
		layout.rule, "RULE",
	)
	return t.styles.TableHeader.Render(sb.String())
}

func (t *TableFormatter) renderSeparator(layout tableLayout, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, layout.total()))
}

// renderRow formats one row with severity-based styling. The fixable
// marker is appended after styling so its own color survives.
func (t *TableFormatter) renderRow(row TableRow, layout tableLayout) string {
	var sb strings.Builder
	sb.WriteString(" ")
	if layout.file > 0 {
		// File paths truncate from the front so the filename stays visible.
		fmt.Fprintf(&sb, "%-*s  ", layout.file, truncateFilePath(row.File, layout.file))
	}
	fmt.Fprintf(&sb, "%-*s  %-*s  %-*s  %-*s  ",
		layout.loc, truncateString(row.Location, layout.loc),
		sevColumnWidth, severityCode(row.Severity),
		layout.message, truncateString(row.Message, layout.message),
		layout.rule, truncateString(row.RuleID, layout.rule),
	)

	rendered := t.rowStyle(row.Severity).Render(sb.String())
	if row.Fixable {
		return rendered + t.styles.TableFixable.Render(fixableSymbol)
	}
	return rendered + " "
}

// renderFileSummary formats per-severity counts for a single file.
func (t *TableFormatter) renderFileSummary(rows []TableRow) string {
	var errors, warnings, infos, fixable int
	for _, row := range rows {
		switch row.Severity {
		case config.SeverityError:
			errors++
		case config.SeverityWarning:
			warnings++
		case config.SeverityInfo:
			infos++
		}
		if row.Fixable {
			fixable++
		}
	}

	var parts []string
	if errors > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d errors", errors)))
	}
	if warnings > 0 {
		parts = append(parts, t.styles.Warning.Render(fmt.Sprintf("%d warnings", warnings)))
	}
	if infos > 0 {
		parts = append(parts, t.styles.Info.Render(fmt.Sprintf("%d info", infos)))
	}
	if fixable > 0 {
		parts = append(parts, t.styles.TableFixable.Render(fmt.Sprintf("%d fixable", fixable)))
	}

	return " " + strings.Join(parts, " | ")
}

func (t *TableFormatter) renderLegend() string {
	return t.styles.TableLegend.Render(fmt.Sprintf(
		" Legend: E = error | W = warning | I = info | %s = fixable", fixableSymbol,
	))
}

// FormatTableSummary formats the trailing totals line for table output.
func (t *TableFormatter) FormatTableSummary(stats runner.Stats, duration string) string {
	parts := []string{fmt.Sprintf("%d files checked", stats.FilesProcessed)}

	severities := []struct {
		key   string
		noun  string
		style lipgloss.Style
	}{
		{"error", "errors", t.styles.Error},
		{"warning", "warnings", t.styles.Warning},
		{"info", "info", t.styles.Info},
	}
	for _, sev := range severities {
		if count := stats.DiagnosticsBySeverity[sev.key]; count > 0 {
			parts = append(parts, sev.style.Render(fmt.Sprintf("%d %s", count, sev.noun)))
		}
	}

	if stats.DiagnosticsFixable > 0 {
		parts = append(parts, t.styles.TableFixable.Render(
			fmt.Sprintf("%d fixable", stats.DiagnosticsFixable)))
	}
	if duration != "" {
		parts = append(parts, t.styles.Dim.Render(duration))
	}

	return " " + strings.Join(parts, " | ")
}

// rowStyle returns the row style for a severity level.
func (t *TableFormatter) rowStyle(severity config.Severity) lipgloss.Style {
	switch severity {
	case config.SeverityError:
		return t.styles.TableErrorRow
	case config.SeverityWarning:
		return t.styles.TableWarnRow
	case config.SeverityInfo:
		return t.styles.TableInfoRow
	default:
		return lipgloss.NewStyle()
	}
}

// severityCode returns the single-letter severity marker used in the
// SEV column and explained by the legend.
func severityCode(severity config.Severity) string {
	switch severity {
	case config.SeverityError:
		return "E"
	case config.SeverityWarning:
		return "W"
	case config.SeverityInfo:
		return "I"
	default:
		return "?"
	}
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}

// truncateFilePath truncates a path keeping the end so the filename
// stays visible.
func truncateFilePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return path[len(path)-maxLen:]
	}
	return "..." + path[len(path)-maxLen+3:]
}
