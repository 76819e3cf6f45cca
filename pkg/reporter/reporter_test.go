package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/syntree/pkg/analysis"
	"github.com/yaklabco/syntree/pkg/config"
	"github.com/yaklabco/syntree/pkg/edit"
	"github.com/yaklabco/syntree/pkg/parser"
	"github.com/yaklabco/syntree/pkg/reporter"
	"github.com/yaklabco/syntree/pkg/runner"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "diff", input: "diff", want: reporter.FormatDiff},
		{name: "summary", input: "summary", want: reporter.FormatSummary},
		{name: "unknown format", input: "xml", wantErr: true},
		{name: "sarif", input: "sarif", want: reporter.FormatSARIF},
		{name: "case insensitive", input: "JSON", want: reporter.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	tests := []struct {
		format reporter.Format
		want   bool
	}{
		{reporter.FormatText, true},
		{reporter.FormatJSON, true},
		{reporter.FormatSARIF, true},
		{reporter.FormatDiff, true},
		{reporter.FormatSummary, true},
		{reporter.Format("unknown"), false},
		{reporter.Format(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.IsValid())
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		format  reporter.Format
		wantErr bool
	}{
		{name: "text reporter", format: reporter.FormatText},
		{name: "json reporter", format: reporter.FormatJSON},
		{name: "sarif reporter", format: reporter.FormatSARIF},
		{name: "diff reporter", format: reporter.FormatDiff},
		{name: "table reporter", format: reporter.FormatTable},
		{name: "summary reporter", format: reporter.FormatSummary},
		{name: "empty defaults to text", format: ""},
		{name: "unknown format", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := reporter.Options{
				Writer: &buf,
				Format: tt.format,
				Color:  "never",
			}

			rep, err := reporter.New(opts)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, rep)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, rep)
		})
	}
}

func TestTextReporter_NilResult(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
	})

	count, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Contains(t, buf.String(), "No files to check")
}

func TestTextReporter_EmptyResult(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
	})

	result := &runner.Result{
		Files: []runner.FileOutcome{},
		Stats: runner.Stats{
			DiagnosticsBySeverity: make(map[string]int),
		},
	}

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestTextReporter_WithDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
		ShowContext: false,
		GroupByFile: true,
	})

	result := createTestResult()

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	output := buf.String()
	assert.Contains(t, output, "test.sy")
	assert.Contains(t, output, "SY002")
	assert.Contains(t, output, "error")
	assert.Contains(t, output, "2 issues") // One-line summary format
}

func TestTextReporter_SourceContext(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowContext: true,
		GroupByFile: true,
	})

	source := "let x = 1;\nif x { }\n"
	result := &runner.Result{
		Files: []runner.FileOutcome{{
			Path: "test.sy",
			Result: &analysis.PipelineResult{
				FileResult: &analysis.FileResult{
					Parse: parser.Parse(source),
					Diagnostics: []analysis.Diagnostic{{
						RuleID:      "SY002",
						RuleName:    "no-empty-block",
						Message:     "Empty block",
						Severity:    config.SeverityWarning,
						FilePath:    "test.sy",
						StartLine:   2,
						StartColumn: 6,
					}},
				},
			},
		}},
		Stats: runner.Stats{
			FilesProcessed:        1,
			FilesWithIssues:       1,
			DiagnosticsTotal:      1,
			DiagnosticsBySeverity: map[string]int{"warning": 1},
		},
	}

	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "if x { }") // Line from the parsed source
	assert.Contains(t, output, "^")
}

func TestJSONReporter_NilResult(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{
		Writer: &buf,
		Color:  "never",
	})

	count, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Should still produce valid JSON
	var output reporter.JSONOutput
	err = json.Unmarshal(buf.Bytes(), &output)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", output.Version)
	assert.Empty(t, output.Files)
}

func TestJSONReporter_WithDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{
		Writer: &buf,
		Color:  "never",
	})

	result := createTestResult()

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var output reporter.JSONOutput
	err = json.Unmarshal(buf.Bytes(), &output)
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", output.Version)
	assert.Len(t, output.Files, 1)
	assert.Len(t, output.Files[0].Diagnostics, 2)
	assert.Equal(t, 2, output.Summary.TotalIssues)
	assert.Equal(t, 1, output.Summary.FilesWithIssues)
}

func TestJSONReporter_Compact(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{
		Writer:  &buf,
		Color:   "never",
		Compact: true,
	})

	result := createTestResult()

	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	// Compact output should be a single line
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1)
}

func TestJSONReporter_IncludesRuleName(t *testing.T) {
	var buf bytes.Buffer
	opts := reporter.DefaultOptions()
	opts.Writer = &buf
	opts.Format = reporter.FormatJSON

	rep := reporter.NewJSONReporter(opts)

	result := singleDiagnosticResult()

	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"ruleId": "SY005"`)
	assert.Contains(t, buf.String(), `"ruleName": "no-trailing-whitespace"`)
}

func TestSARIFReporter_IncludesRuleName(t *testing.T) {
	var buf bytes.Buffer
	opts := reporter.DefaultOptions()
	opts.Writer = &buf

	rep := reporter.NewSARIFReporter(opts)

	result := singleDiagnosticResult()

	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "no-trailing-whitespace")
	assert.Contains(t, output, "SY005")
	assert.Contains(t, output, `"name": "syntree"`)
	assert.Contains(t, output, "2.1.0")
}

func TestSARIFReporter_CarriesFixReplacements(t *testing.T) {
	var buf bytes.Buffer
	opts := reporter.DefaultOptions()
	opts.Writer = &buf

	rep := reporter.NewSARIFReporter(opts)

	result := singleDiagnosticResult()
	diag := &result.Files[0].Result.FileResult.Diagnostics[0]
	diag.Suggestion = "Remove trailing whitespace"
	diag.FixEdits = []edit.TextEdit{{StartOffset: 10, EndOffset: 12}}

	_, err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, `"charOffset": 10`)
	assert.Contains(t, output, `"charLength": 2`)
	assert.Contains(t, output, "Remove trailing whitespace")
}

func TestDiffReporter_NilResult(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewDiffReporter(reporter.Options{
		Writer: &buf,
		Color:  "never",
	})

	count, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Empty(t, buf.String())
}

func TestDiffReporter_NoDiffs(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewDiffReporter(reporter.Options{
		Writer: &buf,
		Color:  "never",
	})

	result := createTestResult()

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 0, count) // No diffs in test result
}

func TestDiffReporter_WithDiff(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewDiffReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
	})

	original := "let x = 1; \n"
	modified := "let x = 1;\n"
	result := &runner.Result{
		Files: []runner.FileOutcome{{
			Path: "dirty.sy",
			Result: &analysis.PipelineResult{
				FileResult: &analysis.FileResult{},
				Diff:       edit.GenerateDiff("dirty.sy", original, modified),
			},
		}},
		Stats: runner.Stats{DiagnosticsBySeverity: map[string]int{}},
	}

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	output := buf.String()
	assert.Contains(t, output, "diff --git a/dirty.sy b/dirty.sy")
	assert.Contains(t, output, "-let x = 1; ")
	assert.Contains(t, output, "+let x = 1;")
	assert.Contains(t, output, "1 file changed")
}

func TestTableReporter_NoIssues(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTableReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
	})

	result := &runner.Result{
		Files: []runner.FileOutcome{{Path: "clean.sy", Result: &analysis.PipelineResult{
			FileResult: &analysis.FileResult{},
		}}},
		Stats: runner.Stats{
			FilesProcessed:        1,
			DiagnosticsBySeverity: map[string]int{},
		},
	}

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Contains(t, buf.String(), "All files passed!")
}

func TestTableReporter_WithIssues(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTableReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
	})

	result := createTestResult()

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	output := buf.String()
	assert.Contains(t, output, "FILE")
	assert.Contains(t, output, "RULE")
	assert.Contains(t, output, "test.sy")
	assert.Contains(t, output, "SY002")
}

func TestDefaultOptions(t *testing.T) {
	opts := reporter.DefaultOptions()

	assert.NotNil(t, opts.Writer)
	assert.NotNil(t, opts.ErrorWriter)
	assert.Equal(t, reporter.FormatText, opts.Format)
	assert.Equal(t, "auto", opts.Color)
	assert.True(t, opts.ShowContext)
	assert.True(t, opts.ShowSummary)
	assert.True(t, opts.GroupByFile)
	assert.False(t, opts.Compact)
}

// singleDiagnosticResult builds a result with one fixable diagnostic.
func singleDiagnosticResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{{
			Path: "test.sy",
			Result: &analysis.PipelineResult{
				FileResult: &analysis.FileResult{
					Diagnostics: []analysis.Diagnostic{{
						RuleID:    "SY005",
						RuleName:  "no-trailing-whitespace",
						Message:   "Trailing whitespace",
						Severity:  config.SeverityWarning,
						FilePath:  "test.sy",
						StartLine: 1,
					}},
				},
			},
		}},
		Stats: runner.Stats{
			FilesProcessed:        1,
			FilesWithIssues:       1,
			DiagnosticsTotal:      1,
			DiagnosticsBySeverity: map[string]int{"warning": 1},
		},
	}
}

// createTestResult creates a test runner.Result with sample diagnostics.
func createTestResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "test.sy",
				Result: &analysis.PipelineResult{
					FileResult: &analysis.FileResult{
						Diagnostics: []analysis.Diagnostic{
							{
								RuleID:      "SY002",
								RuleName:    "no-empty-block",
								Message:     "Empty block",
								Severity:    config.SeverityError,
								FilePath:    "test.sy",
								StartLine:   5,
								StartColumn: 1,
								EndLine:     5,
								EndColumn:   15,
								Suggestion:  "Remove the block or add statements",
							},
							{
								RuleID:      "SY005",
								RuleName:    "no-trailing-whitespace",
								Message:     "Trailing whitespace",
								Severity:    config.SeverityWarning,
								FilePath:    "test.sy",
								StartLine:   10,
								StartColumn: 1,
								EndLine:     10,
								EndColumn:   5,
							},
						},
					},
				},
			},
		},
		Stats: runner.Stats{
			FilesDiscovered:       1,
			FilesProcessed:        1,
			FilesWithIssues:       1,
			DiagnosticsTotal:      2,
			DiagnosticsBySeverity: map[string]int{"error": 1, "warning": 1},
		},
	}
}
