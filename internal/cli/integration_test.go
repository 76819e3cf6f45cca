package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/syntree/internal/cli"
)

// testSourceWithTrailingWS has trailing whitespace on line 1, which
// triggers SY005/no-trailing-whitespace.
const testSourceWithTrailingWS = "let x = 1; \n\nlet y = 2;\n"

// minimalConfig shadows any project config an up-tree search might find.
const minimalConfig = "severity_default: warning\n"

func testBuildInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}
}

func writeTestFiles(t *testing.T, source string) (srcFile, cfgFile string) {
	t.Helper()

	tmpDir := t.TempDir()
	srcFile = filepath.Join(tmpDir, "test.sy")
	require.NoError(t, os.WriteFile(srcFile, []byte(source), 0644))

	cfgFile = filepath.Join(tmpDir, ".syntree.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(minimalConfig), 0644))

	return srcFile, cfgFile
}

// TestIntegration_CheckFindsTrailingWhitespace runs a full check and
// verifies the diagnostic surfaces in text output.
func TestIntegration_CheckFindsTrailingWhitespace(t *testing.T) {
	t.Parallel()

	srcFile, cfgFile := writeTestFiles(t, testSourceWithTrailingWS)

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"check",
		"--config", cfgFile,
		"--no-context",
		"--color", "never",
		srcFile,
	})

	_ = cmd.Execute() //nolint:errcheck // Warnings alone exit clean; we only inspect output

	output := stdout.String() + stderr.String()
	assert.Contains(t, output, "SY005", "trailing whitespace diagnostic should appear")
	assert.Contains(t, output, "test.sy")
}

// TestIntegration_ConfigWithRuleNames tests that config files can use rule names.
func TestIntegration_ConfigWithRuleNames(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	srcFile := filepath.Join(tmpDir, "test.sy")
	require.NoError(t, os.WriteFile(srcFile, []byte(testSourceWithTrailingWS), 0644))

	configContent := `
rules:
  no-trailing-whitespace:
    enabled: false
`
	cfgFile := filepath.Join(tmpDir, ".syntree.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(configContent), 0644))

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"check",
		"--config", cfgFile,
		"--no-context",
		"--color", "never",
		srcFile,
	})

	err := cmd.Execute()
	require.NoError(t, err, "disabled rule should leave the file clean")

	output := stdout.String() + stderr.String()
	assert.NotContains(t, output, "no-trailing-whitespace",
		"disabled rule should not appear in output")
	assert.NotContains(t, output, "SY005",
		"disabled rule should not appear in output")
}

// TestIntegration_ConfigWithRuleID tests that config files still work with rule IDs.
func TestIntegration_ConfigWithRuleID(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	srcFile := filepath.Join(tmpDir, "test.sy")
	require.NoError(t, os.WriteFile(srcFile, []byte(testSourceWithTrailingWS), 0644))

	configContent := `
rules:
  SY005:
    enabled: false
`
	cfgFile := filepath.Join(tmpDir, ".syntree.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(configContent), 0644))

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"check",
		"--config", cfgFile,
		"--no-context",
		"--color", "never",
		srcFile,
	})

	_ = cmd.Execute() //nolint:errcheck // Ignore error - only output matters here

	output := stdout.String() + stderr.String()
	assert.NotContains(t, output, "no-trailing-whitespace",
		"disabled rule should not appear in output")
	assert.NotContains(t, output, "SY005",
		"disabled rule should not appear in output")
}

// TestIntegration_DisableFlag tests the --disable flag.
func TestIntegration_DisableFlag(t *testing.T) {
	t.Parallel()

	srcFile, cfgFile := writeTestFiles(t, testSourceWithTrailingWS)

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"check",
		"--config", cfgFile,
		"--disable", "SY005",
		"--no-context",
		"--color", "never",
		srcFile,
	})

	_ = cmd.Execute() //nolint:errcheck // Ignore error - only output matters here

	output := stdout.String() + stderr.String()
	assert.NotContains(t, output, "no-trailing-whitespace",
		"disabled rule should not appear in output")
	assert.NotContains(t, output, "SY005",
		"disabled rule should not appear in output")
}

// TestIntegration_StrictExitCode verifies warnings fail the run under --strict.
func TestIntegration_StrictExitCode(t *testing.T) {
	t.Parallel()

	srcFile, cfgFile := writeTestFiles(t, testSourceWithTrailingWS)

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"check",
		"--config", cfgFile,
		"--strict",
		"--no-context",
		"--color", "never",
		srcFile,
	})

	err := cmd.Execute()
	require.ErrorIs(t, err, cli.ErrIssuesFound)
}

// TestIntegration_JSONOutputIncludesBothIDAndName tests that JSON output includes both.
func TestIntegration_JSONOutputIncludesBothIDAndName(t *testing.T) {
	t.Parallel()

	srcFile, cfgFile := writeTestFiles(t, testSourceWithTrailingWS)

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"check",
		"--config", cfgFile,
		"--format", "json",
		"--color", "never",
		srcFile,
	})

	_ = cmd.Execute() //nolint:errcheck // Ignore error - only output matters here

	output := stdout.String()
	assert.Contains(t, output, `"ruleId"`,
		"JSON output should include ruleId field")
	assert.Contains(t, output, `"ruleName"`,
		"JSON output should include ruleName field")
	assert.Contains(t, output, `"SY005"`,
		"JSON output should include the rule ID value")
	assert.Contains(t, output, `"no-trailing-whitespace"`,
		"JSON output should include the rule name value")
}

// TestIntegration_SummaryFormat tests that --format summary produces expected output.
func TestIntegration_SummaryFormat(t *testing.T) {
	t.Parallel()

	srcFile, cfgFile := writeTestFiles(t, testSourceWithTrailingWS)

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"check",
		"--config", cfgFile,
		"--format", "summary",
		"--color", "never",
		srcFile,
	})

	_ = cmd.Execute() //nolint:errcheck // Ignore error - only output matters here

	output := stdout.String() + stderr.String()
	assert.Contains(t, output, "Rules Summary",
		"summary format should show Rules Summary table")
	assert.Contains(t, output, "Files Summary",
		"summary format should show Files Summary table")
	assert.Contains(t, output, "Total:",
		"summary format should show Total line")
}

// TestIntegration_SummaryFormatNoIssues tests summary output for a clean file.
func TestIntegration_SummaryFormatNoIssues(t *testing.T) {
	t.Parallel()

	srcFile, cfgFile := writeTestFiles(t, "let x = 1;\n\nlet y = x + 2;\n")

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"check",
		"--config", cfgFile,
		"--format", "summary",
		"--color", "never",
		srcFile,
	})

	err := cmd.Execute()
	require.NoError(t, err, "check should succeed with no issues")

	output := stdout.String() + stderr.String()
	assert.Contains(t, output, "No issues found",
		"summary format should report a clean run")
	assert.NotContains(t, output, "Rules Summary",
		"summary format should not show tables when there are no issues")
}

// TestIntegration_FixDryRunShowsDiffWithoutWriting verifies --fix --dry-run
// reports the repair but leaves the file untouched.
func TestIntegration_FixDryRunShowsDiffWithoutWriting(t *testing.T) {
	t.Parallel()

	srcFile, cfgFile := writeTestFiles(t, testSourceWithTrailingWS)

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"check",
		"--config", cfgFile,
		"--fix",
		"--dry-run",
		"--format", "diff",
		"--color", "never",
		srcFile,
	})

	_ = cmd.Execute() //nolint:errcheck // Ignore error - only output matters here

	output := stdout.String()
	assert.Contains(t, output, "-let x = 1; ", "diff should show the removed line")
	assert.Contains(t, output, "+let x = 1;", "diff should show the repaired line")

	after, readErr := os.ReadFile(srcFile)
	require.NoError(t, readErr)
	assert.Equal(t, testSourceWithTrailingWS, string(after),
		"dry-run must not modify the file")
}

// TestIntegration_FixRewritesFile verifies --fix repairs the file on disk.
func TestIntegration_FixRewritesFile(t *testing.T) {
	t.Parallel()

	srcFile, cfgFile := writeTestFiles(t, testSourceWithTrailingWS)

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"check",
		"--config", cfgFile,
		"--fix",
		"--no-context",
		"--color", "never",
		srcFile,
	})

	_ = cmd.Execute() //nolint:errcheck // Ignore error - only the file state matters here

	after, readErr := os.ReadFile(srcFile)
	require.NoError(t, readErr)
	assert.Equal(t, "let x = 1;\n\nlet y = 2;\n", string(after),
		"fix should strip the trailing whitespace")
}

// TestIntegration_ParseCommandDumpsTree runs the parse subcommand on a
// well-formed file.
func TestIntegration_ParseCommandDumpsTree(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	srcFile := filepath.Join(tmpDir, "main.sy")
	require.NoError(t, os.WriteFile(srcFile, []byte("let x = 1;\n"), 0644))

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"parse",
		"--color", "never",
		srcFile,
	})

	err := cmd.Execute()
	require.NoError(t, err)

	output := stdout.String()
	assert.Contains(t, output, "Root")
	assert.Contains(t, output, "LetStmt")
	assert.Contains(t, output, `"let"`)
}

// TestIntegration_ParseCommandReportsErrors verifies malformed input
// still dumps a tree but exits non-zero with located errors.
func TestIntegration_ParseCommandReportsErrors(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	srcFile := filepath.Join(tmpDir, "broken.sy")
	require.NoError(t, os.WriteFile(srcFile, []byte("let = ;\n"), 0644))

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"parse",
		"--color", "never",
		srcFile,
	})

	err := cmd.Execute()
	require.ErrorIs(t, err, cli.ErrIssuesFound)

	assert.Contains(t, stdout.String(), "Root", "a tree is dumped even for malformed input")
	assert.Contains(t, stderr.String(), "broken.sy:1:", "errors carry file and position")
}

// TestIntegration_InitCreatesConfig verifies init writes the template.
func TestIntegration_InitCreatesConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	outPath := filepath.Join(tmpDir, ".syntree.yaml")

	cmd := cli.NewRootCommand(testBuildInfo())
	cmd.SetArgs([]string{"init", "--output", outPath})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	require.NoError(t, err)

	content, readErr := os.ReadFile(outPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(content), "severity_default:")
	assert.Contains(t, string(content), "rules:")

	// Running again without --force must fail.
	cmd2 := cli.NewRootCommand(testBuildInfo())
	cmd2.SetArgs([]string{"init", "--output", outPath})
	cmd2.SetOut(&out)
	cmd2.SetErr(&out)
	require.Error(t, cmd2.Execute())
}
