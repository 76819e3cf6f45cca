package pretty_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/syntree/internal/ui/pretty"
)

// styleFields enumerates every style on Styles so coverage keeps up
// when fields are added.
func styleFields(s *pretty.Styles) map[string]lipgloss.Style {
	return map[string]lipgloss.Style{
		"Error":          s.Error,
		"Warning":        s.Warning,
		"Info":           s.Info,
		"FilePath":       s.FilePath,
		"Location":       s.Location,
		"RuleID":         s.RuleID,
		"Message":        s.Message,
		"Suggestion":     s.Suggestion,
		"SourceLine":     s.SourceLine,
		"Caret":          s.Caret,
		"DiffHeader":     s.DiffHeader,
		"DiffHunk":       s.DiffHunk,
		"DiffAdd":        s.DiffAdd,
		"DiffRemove":     s.DiffRemove,
		"DiffContext":    s.DiffContext,
		"SummaryTitle":   s.SummaryTitle,
		"SummaryValue":   s.SummaryValue,
		"Success":        s.Success,
		"Failure":        s.Failure,
		"TableHeader":    s.TableHeader,
		"TableBorder":    s.TableBorder,
		"TableErrorRow":  s.TableErrorRow,
		"TableWarnRow":   s.TableWarnRow,
		"TableInfoRow":   s.TableInfoRow,
		"TableFixable":   s.TableFixable,
		"TableLegend":    s.TableLegend,
		"TableSeparator": s.TableSeparator,
		"TreeNode":       s.TreeNode,
		"TreeToken":      s.TreeToken,
		"TreeRange":      s.TreeRange,
		"TreeText":       s.TreeText,
		"Dim":            s.Dim,
		"Bold":           s.Bold,
	}
}

func TestNewStyles_AllFieldsRender(t *testing.T) {
	styles := pretty.NewStyles(true)
	require.NotNil(t, styles)

	for name, style := range styleFields(styles) {
		rendered := style.Render("x")
		assert.Contains(t, rendered, "x", "style %s must preserve content", name)
	}
}

func TestNewStyles_NoColorIsPassthrough(t *testing.T) {
	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	// With color disabled every style must return the text unchanged, so
	// tree dumps and tables stay byte-stable when piped.
	for name, style := range styleFields(styles) {
		assert.Equal(t, "sample", style.Render("sample"),
			"no-color style %s must not add formatting", name)
	}
}

func TestIsColorEnabled_ExplicitModes(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, pretty.IsColorEnabled("always", &buf), "always wins even for non-TTY writers")
	assert.False(t, pretty.IsColorEnabled("never", os.Stdout))
}

func TestIsColorEnabled_AutoNonTTY(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("auto", &buf), "a bytes.Buffer is not a TTY")
}

func TestIsColorEnabled_NoColorEnvWins(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, pretty.IsColorEnabled("auto", os.Stdout))
}

func TestIsColorEnabled_UnknownModeBehavesLikeAuto(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("", &buf))
	assert.False(t, pretty.IsColorEnabled("bogus", &buf))
}
