package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrailingWhitespaceRule(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDiags int
		wantFix   string
	}{
		{
			name:      "clean file",
			input:     "let x = 1;\nlet y = 2;\n",
			wantDiags: 0,
		},
		{
			name:      "single trailing space",
			input:     "let x = 1; \n",
			wantDiags: 1,
			wantFix:   "let x = 1;\n",
		},
		{
			name:      "multiple trailing spaces",
			input:     "let x = 1;   \n",
			wantDiags: 1,
			wantFix:   "let x = 1;\n",
		},
		{
			name:      "trailing tab",
			input:     "let x = 1;\t\n",
			wantDiags: 1,
			wantFix:   "let x = 1;\n",
		},
		{
			name:      "mixed trailing whitespace",
			input:     "let x = 1; \t \n",
			wantDiags: 1,
			wantFix:   "let x = 1;\n",
		},
		{
			name:      "multiple lines",
			input:     "let x = 1; \nlet y = 2;  \nlet z = 3;\n",
			wantDiags: 2,
			wantFix:   "let x = 1;\nlet y = 2;\nlet z = 3;\n",
		},
		{
			name:      "trailing whitespace after comment",
			input:     "// note \nlet x = 1;\n",
			wantDiags: 1,
			wantFix:   "// note\nlet x = 1;\n",
		},
		{
			name:      "last line without newline",
			input:     "let x = 1; ",
			wantDiags: 1,
			wantFix:   "let x = 1;",
		},
		{
			name:      "empty file",
			input:     "",
			wantDiags: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := NewTrailingWhitespaceRule()
			diags := applyRule(t, rule, tt.input, nil)
			assert.Len(t, diags, tt.wantDiags)

			if tt.wantDiags > 0 {
				assert.Equal(t, tt.wantFix, applyFixes(t, tt.input, diags))
			}
		})
	}
}

func TestTrailingWhitespaceRuleMetadata(t *testing.T) {
	rule := NewTrailingWhitespaceRule()
	assert.Equal(t, "SY005", rule.ID())
	assert.Equal(t, "no-trailing-whitespace", rule.Name())
	assert.True(t, rule.CanFix())
}
