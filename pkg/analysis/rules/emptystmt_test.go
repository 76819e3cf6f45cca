package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyStatementRule(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDiags int
		wantFix   string
	}{
		{
			name:      "clean file",
			input:     "let x = 1;\n",
			wantDiags: 0,
		},
		{
			name:      "stray semicolon after statement",
			input:     "let x = 1;;\n",
			wantDiags: 1,
			wantFix:   "let x = 1;\n",
		},
		{
			name:      "stray semicolon alone on a line",
			input:     "let x = 1;\n;\n",
			wantDiags: 1,
			wantFix:   "let x = 1;\n\n",
		},
		{
			name:      "multiple stray semicolons",
			input:     ";;let x = 1;\n",
			wantDiags: 2,
			wantFix:   "let x = 1;\n",
		},
		{
			name:      "stray semicolon inside a block",
			input:     "if x { ; }\n",
			wantDiags: 1,
			wantFix:   "if x {  }\n",
		},
		{
			name:      "recovered garbage is not an empty statement",
			input:     "let x = 1; @ #\n",
			wantDiags: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := NewEmptyStatementRule()
			diags := applyRule(t, rule, tt.input, nil)
			assert.Len(t, diags, tt.wantDiags)

			if tt.wantDiags > 0 {
				assert.Equal(t, tt.wantFix, applyFixes(t, tt.input, diags))
			}
		})
	}
}
