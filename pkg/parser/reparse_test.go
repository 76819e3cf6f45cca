package parser_test

import (
	"testing"

	"github.com/yaklabco/syntree/pkg/edit"
	"github.com/yaklabco/syntree/pkg/parser"
	"github.com/yaklabco/syntree/pkg/syntax"
)

// treesEqual compares two green trees structurally: same kinds, same
// texts, same shape.
func treesEqual(a, b *syntax.GreenNode) bool {
	if a.Kind() != b.Kind() || a.NumChildren() != b.NumChildren() {
		return false
	}
	for i := range a.NumChildren() {
		ac, bc := a.Child(i), b.Child(i)
		switch at := ac.(type) {
		case *syntax.GreenToken:
			bt, ok := bc.(*syntax.GreenToken)
			if !ok || at.Kind() != bt.Kind() || at.Text() != bt.Text() {
				return false
			}
		case *syntax.GreenNode:
			bn, ok := bc.(*syntax.GreenNode)
			if !ok || !treesEqual(at, bn) {
				return false
			}
		}
	}
	return true
}

func TestReparseZeroEditsReusesTree(t *testing.T) {
	t.Parallel()

	const source = "let x = 1 + 2;"
	old := parser.Parse(source)

	got, err := parser.Reparse(old, nil, source)
	if err != nil {
		t.Fatalf("Reparse: %v", err)
	}

	// Zero edits: the immutable green root is shared, not rebuilt.
	if got.Green != old.Green {
		t.Error("zero-edit reparse did not reuse the old green root")
	}
	if !treesEqual(got.Green, parser.Parse(source).Green) {
		t.Error("reused tree differs from a fresh parse")
	}
}

func TestReparseMatchesFullParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		source  string
		edits   []edit.TextEdit
		newText string
	}{
		{
			name:    "replace literal",
			source:  "let x = 1;",
			edits:   []edit.TextEdit{{StartOffset: 8, EndOffset: 9, NewText: "2 * 3"}},
			newText: "let x = 2 * 3;",
		},
		{
			name:    "insert statement",
			source:  "let a = 1;",
			edits:   []edit.TextEdit{{StartOffset: 10, EndOffset: 10, NewText: "\nlet b = 2;"}},
			newText: "let a = 1;\nlet b = 2;",
		},
		{
			name:    "delete to malformed",
			source:  "(1 + 2)",
			edits:   []edit.TextEdit{{StartOffset: 6, EndOffset: 7, NewText: ""}},
			newText: "(1 + 2",
		},
		{
			name:    "edit inside comment",
			source:  "x; // old\n",
			edits:   []edit.TextEdit{{StartOffset: 6, EndOffset: 9, NewText: "new"}},
			newText: "x; // new\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			old := parser.Parse(tt.source)
			got, err := parser.Reparse(old, tt.edits, tt.newText)
			if err != nil {
				t.Fatalf("Reparse: %v", err)
			}

			fresh := parser.Parse(tt.newText)
			if !treesEqual(got.Green, fresh.Green) {
				t.Error("reparse tree differs from fresh parse")
			}
			if got.Text() != tt.newText {
				t.Errorf("reparse text = %q, want %q", got.Text(), tt.newText)
			}
			if len(got.Errors) != len(fresh.Errors) {
				t.Errorf("reparse errors = %d, fresh parse errors = %d",
					len(got.Errors), len(fresh.Errors))
			}
		})
	}
}

func TestReparseRejectsMismatchedEdits(t *testing.T) {
	t.Parallel()

	old := parser.Parse("let x = 1;")

	// Edits that do not produce the claimed new text are rejected.
	_, err := parser.Reparse(old,
		[]edit.TextEdit{{StartOffset: 8, EndOffset: 9, NewText: "2"}},
		"something else entirely")
	if err == nil {
		t.Error("mismatched edits accepted")
	}

	// Out-of-range edits are rejected.
	_, err = parser.Reparse(old,
		[]edit.TextEdit{{StartOffset: 0, EndOffset: 99, NewText: ""}},
		"")
	if err == nil {
		t.Error("out-of-range edit accepted")
	}
}

func TestReparseNilOldTree(t *testing.T) {
	t.Parallel()

	got, err := parser.Reparse(nil, nil, "let x = 1;")
	if err != nil {
		t.Fatalf("Reparse: %v", err)
	}
	if got.Text() != "let x = 1;" {
		t.Errorf("text = %q", got.Text())
	}
}

func TestReparseOldTreeStillReadable(t *testing.T) {
	t.Parallel()

	const source = "let x = 1;"
	old := parser.Parse(source)
	oldRoot := old.Root()

	_, err := parser.Reparse(old,
		[]edit.TextEdit{{StartOffset: 8, EndOffset: 9, NewText: "9"}},
		"let x = 9;")
	if err != nil {
		t.Fatalf("Reparse: %v", err)
	}

	// The old tree is immutable; cursors over it keep working.
	if got := oldRoot.Text(); got != source {
		t.Errorf("old tree text after reparse = %q, want %q", got, source)
	}
}
