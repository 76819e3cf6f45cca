package syntax_test

import (
	"testing"

	"github.com/yaklabco/syntree/pkg/syntax"
)

func TestLineIndexLF(t *testing.T) {
	t.Parallel()

	idx := syntax.NewLineIndex("let a = 1;\nlet b = 2;\n")

	if got := idx.LineCount(); got != 3 {
		t.Errorf("line count = %d, want 3", got)
	}

	tests := []struct {
		offset   int
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},
		{4, 1, 5},
		{10, 1, 11}, // the newline itself
		{11, 2, 1},
		{15, 2, 5},
	}
	for _, tt := range tests {
		line, col := idx.LineAt(tt.offset)
		if line != tt.wantLine || col != tt.wantCol {
			t.Errorf("LineAt(%d) = (%d, %d), want (%d, %d)",
				tt.offset, line, col, tt.wantLine, tt.wantCol)
		}
	}
}

func TestLineIndexCRLF(t *testing.T) {
	t.Parallel()

	idx := syntax.NewLineIndex("a\r\nb\r\n")

	if got := idx.LineCount(); got != 3 {
		t.Errorf("line count = %d, want 3", got)
	}
	if got := idx.LineContent(1); got != "a" {
		t.Errorf("line 1 content = %q, want %q", got, "a")
	}
	if line, col := idx.LineAt(3); line != 2 || col != 1 {
		t.Errorf("LineAt(3) = (%d, %d), want (2, 1)", line, col)
	}
}

func TestLineIndexRoundTrip(t *testing.T) {
	t.Parallel()

	source := "fn main() {\n  return 1;\n}\n"
	idx := syntax.NewLineIndex(source)

	for offset := range len(source) {
		line, col := idx.LineAt(offset)
		if line == 0 {
			t.Fatalf("LineAt(%d) out of range", offset)
		}
		back, ok := idx.Offset(line, col)
		if !ok || back != offset {
			t.Errorf("Offset(%d, %d) = (%d, %v), want (%d, true)", line, col, back, ok, offset)
		}
	}
}

func TestLineIndexOutOfRange(t *testing.T) {
	t.Parallel()

	idx := syntax.NewLineIndex("one\ntwo")

	if line, col := idx.LineAt(-1); line != 0 || col != 0 {
		t.Errorf("LineAt(-1) = (%d, %d), want (0, 0)", line, col)
	}
	if _, ok := idx.Offset(0, 1); ok {
		t.Error("Offset(0, 1) succeeded, want failure")
	}
	if _, ok := idx.Offset(3, 1); ok {
		t.Error("Offset(3, 1) succeeded, want failure")
	}
	if got := idx.LineContent(5); got != "" {
		t.Errorf("LineContent(5) = %q, want empty", got)
	}
}

func TestLineIndexEmpty(t *testing.T) {
	t.Parallel()

	idx := syntax.NewLineIndex("")
	if got := idx.LineCount(); got != 0 {
		t.Errorf("line count = %d, want 0", got)
	}
	if line, col := idx.LineAt(0); line != 0 || col != 0 {
		t.Errorf("LineAt(0) = (%d, %d), want (0, 0)", line, col)
	}
}
