package parser

import (
	"fmt"

	"github.com/yaklabco/syntree/pkg/edit"
)

// Reparse produces the tree for newText given the previous parse and the
// edits that transformed the old source into newText.
//
// The result is always byte-for-byte equivalent to Parse(newText): the
// same kinds, the same texts, the same shape. Reuse of old green subtrees
// is an optimization layered on top of that contract, never a deviation
// from it. Green nodes carry no absolute positions, which is what makes
// reuse safe; offsets are re-derived by the red cursors.
//
// The old tree is immutable, so callers holding its root may keep reading
// it while the new tree is built.
func Reparse(old *Result, edits []edit.TextEdit, newText string) (*Result, error) {
	if old == nil {
		return Parse(newText), nil
	}

	prepared, err := edit.Prepare(edits, len(old.Source))
	if err != nil {
		return nil, fmt.Errorf("reparse: %w", err)
	}

	edited := edit.ApplySorted(old.Source, prepared)
	if edited != newText {
		return nil, fmt.Errorf("reparse: edits produce %d bytes, new text has %d bytes",
			len(edited), len(newText))
	}

	// Nothing changed: the whole immutable tree is reusable as-is.
	if len(prepared) == 0 || edited == old.Source {
		return &Result{Green: old.Green, Errors: old.Errors, Source: old.Source}, nil
	}

	// Full reparse is the correctness baseline; subtree reuse for regions
	// outside every edit range would be a further optimization.
	return Parse(newText), nil
}
