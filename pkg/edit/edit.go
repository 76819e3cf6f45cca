// Package edit provides text edit types, validation, and application
// logic. Edits describe text replacements by byte range and are the input
// to incremental reparsing and to rule auto-fixes.
package edit

import "github.com/yaklabco/syntree/pkg/syntax"

// TextEdit represents a single text replacement.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// Range returns the replaced range as a syntax.TextRange.
func (e TextEdit) Range() syntax.TextRange {
	return syntax.TextRange{Start: e.StartOffset, End: e.EndOffset}
}

// IsInsert reports whether the edit inserts without replacing anything.
func (e TextEdit) IsInsert() bool {
	return e.StartOffset == e.EndOffset
}

// IsDelete reports whether the edit removes text without replacement.
func (e TextEdit) IsDelete() bool {
	return e.NewText == "" && e.StartOffset < e.EndOffset
}

// Builder accumulates text edits for a single source text.
type Builder struct {
	Edits []TextEdit
}

// NewBuilder creates an empty edit builder.
func NewBuilder() *Builder {
	return &Builder{Edits: make([]TextEdit, 0)}
}

// ReplaceRange adds an edit that replaces bytes [start, end) with newText.
func (b *Builder) ReplaceRange(start, end int, newText string) {
	b.Edits = append(b.Edits, TextEdit{
		StartOffset: start,
		EndOffset:   end,
		NewText:     newText,
	})
}

// Insert adds an edit that inserts text at the given offset.
func (b *Builder) Insert(offset int, text string) {
	b.ReplaceRange(offset, offset, text)
}

// Delete adds an edit that deletes bytes [start, end).
func (b *Builder) Delete(start, end int) {
	b.ReplaceRange(start, end, "")
}
