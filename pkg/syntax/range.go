package syntax

import "fmt"

// TextRange is a half-open byte range [Start, End) in the source.
type TextRange struct {
	// Start is the byte index where the range begins (inclusive).
	Start int

	// End is the byte index where the range ends (exclusive).
	End int
}

// NewTextRange creates a range, panicking if end < start.
func NewTextRange(start, end int) TextRange {
	if end < start {
		panic(fmt.Sprintf("syntax: invalid range [%d, %d)", start, end))
	}
	return TextRange{Start: start, End: end}
}

// Len returns the length of the range in bytes.
func (r TextRange) Len() int { return r.End - r.Start }

// IsEmpty reports whether the range has zero length.
func (r TextRange) IsEmpty() bool { return r.Start == r.End }

// Contains reports whether the offset lies within the range.
func (r TextRange) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// ContainsRange reports whether other lies entirely within r.
func (r TextRange) ContainsRange(other TextRange) bool {
	return other.Start >= r.Start && other.End <= r.End
}

// Intersects reports whether the two ranges share at least one byte.
func (r TextRange) Intersects(other TextRange) bool {
	return r.Start < other.End && other.Start < r.End
}

// String renders the range as "[start, end)".
func (r TextRange) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}
