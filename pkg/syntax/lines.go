package syntax

import "sort"

// LineInfo describes one line of the source.
type LineInfo struct {
	// StartOffset is the byte index of the first byte of the line.
	StartOffset int

	// NewlineStart is the byte index where the line terminator begins
	// (equal to EndOffset for the last line without a terminator).
	NewlineStart int

	// EndOffset is the byte index just past the line terminator.
	EndOffset int
}

// LineIndex maps byte offsets to 1-based line/column positions and back.
// Green trees store no absolute positions, so consumers that report
// human-readable locations build one of these per source text.
type LineIndex struct {
	source string
	lines  []LineInfo
}

// NewLineIndex builds line metadata from source text.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func NewLineIndex(source string) *LineIndex {
	idx := &LineIndex{source: source}
	if len(source) == 0 {
		return idx
	}

	lineStart := 0
	for i := 0; i < len(source); i++ {
		if source[i] != '\n' {
			continue
		}
		newlineStart := i
		if i > 0 && source[i-1] == '\r' {
			newlineStart = i - 1
		}
		idx.lines = append(idx.lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: newlineStart,
			EndOffset:    i + 1,
		})
		lineStart = i + 1
	}

	// Last line may not have a trailing newline.
	if lineStart <= len(source) {
		idx.lines = append(idx.lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(source),
			EndOffset:    len(source),
		})
	}

	return idx
}

// LineCount returns the number of lines.
func (x *LineIndex) LineCount() int {
	return len(x.lines)
}

// LineAt converts a byte offset to 1-based line and column numbers.
// Column counts bytes, not runes.
// Returns (0, 0) if the offset is out of range.
func (x *LineIndex) LineAt(offset int) (int, int) {
	if offset < 0 || len(x.lines) == 0 {
		return 0, 0
	}

	if offset >= len(x.source) {
		last := x.lines[len(x.lines)-1]
		return len(x.lines), offset - last.StartOffset + 1
	}

	lineIdx := sort.Search(len(x.lines), func(i int) bool {
		return x.lines[i].EndOffset > offset
	})
	if lineIdx >= len(x.lines) {
		lineIdx = len(x.lines) - 1
	}

	info := x.lines[lineIdx]
	if offset < info.StartOffset {
		return 0, 0
	}

	return lineIdx + 1, offset - info.StartOffset + 1
}

// Offset converts 1-based line and column numbers to a byte offset.
// Returns (offset, true) on success, or (0, false) if out of range.
func (x *LineIndex) Offset(line, col int) (int, bool) {
	if line < 1 || line > len(x.lines) {
		return 0, false
	}

	info := x.lines[line-1]
	if col < 1 {
		return 0, false
	}

	offset := info.StartOffset + col - 1

	// Allow column to point just past the end of the line.
	if offset > info.EndOffset {
		return 0, false
	}

	return offset, true
}

// LineContent returns the text of a 1-based line, excluding the newline.
// Returns "" if the line number is out of range.
func (x *LineIndex) LineContent(line int) string {
	if line < 1 || line > len(x.lines) {
		return ""
	}

	info := x.lines[line-1]
	return x.source[info.StartOffset:info.NewlineStart]
}
