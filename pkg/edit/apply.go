package edit

import "strings"

// ApplySorted applies a sorted, validated slice of edits to the source.
// Edits must be prepared with Prepare before calling.
func ApplySorted(source string, edits []TextEdit) string {
	if len(edits) == 0 {
		return source
	}

	delta := 0
	for _, e := range edits {
		delta += len(e.NewText) - (e.EndOffset - e.StartOffset)
	}

	var sb strings.Builder
	sb.Grow(len(source) + delta)

	cursor := 0
	for _, e := range edits {
		sb.WriteString(source[cursor:e.StartOffset])
		sb.WriteString(e.NewText)
		cursor = e.EndOffset
	}
	sb.WriteString(source[cursor:])

	return sb.String()
}

// Apply prepares and applies edits to the source in one step.
func Apply(source string, edits []TextEdit) (string, error) {
	prepared, err := Prepare(edits, len(source))
	if err != nil {
		return "", err
	}
	return ApplySorted(source, prepared), nil
}
