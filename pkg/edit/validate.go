package edit

import (
	"fmt"
	"sort"
)

// ValidationError describes an invalid edit.
type ValidationError struct {
	Edit    TextEdit
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.StartOffset, e.Edit.EndOffset, e.Message)
}

// ConflictError describes overlapping edits.
type ConflictError struct {
	Edit1 TextEdit
	Edit2 TextEdit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("overlapping edits: [%d:%d] and [%d:%d]",
		e.Edit1.StartOffset, e.Edit1.EndOffset,
		e.Edit2.StartOffset, e.Edit2.EndOffset)
}

// Validate checks that all edits have valid ranges for the given source
// length. Returns the first invalid edit found, or nil.
func Validate(edits []TextEdit, sourceLen int) error {
	for _, e := range edits {
		if e.StartOffset < 0 {
			return &ValidationError{Edit: e, Message: "start offset is negative"}
		}
		if e.EndOffset < e.StartOffset {
			return &ValidationError{Edit: e, Message: "end offset is before start offset"}
		}
		if e.EndOffset > sourceLen {
			return &ValidationError{
				Edit:    e,
				Message: fmt.Sprintf("end offset %d exceeds source length %d", e.EndOffset, sourceLen),
			}
		}
	}
	return nil
}

// Sort sorts edits by start offset, then by end offset, for deterministic
// application order.
func Sort(edits []TextEdit) {
	sort.Slice(edits, func(i, j int) bool {
		if edits[i].StartOffset != edits[j].StartOffset {
			return edits[i].StartOffset < edits[j].StartOffset
		}
		return edits[i].EndOffset < edits[j].EndOffset
	})
}

// DetectConflicts checks a sorted slice for overlapping edits.
// Returns the first conflict found, or nil.
func DetectConflicts(edits []TextEdit) error {
	for i := 1; i < len(edits); i++ {
		prev := edits[i-1]
		curr := edits[i]
		if curr.StartOffset < prev.EndOffset {
			return &ConflictError{Edit1: prev, Edit2: curr}
		}
	}
	return nil
}

// FilterConflicts splits a sorted slice into non-conflicting edits and the
// overlapping edits that were skipped. Earlier edits take precedence.
func FilterConflicts(edits []TextEdit) (accepted, skipped []TextEdit) {
	if len(edits) == 0 {
		return nil, nil
	}

	accepted = append(accepted, edits[0])
	end := edits[0].EndOffset

	for _, e := range edits[1:] {
		if e.StartOffset < end {
			skipped = append(skipped, e)
			continue
		}
		accepted = append(accepted, e)
		end = e.EndOffset
	}

	return accepted, skipped
}

// Prepare validates, sorts, and checks a copy of the edits for conflicts,
// returning the sorted copy ready for Apply.
func Prepare(edits []TextEdit, sourceLen int) ([]TextEdit, error) {
	if len(edits) == 0 {
		return edits, nil
	}

	if err := Validate(edits, sourceLen); err != nil {
		return nil, err
	}

	result := make([]TextEdit, len(edits))
	copy(result, edits)
	Sort(result)

	if err := DetectConflicts(result); err != nil {
		return nil, err
	}

	return result, nil
}
