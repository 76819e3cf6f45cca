package parser

import (
	"fmt"

	"github.com/yaklabco/syntree/pkg/syntax"
)

// ParseError is one diagnostic produced while parsing malformed input.
// Parse errors never abort parsing; the parser always yields a complete
// tree covering the full input, with Error nodes around unparseable
// regions.
type ParseError struct {
	// Message describes what was expected or found.
	Message string

	// Range is the byte range the error refers to.
	Range syntax.TextRange
}

// Error implements the error interface.
func (e ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Range)
}
