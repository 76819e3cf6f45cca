package parser

import "github.com/yaklabco/syntree/pkg/syntax"

// Result is a complete parse: the immutable green tree plus ordered
// diagnostics. Parsing always produces a Result; malformed input shows up
// as Error nodes and entries in Errors, never as a hard failure, so
// consumers always have a tree to display even mid-edit.
type Result struct {
	// Green is the root of the immutable tree. Its text reproduces
	// Source exactly.
	Green *syntax.GreenNode

	// Errors holds the diagnostics recorded during parsing, in source
	// order of discovery.
	Errors []ParseError

	// Source is the text that was parsed.
	Source string
}

// Root returns a fresh red cursor over the tree's root.
func (r *Result) Root() *syntax.SyntaxNode {
	return syntax.NewRootNode(r.Green)
}

// Ok reports whether the parse completed without diagnostics.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

// Text reconstructs the parsed source from the tree.
func (r *Result) Text() string {
	return r.Green.Text()
}
