package syntax

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(n *SyntaxNode) error

// Walk performs a pre-order traversal of the node tree starting at root.
// The callback is called for each node; a non-nil error stops the walk
// immediately and is returned.
func Walk(root *SyntaxNode, walkFunc WalkFunc) error {
	if root == nil {
		return nil
	}

	if err := walkFunc(root); err != nil {
		return err
	}

	for _, child := range root.Children() {
		if err := Walk(child, walkFunc); err != nil {
			return err
		}
	}

	return nil
}

// WalkWithContext performs a traversal with enter and leave callbacks.
// Enter is called before visiting children, leave after. Either callback
// may be nil.
func WalkWithContext(root *SyntaxNode, enter, leave WalkFunc) error {
	if root == nil {
		return nil
	}

	if enter != nil {
		if err := enter(root); err != nil {
			return err
		}
	}

	for _, child := range root.Children() {
		if err := WalkWithContext(child, enter, leave); err != nil {
			return err
		}
	}

	if leave != nil {
		if err := leave(root); err != nil {
			return err
		}
	}

	return nil
}

// WalkTokens visits every token under root in source order, with its
// absolute position.
func WalkTokens(root *SyntaxNode, fn func(t SyntaxToken) error) error {
	if root == nil {
		return nil
	}

	childOffset := root.TextRange().Start
	for i := range root.Green().NumChildren() {
		element := root.Green().Child(i)
		switch green := element.(type) {
		case *GreenToken:
			tok := SyntaxToken{green: green, parent: root, offset: childOffset}
			if err := fn(tok); err != nil {
				return err
			}
		case *GreenNode:
			child := &SyntaxNode{green: green, parent: root, offset: childOffset, index: i}
			if err := WalkTokens(child, fn); err != nil {
				return err
			}
		}
		childOffset += element.TextLen()
	}

	return nil
}

// FindAll returns all nodes matching the predicate.
func FindAll(root *SyntaxNode, predicate func(n *SyntaxNode) bool) []*SyntaxNode {
	var result []*SyntaxNode

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(root, func(node *SyntaxNode) error {
		if predicate(node) {
			result = append(result, node)
		}
		return nil
	})

	return result
}

// FindFirst returns the first node matching the predicate, or nil.
func FindFirst(root *SyntaxNode, predicate func(n *SyntaxNode) bool) *SyntaxNode {
	var found *SyntaxNode

	//nolint:errcheck,revive // errStopWalk is expected and intentionally ignored
	Walk(root, func(node *SyntaxNode) error {
		if predicate(node) {
			found = node
			return errStopWalk
		}
		return nil
	})

	return found
}

// FindByKind returns all nodes of the specified kind.
func FindByKind(root *SyntaxNode, kind Kind) []*SyntaxNode {
	return FindAll(root, func(n *SyntaxNode) bool {
		return n.Kind() == kind
	})
}

// errStopWalk is a sentinel error used to stop walking early.
var errStopWalk = &stopWalkError{}

type stopWalkError struct{}

func (e *stopWalkError) Error() string {
	return "stop walk"
}
