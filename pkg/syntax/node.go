package syntax

// SyntaxNode is a red cursor: a lazy, position-aware view over a green
// node. A cursor holds a shared reference to immutable green data plus a
// parent chain and an absolute byte offset; it owns no tree data itself
// and is cheap to create and discard. Two cursors over the same green node
// at different offsets are distinct values.
//
// Cursor creation only reads immutable data, so cursors may be built
// concurrently over the same green tree without synchronization.
type SyntaxNode struct {
	green  *GreenNode
	parent *SyntaxNode
	offset int

	// index is this node's position among its parent's green children.
	// -1 for the root.
	index int
}

// NewRootNode creates the root cursor for a green tree at offset 0.
func NewRootNode(green *GreenNode) *SyntaxNode {
	return &SyntaxNode{green: green, parent: nil, offset: 0, index: -1}
}

// Kind returns the node's kind.
func (n *SyntaxNode) Kind() Kind { return n.green.Kind() }

// Green returns the underlying green node.
func (n *SyntaxNode) Green() *GreenNode { return n.green }

// Parent returns the parent cursor, or nil for the root.
func (n *SyntaxNode) Parent() *SyntaxNode { return n.parent }

// TextRange returns the absolute byte range this node spans.
func (n *SyntaxNode) TextRange() TextRange {
	return TextRange{Start: n.offset, End: n.offset + n.green.TextLen()}
}

// Text reconstructs the exact source text this node spans.
func (n *SyntaxNode) Text() string { return n.green.Text() }

// Children materializes cursors for all direct child nodes, in order.
// Token children are not included; use ChildTokens for those.
func (n *SyntaxNode) Children() []*SyntaxNode {
	var children []*SyntaxNode
	childOffset := n.offset
	for i := range n.green.NumChildren() {
		element := n.green.Child(i)
		if green, ok := element.(*GreenNode); ok {
			children = append(children, &SyntaxNode{
				green:  green,
				parent: n,
				offset: childOffset,
				index:  i,
			})
		}
		childOffset += element.TextLen()
	}
	return children
}

// ChildTokens materializes cursors for all direct child tokens, in order.
func (n *SyntaxNode) ChildTokens() []SyntaxToken {
	var tokens []SyntaxToken
	childOffset := n.offset
	for i := range n.green.NumChildren() {
		element := n.green.Child(i)
		if green, ok := element.(*GreenToken); ok {
			tokens = append(tokens, SyntaxToken{
				green:  green,
				parent: n,
				offset: childOffset,
			})
		}
		childOffset += element.TextLen()
	}
	return tokens
}

// FirstChild returns the first child node, or nil if there is none.
func (n *SyntaxNode) FirstChild() *SyntaxNode {
	childOffset := n.offset
	for i := range n.green.NumChildren() {
		element := n.green.Child(i)
		if green, ok := element.(*GreenNode); ok {
			return &SyntaxNode{green: green, parent: n, offset: childOffset, index: i}
		}
		childOffset += element.TextLen()
	}
	return nil
}

// LastChild returns the last child node, or nil if there is none.
func (n *SyntaxNode) LastChild() *SyntaxNode {
	var last *SyntaxNode
	childOffset := n.offset
	for i := range n.green.NumChildren() {
		element := n.green.Child(i)
		if green, ok := element.(*GreenNode); ok {
			last = &SyntaxNode{green: green, parent: n, offset: childOffset, index: i}
		}
		childOffset += element.TextLen()
	}
	return last
}

// NextSibling returns the next sibling node, or nil at the end.
func (n *SyntaxNode) NextSibling() *SyntaxNode {
	if n.parent == nil {
		return nil
	}
	parent := n.parent
	childOffset := n.offset + n.green.TextLen()
	for i := n.index + 1; i < parent.green.NumChildren(); i++ {
		element := parent.green.Child(i)
		if green, ok := element.(*GreenNode); ok {
			return &SyntaxNode{green: green, parent: parent, offset: childOffset, index: i}
		}
		childOffset += element.TextLen()
	}
	return nil
}

// PrevSibling returns the previous sibling node, or nil at the start.
func (n *SyntaxNode) PrevSibling() *SyntaxNode {
	if n.parent == nil {
		return nil
	}
	parent := n.parent
	var prev *SyntaxNode
	childOffset := parent.offset
	for i := 0; i < n.index; i++ {
		element := parent.green.Child(i)
		if green, ok := element.(*GreenNode); ok {
			prev = &SyntaxNode{green: green, parent: parent, offset: childOffset, index: i}
		}
		childOffset += element.TextLen()
	}
	return prev
}

// Ancestors returns the chain of parents from this node up to the root,
// nearest first.
func (n *SyntaxNode) Ancestors() []*SyntaxNode {
	var ancestors []*SyntaxNode
	for p := n.parent; p != nil; p = p.parent {
		ancestors = append(ancestors, p)
	}
	return ancestors
}

// FindNodeAt returns the deepest node whose range contains the offset,
// or nil if the offset is outside this node's range.
func (n *SyntaxNode) FindNodeAt(offset int) *SyntaxNode {
	if !n.TextRange().Contains(offset) {
		return nil
	}
	node := n
	for {
		var deeper *SyntaxNode
		for _, child := range node.Children() {
			if child.TextRange().Contains(offset) {
				deeper = child
				break
			}
		}
		if deeper == nil {
			return node
		}
		node = deeper
	}
}

// SyntaxToken is a red cursor over a green token: the token plus its
// absolute position.
type SyntaxToken struct {
	green  *GreenToken
	parent *SyntaxNode
	offset int
}

// Kind returns the token's kind.
func (t SyntaxToken) Kind() Kind { return t.green.Kind() }

// Text returns the token's exact source text.
func (t SyntaxToken) Text() string { return t.green.Text() }

// Parent returns the node this token belongs to.
func (t SyntaxToken) Parent() *SyntaxNode { return t.parent }

// TextRange returns the absolute byte range the token spans.
func (t SyntaxToken) TextRange() TextRange {
	return TextRange{Start: t.offset, End: t.offset + t.green.TextLen()}
}
