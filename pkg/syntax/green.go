package syntax

import "strings"

// GreenElement is either a *GreenToken or a *GreenNode.
// Green elements carry no absolute position, only text, so identical
// subtrees can be shared between parents (and between old and new trees
// after an incremental reparse).
type GreenElement interface {
	// Kind returns the element's kind.
	Kind() Kind

	// TextLen returns the length in bytes of the text this element spans.
	TextLen() int

	writeText(sb *strings.Builder)
}

// GreenToken is an immutable leaf: a kind plus the exact source text.
type GreenToken struct {
	kind Kind
	text string
}

// NewGreenToken creates an immutable green token.
func NewGreenToken(kind Kind, text string) *GreenToken {
	return &GreenToken{kind: kind, text: text}
}

// Kind returns the token's kind.
func (t *GreenToken) Kind() Kind { return t.kind }

// Text returns the exact source text of the token.
func (t *GreenToken) Text() string { return t.text }

// TextLen returns the byte length of the token's text.
func (t *GreenToken) TextLen() int { return len(t.text) }

func (t *GreenToken) writeText(sb *strings.Builder) {
	sb.WriteString(t.text)
}

// GreenNode is an immutable interior node owning an ordered sequence of
// children. The concatenated text of all leaf tokens under a node, in
// order, is exactly the source slice the node spans.
type GreenNode struct {
	kind     Kind
	children []GreenElement
	textLen  int
}

// NewGreenNode creates an immutable green node. The children slice is
// owned by the node after the call; callers must not modify it.
func NewGreenNode(kind Kind, children []GreenElement) *GreenNode {
	textLen := 0
	for _, child := range children {
		textLen += child.TextLen()
	}
	return &GreenNode{kind: kind, children: children, textLen: textLen}
}

// Kind returns the node's kind.
func (n *GreenNode) Kind() Kind { return n.kind }

// TextLen returns the total byte length of the node's text.
func (n *GreenNode) TextLen() int { return n.textLen }

// NumChildren returns the number of direct children.
func (n *GreenNode) NumChildren() int { return len(n.children) }

// Child returns the i-th direct child.
func (n *GreenNode) Child(i int) GreenElement { return n.children[i] }

// Children returns a copy of the child slice. The green node itself stays
// immutable; callers get their own slice to iterate or reorder.
func (n *GreenNode) Children() []GreenElement {
	out := make([]GreenElement, len(n.children))
	copy(out, n.children)
	return out
}

// Text reconstructs the exact source text the node spans.
func (n *GreenNode) Text() string {
	var sb strings.Builder
	sb.Grow(n.textLen)
	n.writeText(&sb)
	return sb.String()
}

func (n *GreenNode) writeText(sb *strings.Builder) {
	for _, child := range n.children {
		child.writeText(sb)
	}
}
