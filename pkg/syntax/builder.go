package syntax

import "fmt"

// Checkpoint marks a position in the builder's current frame. Capturing a
// checkpoint before emitting a run of siblings allows StartNodeAt to wrap
// those siblings in a new parent later, after the parser has seen enough
// input to know what the parent should be.
//
// A checkpoint is only valid while the frame it was taken in is still open
// and no inner frame has been finished past it.
type Checkpoint struct {
	// frameDepth is the builder stack depth when the checkpoint was taken.
	frameDepth int

	// childIndex is the child count of the top frame at that moment.
	childIndex int
}

// frame is one in-progress node on the builder stack.
type frame struct {
	kind     Kind
	children []GreenElement
}

// Builder constructs a green tree in a single forward pass. The parser
// drives it top-down (StartNode/FinishNode nesting) while the tree is
// materialized bottom-up; checkpoints allow retroactive wrapping of
// already-emitted siblings without mutating finished green nodes.
//
// A Builder is a short-lived, single-owner scratchpad; it is not safe for
// concurrent use. API misuse (finishing with no open frame, using a stale
// checkpoint) is a bug in the caller and panics rather than returning an
// error.
type Builder struct {
	stack []frame
	done  bool
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// StartNode pushes a new open frame of the given kind.
func (b *Builder) StartNode(kind Kind) {
	if b.done {
		panic("syntax: StartNode after Finish")
	}
	b.stack = append(b.stack, frame{kind: kind})
}

// Token appends a leaf token to the current open frame.
func (b *Builder) Token(kind Kind, text string) {
	if len(b.stack) == 0 {
		panic("syntax: Token with no open frame")
	}
	top := &b.stack[len(b.stack)-1]
	top.children = append(top.children, NewGreenToken(kind, text))
}

// FinishNode pops the current frame, materializes it into an immutable
// green node, and appends it as a child of the enclosing frame.
func (b *Builder) FinishNode() {
	if len(b.stack) < 2 {
		panic("syntax: FinishNode with no enclosing frame")
	}
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	node := NewGreenNode(top.kind, top.children)
	parent := &b.stack[len(b.stack)-1]
	parent.children = append(parent.children, node)
}

// Checkpoint records the current position in the open frame. O(1); no
// tree data is allocated.
func (b *Builder) Checkpoint() Checkpoint {
	if len(b.stack) == 0 {
		panic("syntax: Checkpoint with no open frame")
	}
	top := &b.stack[len(b.stack)-1]
	return Checkpoint{frameDepth: len(b.stack), childIndex: len(top.children)}
}

// StartNodeAt opens a new frame that adopts every child emitted into the
// checkpoint's frame since the checkpoint was taken. The moved children
// keep their order, and the new node, once finished, occupies the position
// the checkpoint marked among its former siblings.
//
// This is what lets a parser emit "a", then on seeing "+ b" decide that
// "a" is the left operand of a BinaryExpr, with no backtracking and no
// mutation of finished nodes.
func (b *Builder) StartNodeAt(cp Checkpoint, kind Kind) {
	if cp.frameDepth != len(b.stack) {
		panic(fmt.Sprintf("syntax: checkpoint taken at depth %d used at depth %d",
			cp.frameDepth, len(b.stack)))
	}
	top := &b.stack[len(b.stack)-1]
	if cp.childIndex > len(top.children) {
		panic(fmt.Sprintf("syntax: checkpoint index %d beyond frame size %d",
			cp.childIndex, len(top.children)))
	}

	// Move, not copy: the slice from the checkpoint onward becomes the new
	// frame's child list.
	adopted := make([]GreenElement, len(top.children)-cp.childIndex)
	copy(adopted, top.children[cp.childIndex:])
	top.children = top.children[:cp.childIndex]

	b.stack = append(b.stack, frame{kind: kind, children: adopted})
}

// Finish closes the single remaining root frame and returns the completed
// immutable tree. Exactly one frame must be open.
func (b *Builder) Finish() *GreenNode {
	if len(b.stack) != 1 {
		panic(fmt.Sprintf("syntax: Finish with %d open frames", len(b.stack)))
	}
	top := b.stack[0]
	b.stack = nil
	b.done = true
	return NewGreenNode(top.kind, top.children)
}
