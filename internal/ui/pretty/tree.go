package pretty

import (
	"strconv"
	"strings"

	"github.com/yaklabco/syntree/pkg/syntax"
)

const treeIndent = "  "

// FormatTree renders a syntax tree as an indented dump, one element per
// line, nodes and tokens interleaved in source order. Token text is
// quoted so trivia stays visible.
func (s *Styles) FormatTree(root *syntax.SyntaxNode) string {
	var builder strings.Builder
	s.writeTreeNode(&builder, root, 0)
	return builder.String()
}

func (s *Styles) writeTreeNode(builder *strings.Builder, node *syntax.SyntaxNode, depth int) {
	indent := strings.Repeat(treeIndent, depth)
	r := node.TextRange()

	builder.WriteString(indent)
	builder.WriteString(s.TreeNode.Render(node.Kind().String()))
	builder.WriteString(" ")
	builder.WriteString(s.TreeRange.Render(r.String()))
	builder.WriteString("\n")

	// Walk green children directly so nodes and tokens come out in
	// source order.
	green := node.Green()
	offset := r.Start
	childIndex := 0
	nodeChildren := node.Children()

	for i := range green.NumChildren() {
		element := green.Child(i)
		if _, ok := element.(*syntax.GreenNode); ok {
			s.writeTreeNode(builder, nodeChildren[childIndex], depth+1)
			childIndex++
		} else {
			token := element.(*syntax.GreenToken)
			s.writeTreeToken(builder, token, offset, depth+1)
		}
		offset += element.TextLen()
	}
}

func (s *Styles) writeTreeToken(builder *strings.Builder, token *syntax.GreenToken, offset, depth int) {
	indent := strings.Repeat(treeIndent, depth)
	r := syntax.NewTextRange(offset, offset+token.TextLen())

	builder.WriteString(indent)
	builder.WriteString(s.TreeToken.Render(token.Kind().String()))
	builder.WriteString(" ")
	builder.WriteString(s.TreeRange.Render(r.String()))
	builder.WriteString(" ")
	builder.WriteString(s.TreeText.Render(strconv.Quote(token.Text())))
	builder.WriteString("\n")
}

// FormatTokens renders the token stream as a flat list, one token per
// line with its range and quoted text.
func (s *Styles) FormatTokens(root *syntax.SyntaxNode) string {
	var builder strings.Builder

	_ = syntax.WalkTokens(root, func(t syntax.SyntaxToken) error {
		builder.WriteString(s.TreeToken.Render(t.Kind().String()))
		builder.WriteString(" ")
		builder.WriteString(s.TreeRange.Render(t.TextRange().String()))
		builder.WriteString(" ")
		builder.WriteString(s.TreeText.Render(strconv.Quote(t.Text())))
		builder.WriteString("\n")
		return nil
	})

	return builder.String()
}
