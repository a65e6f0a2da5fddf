package syntax

import (
	"iter"

	"github.com/dhamidi/syntree/text"
)

// Node is the external view of the tree: an InternalNode plus its absolute
// position and the facade it was reached from. Facades are created lazily
// per traversal and are never cached in the internal layer, so two facades
// for the same place are equal by (Kind, Position, Internal), not by
// identity.
type Node interface {
	Kind() SyntaxKind
	// Position is the offset of the first leading trivia byte.
	Position() int
	Width() int
	// Parent returns nil for the root.
	Parent() Node
	ChildCount() int
	// ChildAt returns the facade for bucket i, or nil when the bucket is
	// absent. Panics with *IndexError when i is out of range.
	ChildAt(i int) Node
	// Children yields every bucket in order, absent ones as nil.
	Children() iter.Seq2[int, Node]
	Internal() InternalNode
	// TextRange spans the node including its trivia.
	TextRange() text.Range
	// TextRangeWithoutTrivia drops the first token's leading and the last
	// token's trailing trivia.
	TextRangeWithoutTrivia() text.Range
	ToSourceText() string
	HasDiagnostics() bool
	// Diagnostics returns the diagnostics of the whole subtree with absolute
	// ranges.
	Diagnostics() []PositionedDiagnostic
}

// SameNode reports whether a and b are facades for the same node at the
// same place.
func SameNode(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Kind() == b.Kind() && a.Position() == b.Position() && a.Internal() == b.Internal()
}

// NewRoot creates the facade for a tree root: position 0, no parent.
func NewRoot(root InternalNode) Node {
	root = present(root)
	if root == nil {
		return nil
	}
	return root.CreateFacade(0, nil)
}

func textRange(n InternalNode, position int) text.Range {
	return text.Range{Start: position, End: position + n.Width()}
}

func textRangeWithoutTrivia(n InternalNode, position int) text.Range {
	start := position + n.LeadingTriviaWidth()
	end := position + n.Width() - n.TrailingTriviaWidth()
	if end < start {
		end = start
	}
	return text.Range{Start: start, End: end}
}

// Token is the facade for a leaf.
type Token struct {
	internal *InternalToken
	position int
	parent   Node
}

func (t *Token) Kind() SyntaxKind {
	return t.internal.kind
}

func (t *Token) Position() int {
	return t.position
}

func (t *Token) Width() int {
	return t.internal.width
}

func (t *Token) Parent() Node {
	return t.parent
}

func (t *Token) ChildCount() int {
	return 0
}

func (t *Token) ChildAt(i int) Node {
	panic(&IndexError{Kind: t.internal.kind, Index: i, Count: 0})
}

func (t *Token) Children() iter.Seq2[int, Node] {
	return func(yield func(int, Node) bool) {}
}

func (t *Token) Internal() InternalNode {
	return t.internal
}

// InternalToken returns the wrapped leaf with its concrete type.
func (t *Token) InternalToken() *InternalToken {
	return t.internal
}

func (t *Token) Text() string {
	return t.internal.text
}

func (t *Token) LeadingTrivia() TriviaList {
	return t.internal.leading
}

func (t *Token) TrailingTrivia() TriviaList {
	return t.internal.trailing
}

func (t *Token) IsMissing() bool {
	return t.internal.missing
}

func (t *Token) TextRange() text.Range {
	return textRange(t.internal, t.position)
}

func (t *Token) TextRangeWithoutTrivia() text.Range {
	start := t.position + t.internal.leading.Width()
	return text.Range{Start: start, End: start + len(t.internal.text)}
}

func (t *Token) ToSourceText() string {
	return SourceText(t.internal)
}

func (t *Token) HasDiagnostics() bool {
	return t.internal.HasDiagnostics()
}

func (t *Token) Diagnostics() []PositionedDiagnostic {
	return collectDiagnostics(t.internal, t.position, nil)
}

// NonTerminalNode is the generic facade for a branch. Every generated typed
// facade embeds it.
type NonTerminalNode struct {
	self     Node
	internal *InternalBranch
	position int
	parent   Node
}

// init is called by facade constructors; self is the outermost typed facade
// and becomes the parent of every child this node creates.
func (n *NonTerminalNode) init(self Node, internal *InternalBranch, position int, parent Node) {
	n.self = self
	n.internal = internal
	n.position = position
	n.parent = parent
}

func (n *NonTerminalNode) Kind() SyntaxKind {
	return n.internal.kind
}

func (n *NonTerminalNode) Position() int {
	return n.position
}

func (n *NonTerminalNode) Width() int {
	return n.internal.width
}

func (n *NonTerminalNode) Parent() Node {
	return n.parent
}

func (n *NonTerminalNode) ChildCount() int {
	return len(n.internal.buckets)
}

func (n *NonTerminalNode) ChildAt(i int) Node {
	child := n.internal.ChildAt(i)
	if child == nil {
		return nil
	}
	return child.CreateFacade(n.position+n.internal.offsetOf(i), n.self)
}

func (n *NonTerminalNode) Children() iter.Seq2[int, Node] {
	return func(yield func(int, Node) bool) {
		offset := n.position
		for i, child := range n.internal.buckets {
			if child == nil {
				if !yield(i, nil) {
					return
				}
				continue
			}
			if !yield(i, child.CreateFacade(offset, n.self)) {
				return
			}
			offset += child.Width()
		}
	}
}

func (n *NonTerminalNode) Internal() InternalNode {
	return n.internal
}

func (n *NonTerminalNode) TextRange() text.Range {
	return textRange(n.internal, n.position)
}

func (n *NonTerminalNode) TextRangeWithoutTrivia() text.Range {
	return textRangeWithoutTrivia(n.internal, n.position)
}

func (n *NonTerminalNode) ToSourceText() string {
	return SourceText(n.internal)
}

func (n *NonTerminalNode) HasDiagnostics() bool {
	return n.internal.hasDiagnostics
}

func (n *NonTerminalNode) Diagnostics() []PositionedDiagnostic {
	return collectDiagnostics(n.internal, n.position, nil)
}

func optionalToken(n Node) (*Token, bool) {
	t, ok := n.(*Token)
	return t, ok
}
