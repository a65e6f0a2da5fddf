package syntax

import "iter"

// NodeList is the facade for a variable-length sequence of nodes.
type NodeList struct {
	NonTerminalNode
}

func newNodeList(internal *InternalBranch, position int, parent Node) Node {
	n := &NodeList{}
	n.init(n, internal, position, parent)
	return n
}

func (l *NodeList) Len() int {
	return l.ChildCount()
}

func (l *NodeList) Get(i int) Node {
	return l.ChildAt(i)
}

func (l *NodeList) All() iter.Seq2[int, Node] {
	return l.Children()
}

// SeparatedNodeList holds items interleaved with separator tokens:
// item, sep, item, ..., item.
type SeparatedNodeList struct {
	NonTerminalNode
}

func newSeparatedNodeList(internal *InternalBranch, position int, parent Node) Node {
	n := &SeparatedNodeList{}
	n.init(n, internal, position, parent)
	return n
}

func (l *SeparatedNodeList) Len() int {
	return (l.ChildCount() + 1) / 2
}

func (l *SeparatedNodeList) Get(i int) Node {
	return l.ChildAt(2 * i)
}

// Separator returns the separator following item i.
func (l *SeparatedNodeList) Separator(i int) *Token {
	return l.ChildAt(2*i + 1).(*Token)
}

// Items yields the items only, skipping separators.
func (l *SeparatedNodeList) Items() iter.Seq2[int, Node] {
	return func(yield func(int, Node) bool) {
		offset := l.position
		for i, child := range l.internal.buckets {
			if i%2 == 0 && !yield(i/2, child.CreateFacade(offset, l.self)) {
				return
			}
			offset += child.Width()
		}
	}
}

// NodeList builds a KindNodeList node.
func (b *Builder) NodeList(items ...InternalNode) *InternalBranch {
	return b.Node(KindNodeList, items...)
}

// SeparatedNodeList builds a KindSeparatedNodeList node from alternating
// items and separators.
func (b *Builder) SeparatedNodeList(items ...InternalNode) *InternalBranch {
	return b.Node(KindSeparatedNodeList, items...)
}
