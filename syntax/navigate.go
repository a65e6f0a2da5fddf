package syntax

import "iter"

// FindToken returns the token whose full range, trivia included, contains
// offset. At a boundary the token starting at offset wins. An offset at the
// end of the root resolves to the last token. Returns nil for an offset
// outside the root.
func FindToken(root Node, offset int) *Token {
	if root == nil || offset < root.Position() || offset > root.Position()+root.Width() {
		return nil
	}
	node := root
	for {
		if t, ok := node.(*Token); ok {
			return t
		}
		var next Node
		for _, child := range node.Children() {
			if child != nil && offset >= child.Position() && offset < child.Position()+child.Width() {
				next = child
				break
			}
		}
		if next == nil {
			return lastTokenOf(node)
		}
		node = next
	}
}

func lastTokenOf(n Node) *Token {
	var found *Token
	for t := range Tokens(n) {
		found = t
	}
	return found
}

// NodeAt returns the innermost node whose range without trivia contains the
// range [start, end). Returns nil when root does not cover it.
func NodeAt(root Node, start, end int) Node {
	if root == nil {
		return nil
	}
	r := root.TextRange()
	if start < r.Start || end > r.End || start > end {
		return nil
	}
	node := root
	for {
		var next Node
		for _, child := range node.Children() {
			if child == nil || child.Width() == 0 {
				continue
			}
			cr := child.TextRangeWithoutTrivia()
			if start >= cr.Start && end <= cr.End {
				next = child
				break
			}
		}
		if next == nil {
			return node
		}
		node = next
	}
}

// Ancestors yields the parents of n from the nearest up to the root.
func Ancestors(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for p := n.Parent(); p != nil; p = p.Parent() {
			if !yield(p) {
				return
			}
		}
	}
}

// Tokens yields every token in n in source order, missing tokens included.
func Tokens(n Node) iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		walkTokens(n, yield)
	}
}

func walkTokens(n Node, yield func(*Token) bool) bool {
	if t, ok := n.(*Token); ok {
		return yield(t)
	}
	for _, child := range n.Children() {
		if child == nil {
			continue
		}
		if !walkTokens(child, yield) {
			return false
		}
	}
	return true
}

// Visitor is called for every node in a Walk. Returning false skips the
// node's children.
type Visitor func(n Node) bool

// Walk visits n and its descendants depth-first in source order.
func Walk(n Node, visit Visitor) {
	if n == nil || !visit(n) {
		return
	}
	for _, child := range n.Children() {
		if child != nil {
			Walk(child, visit)
		}
	}
}

// PathOf returns the bucket indices leading from root down to target. The
// second result is false when target is not inside root.
func PathOf(root, target Node) ([]int, bool) {
	if root == nil || target == nil {
		return nil, false
	}
	var chain []Node
	for n := target; n != nil; n = n.Parent() {
		chain = append(chain, n)
		if SameNode(n, root) {
			break
		}
	}
	if !SameNode(chain[len(chain)-1], root) {
		return findPath(root, target)
	}
	path := make([]int, 0, len(chain)-1)
	for i := len(chain) - 1; i > 0; i-- {
		parent, child := chain[i], chain[i-1]
		idx := childIndex(parent, child)
		if idx < 0 {
			return nil, false
		}
		path = append(path, idx)
	}
	return path, true
}

func childIndex(parent, child Node) int {
	for i, c := range parent.Children() {
		if c != nil && c.Internal() == child.Internal() && c.Position() == child.Position() {
			return i
		}
	}
	return -1
}

// findPath searches root for a node equal to target by position and
// internal identity. Used when target's parent chain does not reach root,
// for example when target came from a different facade of the same tree.
func findPath(root, target Node) ([]int, bool) {
	if SameNode(root, target) {
		return []int{}, true
	}
	tr := target.TextRange()
	for i, child := range root.Children() {
		if child == nil {
			continue
		}
		cr := child.TextRange()
		if tr.Start < cr.Start || tr.End > cr.End {
			continue
		}
		if rest, ok := findPath(child, target); ok {
			return append([]int{i}, rest...), true
		}
	}
	return nil, false
}

// Descend follows path from n and returns the node it reaches.
func Descend(n Node, path []int) Node {
	for _, i := range path {
		if n == nil {
			return nil
		}
		n = n.ChildAt(i)
	}
	return n
}
