package syntax

import "fmt"

// ReplaceAt returns a new root in which the node reached by following path
// from root is replaced. Only the nodes on the path are rebuilt; every other
// subtree of the result is the same InternalNode as in root.
//
// A nil replacement clears the bucket, which is only allowed for optional
// buckets.
func ReplaceAt(root InternalNode, path []int, replacement InternalNode) (InternalNode, error) {
	root = present(root)
	if len(path) == 0 {
		return present(replacement), nil
	}
	branch, ok := root.(*InternalBranch)
	if !ok {
		return nil, fmt.Errorf("replace: path step %d into %v which has no children", path[0], kindOf(root))
	}
	i := path[0]
	if i < 0 || i >= len(branch.buckets) {
		return nil, fmt.Errorf("replace: %w", &IndexError{Kind: branch.kind, Index: i, Count: len(branch.buckets)})
	}
	child := branch.buckets[i]
	if len(path) > 1 && child == nil {
		return nil, fmt.Errorf("replace: bucket %d of %s is absent", i, branch.kind)
	}
	newChild, err := ReplaceAt(child, path[1:], replacement)
	if err != nil {
		return nil, err
	}
	if newChild == child {
		return branch, nil
	}
	return rebuild(branch, i, newChild)
}

func rebuild(branch *InternalBranch, i int, child InternalNode) (result *InternalBranch, err error) {
	defer func() {
		if r := recover(); r != nil {
			ae, ok := r.(*ArityError)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("replace: %w", ae)
		}
	}()
	return branch.WithChild(i, child), nil
}

func kindOf(n InternalNode) SyntaxKind {
	if n == nil {
		return KindNone
	}
	return n.Kind()
}

// Replace finds target's path by walking its parent chain and rebuilds the
// spine above it. It returns the new internal root.
func Replace(target Node, replacement InternalNode) (InternalNode, error) {
	if target == nil {
		return nil, fmt.Errorf("replace: nil target")
	}
	var path []int
	node := target
	for parent := node.Parent(); parent != nil; parent = node.Parent() {
		idx := childIndex(parent, node)
		if idx < 0 {
			return nil, fmt.Errorf("replace: %s at %d is not a child of its parent", node.Kind(), node.Position())
		}
		path = append(path, idx)
		node = parent
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return ReplaceAt(node.Internal(), path, replacement)
}

// ReplaceChild returns a copy of parent's internal node with bucket i
// replaced. Other buckets are shared.
func ReplaceChild(parent Node, i int, replacement InternalNode) (InternalNode, error) {
	return ReplaceAt(parent.Internal(), []int{i}, replacement)
}
